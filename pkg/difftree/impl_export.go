/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package difftree

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/voedger/schemadiff/pkg/scalar"
)

// Renders state without «State_» prefix, like «Conflict».
func (s State) TrimString() string {
	const pref = "State_"
	return strings.TrimPrefix(s.String(), pref)
}

// Renders state as legend character used by Render.
func (s State) Legend() string { return stateLegend[s] }

type exportValue struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value any    `json:"value" yaml:"value"`
}

type exportNode struct {
	Name     string        `json:"name" yaml:"name"`
	Index    *int          `json:"index,omitempty" yaml:"index,omitempty"`
	State    string        `json:"state" yaml:"state"`
	Left     *exportValue  `json:"left,omitempty" yaml:"left,omitempty"`
	Right    *exportValue  `json:"right,omitempty" yaml:"right,omitempty"`
	Children []*exportNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func exportScalar(v scalar.Value) *exportValue {
	if v.IsNil() {
		return nil
	}
	const pref = "Kind_"
	return &exportValue{Kind: strings.TrimPrefix(v.Kind().String(), pref), Value: v.Any()}
}

func (n Node) export() *exportNode {
	e := &exportNode{
		Name:  n.Name(),
		State: n.Classify(true).TrimString(),
		Left:  exportScalar(n.Left()),
		Right: exportScalar(n.Right()),
	}
	if i, ok := n.Index(); ok {
		e.Index = &i
	}
	for _, c := range n.Children() {
		e.Children = append(e.Children, c.export())
	}
	return e
}

// Returns tree as nested JSON objects «{name, index, state, left, right, children}».
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Root().export())
}

// Returns tree as nested YAML mappings with the same keys as JSON.
func (t *Tree) MarshalYAML() (any, error) {
	return t.Root().export(), nil
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge

import (
	"fmt"
	"math"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/scalar"
	"github.com/voedger/schemadiff/pkg/schema"
	"github.com/voedger/schemadiff/pkg/schemadiff"
)

func (s subtree) child(name string) subtree {
	if !s.ok {
		return subtree{}
	}
	n, ok := s.node.Child(name)
	return subtree{node: n, ok: ok}
}

// Returns child of aligned list node for slot i.
func (s subtree) indexed(i int) subtree {
	if !s.ok {
		return subtree{}
	}
	return s.child(fmt.Sprintf("%s[%d]", s.node.Name(), i))
}

func (s subtree) state() difftree.State {
	if !s.ok {
		return difftree.State_Empty
	}
	return s.node.Classify(true)
}

// Returns names of node children.
func (s subtree) children() []string {
	if !s.ok {
		return nil
	}
	children := s.node.Children()
	names := make([]string, len(children))
	for i, c := range children {
		names[i] = c.Name()
	}
	return names
}

func (s subtree) String() string {
	if !s.ok {
		return "<none>"
	}
	return s.node.Path()
}

// Returns side to take object from and is object should be merged field by field.
//
// Left-only and right-only subtrees are taken from their side, conflict subtree is merged,
// empty or missing subtree is copied from def.
func (m *merger) pick(st subtree, def difftree.Side) (side difftree.Side, merge bool) {
	switch s := st.state(); s {
	case difftree.State_Empty:
		return def, false
	case difftree.State_Left:
		return difftree.Side_Left, false
	case difftree.State_Right:
		return difftree.Side_Right, false
	case difftree.State_Conflict:
		return m.side, true
	default:
		panic(schema.ErrUnsupported("node %v state %v", st, s))
	}
}

// Returns value of scalar node. Returns false if node is missing or empty.
//
// Left-only and right-only values are taken unconditionally, conflict takes default side value.
func (m *merger) resolveScalar(st subtree) (scalar.Value, bool, error) {
	if !st.ok {
		return scalar.Nil(), false, nil
	}
	if !st.node.IsScalar() {
		return scalar.Nil(), false, schema.ErrFormat("node %v is not scalar", st)
	}
	switch s := st.state(); s {
	case difftree.State_Empty:
		return scalar.Nil(), false, nil
	case difftree.State_Left:
		return st.node.Left(), true, nil
	case difftree.State_Right:
		return st.node.Right(), true, nil
	case difftree.State_Conflict:
		return st.node.Value(m.side), true, nil
	default:
		panic(schema.ErrUnsupported("node %v state %v", st, s))
	}
}

// Returns string value of node or def if node is missing. Nil value gives empty string.
func (m *merger) resolveString(st subtree, def string) (string, error) {
	v, ok, err := m.resolveScalar(st)
	if err != nil || !ok {
		return def, err
	}
	switch v.Kind() {
	case scalar.Kind_null:
		return "", nil
	case scalar.Kind_String:
		return v.AsString(), nil
	default:
		return "", schema.ErrFormat("node %v value %v should be string", st, v)
	}
}

func (m *merger) resolveBool(st subtree, def bool) (bool, error) {
	v, ok, err := m.resolveScalar(st)
	if err != nil || !ok {
		return def, err
	}
	if v.Kind() != scalar.Kind_Boolean {
		return false, schema.ErrFormat("node %v value %v should be boolean", st, v)
	}
	return v.AsBool(), nil
}

func (m *merger) resolveUint32(st subtree, def uint32) (uint32, error) {
	v, ok, err := m.resolveScalar(st)
	if err != nil || !ok {
		return def, err
	}
	var i int64
	switch v.Kind() {
	case scalar.Kind_Int32:
		i = int64(v.AsInt32())
	case scalar.Kind_Int64:
		i = v.AsInt64()
	default:
		return 0, schema.ErrFormat("node %v value %v should be integer", st, v)
	}
	if i < 0 || i > math.MaxUint32 {
		return 0, schema.ErrFormat("node %v value %d is out of range", st, i)
	}
	return uint32(i), nil
}

// Merges display label and description of src into dst.
//
// Nil label node value means undefined label.
func (m *merger) mergeLabel(dst labeled, st subtree, src labeled) error {
	label, defined := src.DisplayLabel(), src.IsDisplayLabelDefined()
	v, ok, err := m.resolveScalar(st.child(schemadiff.NodeNameDisplayLabel))
	if err != nil {
		return err
	}
	if ok {
		switch v.Kind() {
		case scalar.Kind_null:
			defined = false
		case scalar.Kind_String:
			label, defined = v.AsString(), true
		default:
			return schema.ErrFormat("node %v value %v should be string", st, v)
		}
	}
	if defined {
		dst.SetDisplayLabel(label)
	}

	description, err := m.resolveString(st.child(schemadiff.NodeNameDescription), src.Description())
	if err != nil {
		return err
	}
	dst.SetDescription(description)
	return nil
}

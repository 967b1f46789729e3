/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemadiff_test

import (
	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/scalar"
	"github.com/voedger/schemadiff/pkg/schema"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func noErr(err error) {
	if err != nil {
		panic(err)
	}
}

// Returns schema «S» v1.0 with entity «Widget» having string property «Name».
func widgetSchema() *schema.Schema {
	s := must(schema.New("S", "s", 1, 0))
	w := must(s.AddEntity("Widget"))
	must(w.AddPrimitiveProperty("Name", schema.PrimitiveType_String))
	return s
}

// Returns widget schema extended by referenced schema «Base», structure, array property,
// custom attribute and relationship.
func richSchema() *schema.Schema {
	base := must(schema.New("Base", "b", 1, 0))
	element := must(base.AddEntity("Element"))

	s := widgetSchema()
	noErr(s.AddReference(base))
	note := must(s.AddCustomAttributeType("Note"))
	point := must(s.AddStruct("Point"))
	must(point.AddPrimitiveProperty("X", schema.PrimitiveType_Double))

	w := s.Type("Widget")
	noErr(w.AddBaseType(element))
	must(w.AddStructProperty("Origin", point))
	must(w.AddPrimitiveArrayProperty("Tags", schema.PrimitiveType_String, 0, schema.Unbounded))
	noErr(w.SetCustomAttribute(must(schema.NewCustomAttribute(note,
		schema.Field{Name: "Text", Value: schema.ScalarValue(scalar.String("hello"))},
		schema.Field{Name: "Meta", Value: schema.StructValue(
			schema.Field{Name: "Level", Value: schema.ScalarValue(scalar.Int32(1))},
		)},
	))))

	has := must(s.AddRelationship("WidgetHasElement"))
	rel := has.Relationship()
	noErr(rel.SetStrength(schema.Strength_Embedding))
	noErr(rel.Source().AddType(w))
	noErr(rel.Target().AddType(element))
	return s
}

// Attaches «S:Note» custom attribute with specified fields to widget.
func withNote(s *schema.Schema, fields ...schema.Field) *schema.Schema {
	note := s.Type("Note")
	if note == nil {
		note = must(s.AddCustomAttributeType("Note"))
	}
	noErr(s.Type("Widget").SetCustomAttribute(must(schema.NewCustomAttribute(note, fields...))))
	return s
}

func field(name string, v scalar.Value) schema.Field {
	return schema.Field{Name: name, Value: schema.ScalarValue(v)}
}

type nodeDigest struct {
	state       difftree.State
	left, right string
	slots       string // aligned list path for slot node
}

func (n nodeDigest) key(path string) string {
	if n.slots == "" {
		return path
	}
	return n.slots + "[" + n.left + "|" + n.right + "]"
}

// Returns state and values of every tree node by node path.
//
// Aligned list slots are numbered in order of first appearance, which depends on side order,
// so slot nodes are keyed by their members.
func digest(tree *difftree.Tree) map[string]nodeDigest {
	d := make(map[string]nodeDigest)
	for n := range tree.Nodes() {
		nd := nodeDigest{state: n.Classify(true), left: n.Left().String(), right: n.Right().String()}
		if _, ok := n.Index(); ok {
			parent, _ := n.Parent()
			nd.slots = parent.Path()
		}
		d[nd.key(n.Path())] = nd
	}
	return d
}

// Returns digest with sides swapped.
func swapped(d map[string]nodeDigest) map[string]nodeDigest {
	s := make(map[string]nodeDigest, len(d))
	for path, n := range d {
		st := n.state
		switch st {
		case difftree.State_Left:
			st = difftree.State_Right
		case difftree.State_Right:
			st = difftree.State_Left
		}
		sn := nodeDigest{st, n.right, n.left, n.slots}
		s[sn.key(path)] = sn
	}
	return s
}

func lookup(tree *difftree.Tree, path string) difftree.Node {
	return must(tree.Lookup(path))
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge_test

import (
	"context"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/scalar"
	"github.com/voedger/schemadiff/pkg/schema"
	"github.com/voedger/schemadiff/pkg/schemadiff"
	"github.com/voedger/schemadiff/pkg/schemamerge"
)

var rules = []schemamerge.ConflictRule{schemamerge.ConflictRule_PreferLeft, schemamerge.ConflictRule_PreferRight}

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

// Returns schema «Base» v1.0 with entity «Element».
func baseSchema() *schema.Schema {
	base := must(schema.New("Base", "b", 1, 0))
	must(base.AddEntity("Element"))
	return base
}

// Returns widget schema extended by referenced schema «Base», structure, array property,
// custom attribute and relationship.
func richSchema() *schema.Schema {
	base := baseSchema()
	element := base.Type("Element")

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
		field("Text", scalar.String("hello")),
		schema.Field{Name: "Meta", Value: schema.StructValue(field("Level", scalar.Int32(1)))},
	))))

	has := must(s.AddRelationship("WidgetHasElement"))
	rel := has.Relationship()
	noErr(rel.SetStrength(schema.Strength_Embedding))
	noErr(rel.Source().AddType(w))
	noErr(rel.Target().AddType(element))
	return s
}

// Returns widget schema with entities «A», «B» and «C», widget inherits specified ones.
func withBases(bases ...string) *schema.Schema {
	s := widgetSchema()
	for _, n := range []string{"A", "B", "C"} {
		must(s.AddEntity(n))
	}
	w := s.Type("Widget")
	for _, b := range bases {
		noErr(w.AddBaseType(s.Type(b)))
	}
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

// Scalar node of hand-built diff tree.
type change struct {
	path        string
	left, right scalar.Value
}

// Returns finalized diff tree with specified scalar nodes.
//
// Path starts from node below root, like «Classes.Widget.Description».
func treeOf(changes ...change) *difftree.Tree {
	tree := difftree.New()
	for _, c := range changes {
		segments := strings.Split(c.path, difftree.PathDelimiter)
		n := tree.Root()
		for _, s := range segments[:len(segments)-1] {
			n = n.AddComposite(s)
		}
		n.AddScalar(segments[len(segments)-1]).SetValue(c.left, c.right)
	}
	tree.Finalize()
	return tree
}

// Diffs and merges two schemas.
func diffMerge(left, right *schema.Schema, rule schemamerge.ConflictRule) (*schema.Schema, error) {
	ctx := context.Background()
	return schemamerge.Merge(ctx, schemadiff.Diff(ctx, left, right), left, right, rule)
}

// Returns structural difference of two schemas, empty string if equal.
func snapDiff(want, got *schema.Schema) string {
	return cmp.Diff(want.Snapshot(), got.Snapshot())
}

func str(s string) scalar.Value { return scalar.String(s) }

func nilv() scalar.Value { return scalar.Nil() }

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemadiff

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/voedger/schemadiff/pkg/scalar"
	"github.com/voedger/schemadiff/pkg/schema"
)

type labeled interface {
	IsDisplayLabelDefined() bool
	DisplayLabel() string
	Description() string
}

// Returns defined display label. Undefined label gives Nil.
func displayLabel[T labeled](x T) scalar.Value {
	if !x.IsDisplayLabelDefined() {
		return scalar.Nil()
	}
	return scalar.String(x.DisplayLabel())
}

func description[T labeled](x T) scalar.Value { return str(x.Description()) }

// Returns string value. Empty string gives Nil.
func str(s string) scalar.Value {
	if s == "" {
		return scalar.Nil()
	}
	return scalar.String(s)
}

func value[T any](x *T, f func(*T) scalar.Value) scalar.Value {
	if x == nil {
		return scalar.Nil()
	}
	return f(x)
}

func items[T, I any](x *T, f func(*T) []I) []I {
	if x == nil {
		return nil
	}
	return f(x)
}

// Returns union of named members of both sides in case-insensitive order of names.
//
// Member name is taken from left side if present.
func union[T any](left, right []*T, name func(*T) string) []pair[*T] {
	m := make(map[string]pair[*T], len(left)+len(right))
	for _, l := range left {
		m[schema.NameKey(name(l))] = pair[*T]{name: name(l), left: l}
	}
	for _, r := range right {
		k := schema.NameKey(name(r))
		p, ok := m[k]
		if !ok {
			p.name = name(r)
		}
		p.right = r
		m[k] = p
	}
	pairs := maps.Values(m)
	slices.SortFunc(pairs, func(a, b pair[*T]) int { return schema.CompareNames(a.name, b.name) })
	return pairs
}

func fullNames(types []*schema.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.FullName()
	}
	return names
}

func classFullName(ca *schema.CustomAttribute) string { return ca.Class().FullName() }

// Returns occurs bound of array property. Not array property gives Nil.
func occurs(p *schema.Property, o uint32) scalar.Value {
	if !p.IsArray() {
		return scalar.Nil()
	}
	return scalar.Int64(int64(o))
}

func relationshipOf(t *schema.Type) *schema.Relationship {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case schema.TypeKind_Entity, schema.TypeKind_Struct, schema.TypeKind_CustomAttribute:
		return nil
	case schema.TypeKind_Relationship:
		return t.Relationship()
	default:
		panic(schema.ErrUnsupported("type kind %v of %v", t.Kind(), t))
	}
}

func constraintOf(r *schema.Relationship, source bool) *schema.Constraint {
	switch {
	case r == nil:
		return nil
	case source:
		return r.Source()
	default:
		return r.Target()
	}
}

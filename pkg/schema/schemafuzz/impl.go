/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemafuzz

import (
	"fmt"

	"github.com/voedger/schemadiff/pkg/schema"
)

// Returns random schema «S».
//
// Classes are named «T0», «T1», … and are entities or structures. Properties are primitive,
// named «P0» … «P5».
func (g *Generator) Schema() *schema.Schema {
	return g.outline().build()
}

// Returns two independent random schemas «S».
func (g *Generator) Pair() (left, right *schema.Schema) {
	return g.Schema(), g.Schema()
}

// Returns random schema and its copy extended by new classes, properties and base classes.
//
// Existing members of extended copy are unchanged, new members are appended.
func (g *Generator) Additive() (base, extended *schema.Schema) {
	o, ext := g.outline(), g.outline()
	base, extended = o.build(), o.build()

	classes := extended.Types()
	for i, c := range ext.Classes {
		classes = append(classes, c.add(extended, fmt.Sprintf("X%d", i)))
	}
	for i, c := range ext.Classes {
		t := classes[i%len(classes)]
		for _, p := range c.Properties {
			p.add(t, fmt.Sprintf("Q%d", p.Name%propertyNames))
		}
		addBases(t, c.Bases, classes)
	}
	return base, extended
}

func (g *Generator) outline() outline {
	var o outline
	g.f.Fuzz(&o)
	if len(o.Classes) > maxClasses {
		o.Classes = o.Classes[:maxClasses]
	}
	for i := range o.Classes {
		c := &o.Classes[i]
		if len(c.Properties) > maxProperties {
			c.Properties = c.Properties[:maxProperties]
		}
		if len(c.Bases) > maxBases {
			c.Bases = c.Bases[:maxBases]
		}
	}
	return o
}

func (o outline) build() *schema.Schema {
	s, err := schema.New(SchemaName, SchemaAlias, 1, uint32(o.Minor%4))
	if err != nil {
		panic(err)
	}
	s.SetDescription(o.Description)

	classes := make([]*schema.Type, len(o.Classes))
	for i, c := range o.Classes {
		classes[i] = c.add(s, fmt.Sprintf("T%d", i))
	}
	for i, c := range o.Classes {
		addBases(classes[i], c.Bases, classes)
	}
	return s
}

// Adds class with properties, bases are added later by addBases.
func (c classOutline) add(s *schema.Schema, name string) *schema.Type {
	kind := schema.TypeKind_Entity
	if c.Struct {
		kind = schema.TypeKind_Struct
	}
	t, err := s.AddType(name, kind)
	if err != nil {
		panic(err)
	}
	t.SetModifier(schema.Modifier(c.Modifier % uint8(schema.Modifier_count)))
	if c.Label != nil {
		t.SetDisplayLabel(*c.Label)
	}
	t.SetDescription(c.Description)
	for _, p := range c.Properties {
		p.add(t, fmt.Sprintf("P%d", p.Name%propertyNames))
	}
	return t
}

// Adds property if t has no property with the same name.
func (p propertyOutline) add(t *schema.Type, name string) {
	if t.Property(name) != nil {
		return
	}
	pt := schema.PrimitiveType(1 + p.Type%uint8(schema.PrimitiveType_count-1))

	var (
		prop *schema.Property
		err  error
	)
	if p.Array {
		lo, hi := uint32(p.MinOccurs), uint32(p.MaxOccurs)
		if lo > hi {
			lo, hi = hi, lo
		}
		prop, err = t.AddPrimitiveArrayProperty(name, pt, lo, hi)
	} else {
		prop, err = t.AddPrimitiveProperty(name, pt)
	}
	if err != nil {
		panic(err)
	}
	prop.SetReadOnly(p.ReadOnly)
	if p.Label != nil {
		prop.SetDisplayLabel(*p.Label)
	}
}

// Adds bases of the same kind chosen by indexes, skipping ones that would make inheritance cycle.
func addBases(t *schema.Type, indexes []uint8, classes []*schema.Type) {
	if len(classes) == 0 {
		return
	}
	for _, i := range indexes {
		base := classes[int(i)%len(classes)]
		if base == t || base.Kind() != t.Kind() || base.Inherits(t) || t.Inherits(base) {
			continue
		}
		if err := t.AddBaseType(base); err != nil {
			panic(err)
		}
	}
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import "slices"

// Plain value copy of schema, suitable for deep comparison.
//
// Sets (types, properties, references, custom attributes) are sorted, ordered lists keep their order.
type SchemaSnapshot struct {
	Name             string
	Alias            string
	Version          string
	FormatVersion    string
	DisplayLabel     *string
	Description      string
	References       []string
	Types            []TypeSnapshot
	CustomAttributes []CustomAttributeSnapshot
}

type TypeSnapshot struct {
	FullName         string
	Kind             string
	Modifier         string
	DisplayLabel     *string
	Description      string
	BaseTypes        []string
	Properties       []PropertySnapshot
	Relationship     *RelationshipSnapshot
	CustomAttributes []CustomAttributeSnapshot
}

type PropertySnapshot struct {
	Name             string
	DisplayLabel     *string
	Description      string
	Shape            string
	TypeName         string
	MinOccurs        uint32
	MaxOccurs        uint32
	ReadOnly         bool
	CustomAttributes []CustomAttributeSnapshot
}

type RelationshipSnapshot struct {
	Strength  string
	Direction string
	Source    ConstraintSnapshot
	Target    ConstraintSnapshot
}

type ConstraintSnapshot struct {
	Multiplicity       string
	Polymorphic        bool
	RoleLabel          string
	AbstractConstraint string
	Types              []string
	CustomAttributes   []CustomAttributeSnapshot
}

type CustomAttributeSnapshot struct {
	Class  string
	Leaves []string
}

// Returns snapshot of schema.
func (s *Schema) Snapshot() SchemaSnapshot {
	snap := SchemaSnapshot{
		Name:             s.name,
		Alias:            s.alias,
		Version:          s.FullName(),
		FormatVersion:    s.formatVersion.String(),
		DisplayLabel:     snapLabel(&s.withLabel),
		Description:      s.description,
		CustomAttributes: snapCustomAttributes(&s.withCustomAttributes),
	}
	for _, r := range s.references {
		snap.References = append(snap.References, r.alias+"="+r.FullName())
	}
	slices.Sort(snap.References)

	types := s.Types()
	slices.SortFunc(types, func(a, b *Type) int { return CompareNames(a.name, b.name) })
	for _, t := range types {
		snap.Types = append(snap.Types, t.snapshot())
	}
	return snap
}

func (t *Type) snapshot() TypeSnapshot {
	snap := TypeSnapshot{
		FullName:         t.FullName(),
		Kind:             t.kind.TrimString(),
		Modifier:         t.modifier.TrimString(),
		DisplayLabel:     snapLabel(&t.withLabel),
		Description:      t.description,
		BaseTypes:        snapTypes(t.bases),
		CustomAttributes: snapCustomAttributes(&t.withCustomAttributes),
	}
	props := t.Properties()
	slices.SortFunc(props, func(a, b *Property) int { return CompareNames(a.name, b.name) })
	for _, p := range props {
		snap.Properties = append(snap.Properties, PropertySnapshot{
			Name:             p.name,
			DisplayLabel:     snapLabel(&p.withLabel),
			Description:      p.description,
			Shape:            p.shape.String(),
			TypeName:         p.TypeName(),
			MinOccurs:        p.minOccurs,
			MaxOccurs:        p.maxOccurs,
			ReadOnly:         p.readOnly,
			CustomAttributes: snapCustomAttributes(&p.withCustomAttributes),
		})
	}
	if r := t.relationship; r != nil {
		snap.Relationship = &RelationshipSnapshot{
			Strength:  r.strength.String(),
			Direction: r.direction.String(),
			Source:    r.source.snapshot(),
			Target:    r.target.snapshot(),
		}
	}
	return snap
}

func (c *Constraint) snapshot() ConstraintSnapshot {
	snap := ConstraintSnapshot{
		Multiplicity:     c.multiplicity.String(),
		Polymorphic:      c.polymorphic,
		RoleLabel:        c.roleLabel,
		Types:            snapTypes(c.types),
		CustomAttributes: snapCustomAttributes(&c.withCustomAttributes),
	}
	if c.abstract != nil {
		snap.AbstractConstraint = c.abstract.FullName()
	}
	return snap
}

func snapLabel(l *withLabel) *string {
	if !l.labelDefined {
		return nil
	}
	s := l.label
	return &s
}

func snapTypes(types []*Type) []string {
	var names []string
	for _, t := range types {
		names = append(names, t.FullName())
	}
	return names
}

func snapCustomAttributes(c *withCustomAttributes) []CustomAttributeSnapshot {
	var snaps []CustomAttributeSnapshot
	for _, ca := range c.cas {
		snap := CustomAttributeSnapshot{Class: ca.class.FullName()}
		for _, l := range ca.Flatten() {
			snap.Leaves = append(snap.Leaves, l.Path+"="+l.Value.Kind().String()+":"+l.Value.String())
		}
		snaps = append(snaps, snap)
	}
	slices.SortFunc(snaps, func(a, b CustomAttributeSnapshot) int { return CompareNames(a.Class, b.Class) })
	return snaps
}

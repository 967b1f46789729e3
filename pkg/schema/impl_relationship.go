/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import "slices"

func newRelationship(owner *Type) *Relationship {
	r := &Relationship{
		owner:     owner,
		strength:  DefaultStrength,
		direction: DefaultDirection,
	}
	r.source = newConstraint(r, true)
	r.target = newConstraint(r, false)
	return r
}

func (r *Relationship) Owner() *Type { return r.owner }

func (r *Relationship) Strength() Strength { return r.strength }

func (r *Relationship) Direction() Direction { return r.direction }

func (r *Relationship) Source() *Constraint { return r.source }

func (r *Relationship) Target() *Constraint { return r.target }

func (r *Relationship) SetStrength(s Strength) error {
	if s >= Strength_count {
		return ErrFormat("%v strength %d", r.owner, s)
	}
	r.strength = s
	return nil
}

func (r *Relationship) SetDirection(d Direction) error {
	if d >= Direction_count {
		return ErrFormat("%v strength direction %d", r.owner, d)
	}
	r.direction = d
	return nil
}

func newConstraint(r *Relationship, source bool) *Constraint {
	c := &Constraint{
		rel:          r,
		source:       source,
		multiplicity: DefaultMultiplicity,
		polymorphic:  DefaultPolymorphic,
	}
	c.withCustomAttributes = makeCustomAttributes(r.owner.schema)
	return c
}

func (c *Constraint) Relationship() *Relationship { return c.rel }

func (c *Constraint) IsSource() bool { return c.source }

func (c *Constraint) Multiplicity() Multiplicity { return c.multiplicity }

func (c *Constraint) IsPolymorphic() bool { return c.polymorphic }

func (c *Constraint) RoleLabel() string { return c.roleLabel }

// Returns abstract constraint type. Returns nil if not set.
func (c *Constraint) AbstractConstraint() *Type { return c.abstract }

// Returns constraint types in order of addition.
func (c *Constraint) Types() []*Type { return slices.Clone(c.types) }

func (c *Constraint) SetMultiplicity(m Multiplicity) error {
	if err := m.Validate(); err != nil {
		return err
	}
	c.multiplicity = m
	return nil
}

func (c *Constraint) SetPolymorphic(p bool) { c.polymorphic = p }

func (c *Constraint) SetRoleLabel(l string) { c.roleLabel = l }

// Sets abstract constraint type. Nil clears abstract constraint.
func (c *Constraint) SetAbstractConstraint(t *Type) error {
	if t != nil {
		if err := c.checkType(t); err != nil {
			return err
		}
	}
	c.abstract = t
	return nil
}

// Adds constraint type. Type should be entity or relationship.
func (c *Constraint) AddType(t *Type) error {
	if err := c.checkType(t); err != nil {
		return err
	}
	if slices.Contains(c.types, t) {
		return ErrAlreadyExists("%v constraint type %v", c, t)
	}
	c.types = append(c.types, t)
	return nil
}

func (c *Constraint) String() string {
	if c.source {
		return c.rel.owner.String() + " source"
	}
	return c.rel.owner.String() + " target"
}

func (c *Constraint) checkType(t *Type) error {
	switch t.kind {
	case TypeKind_Entity, TypeKind_Relationship:
	default:
		return ErrKindMismatch(t, TypeKind_Entity, TypeKind_Relationship)
	}
	if !c.rel.owner.schema.Reaches(t.schema) {
		return ErrSchemaNotFound("%v type %v schema is not referenced", c, t)
	}
	return nil
}

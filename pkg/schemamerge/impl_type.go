/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge

import (
	"slices"
	"strings"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/schema"
	"github.com/voedger/schemadiff/pkg/schemadiff"
)

// Fills planned type. Name and kind are already chosen by planTypes.
func (m *merger) buildType(p *typePlan) error {
	st, def := subtree{}, p.side
	if p.merge {
		st = p.node
	}
	def = present(def, p.left, p.right)
	src := bySide(def, p.left, p.right)
	t := p.merged

	if err := m.mergeLabel(t, st, src); err != nil {
		return err
	}

	mod, err := m.resolveString(st.child(schemadiff.NodeNameModifier), src.Modifier().TrimString())
	if err != nil {
		return err
	}
	modifier, err := schema.ParseModifier(mod)
	if err != nil {
		return err
	}
	t.SetModifier(modifier)

	bases, err := m.mergeAligned(st.child(schemadiff.NodeNameBaseClasses), def,
		items(p.left, (*schema.Type).BaseTypes), items(p.right, (*schema.Type).BaseTypes))
	if err != nil {
		return err
	}
	for _, b := range bases {
		base, err := m.resolveType(b)
		if err != nil {
			return err
		}
		if err := t.AddBaseType(base); err != nil {
			return err
		}
	}

	if err := m.mergeProperties(t, st.child(schemadiff.NodeNameProperties), def, p.left, p.right); err != nil {
		return err
	}

	switch k := t.Kind(); k {
	case schema.TypeKind_Entity, schema.TypeKind_Struct, schema.TypeKind_CustomAttribute:
	case schema.TypeKind_Relationship:
		err := m.buildRelationship(t.Relationship(), st.child(schemadiff.NodeNameRelationshipInfo), def,
			relationshipOf(p.left), relationshipOf(p.right))
		if err != nil {
			return err
		}
	default:
		panic(schema.ErrUnsupported("type kind %v of %v", k, t))
	}

	return m.mergeCustomAttributes(st.child(schemadiff.NodeNameCustomAttributes), def,
		items(p.left, (*schema.Type).CustomAttributes), items(p.right, (*schema.Type).CustomAttributes), t)
}

func (m *merger) mergeProperties(t *schema.Type, st subtree, def difftree.Side, l, r *schema.Type) error {
	pairs := ordered(def, items(l, (*schema.Type).Properties), items(r, (*schema.Type).Properties), (*schema.Property).Name)
	if err := checkChildren(st, pairs, func(name string) error {
		return schema.ErrPropertyNotFound("property «%s» of %v is missing in %v and %v", name, st, l, r)
	}); err != nil {
		return err
	}

	for _, p := range pairs {
		n := st.child(p.name)
		if !n.ok && bySide(def, p.left, p.right) == nil {
			continue
		}
		side, merge := m.pick(n, def)
		if merge {
			if err := m.buildProperty(t, n, side, p.left, p.right); err != nil {
				return err
			}
			continue
		}
		if bySide(side, p.left, p.right) == nil {
			return schema.ErrPropertyNotFound("property %v is missing in %v", n, bySide(side, l, r))
		}
		if err := m.buildProperty(t, subtree{}, side, p.left, p.right); err != nil {
			return err
		}
	}
	return nil
}

// Adds property to t. Type name node value is primitive type name or structure full name.
func (m *merger) buildProperty(t *schema.Type, st subtree, def difftree.Side, l, r *schema.Property) error {
	def = present(def, l, r)
	src := bySide(def, l, r)

	name, err := m.resolveString(st.child(schemadiff.NodeNameName), src.Name())
	if err != nil {
		return err
	}
	typeName, err := m.resolveString(st.child(schemadiff.NodeNameTypeName), src.TypeName())
	if err != nil {
		return err
	}
	isArray, err := m.resolveBool(st.child(schemadiff.NodeNameIsArray), src.IsArray())
	if err != nil {
		return err
	}
	arr := st.child(schemadiff.NodeNameArrayInfo)
	minOccurs, maxOccurs := src.Occurs()
	if minOccurs, err = m.resolveUint32(arr.child(schemadiff.NodeNameMinOccurs), minOccurs); err != nil {
		return err
	}
	if maxOccurs, err = m.resolveUint32(arr.child(schemadiff.NodeNameMaxOccurs), maxOccurs); err != nil {
		return err
	}

	var p *schema.Property
	if strings.Contains(typeName, schema.FullNameDelimiter) {
		s, err := m.sourceType(typeName)
		if err != nil {
			return err
		}
		structType, err := m.resolveType(s)
		if err != nil {
			return err
		}
		if isArray {
			p, err = t.AddStructArrayProperty(name, structType, minOccurs, maxOccurs)
		} else {
			p, err = t.AddStructProperty(name, structType)
		}
		if err != nil {
			return err
		}
	} else {
		pt, err := schema.ParsePrimitiveType(typeName)
		if err != nil {
			return schema.EnrichError(err, "%v property «%s»", t, name)
		}
		if isArray {
			p, err = t.AddPrimitiveArrayProperty(name, pt, minOccurs, maxOccurs)
		} else {
			p, err = t.AddPrimitiveProperty(name, pt)
		}
		if err != nil {
			return err
		}
	}

	if err := m.mergeLabel(p, st, src); err != nil {
		return err
	}
	ro, err := m.resolveBool(st.child(schemadiff.NodeNameIsReadOnly), src.IsReadOnly())
	if err != nil {
		return err
	}
	p.SetReadOnly(ro)

	return m.mergeCustomAttributes(st.child(schemadiff.NodeNameCustomAttributes), def,
		items(l, (*schema.Property).CustomAttributes), items(r, (*schema.Property).CustomAttributes), p)
}

func (m *merger) buildRelationship(rel *schema.Relationship, st subtree, def difftree.Side, l, r *schema.Relationship) error {
	if l == nil && r == nil {
		return nil
	}
	def = present(def, l, r)
	src := bySide(def, l, r)

	s, err := m.resolveString(st.child(schemadiff.NodeNameStrength), src.Strength().String())
	if err != nil {
		return err
	}
	strength, err := schema.ParseStrength(s)
	if err != nil {
		return err
	}
	if err := rel.SetStrength(strength); err != nil {
		return err
	}

	d, err := m.resolveString(st.child(schemadiff.NodeNameStrengthDirection), src.Direction().String())
	if err != nil {
		return err
	}
	direction, err := schema.ParseDirection(d)
	if err != nil {
		return err
	}
	if err := rel.SetDirection(direction); err != nil {
		return err
	}

	if err := m.buildConstraint(rel.Source(), st.child(schemadiff.NodeNameSource), def, constraintOf(l, true), constraintOf(r, true)); err != nil {
		return err
	}
	return m.buildConstraint(rel.Target(), st.child(schemadiff.NodeNameTarget), def, constraintOf(l, false), constraintOf(r, false))
}

func (m *merger) buildConstraint(c *schema.Constraint, st subtree, def difftree.Side, l, r *schema.Constraint) error {
	def = present(def, l, r)
	src := bySide(def, l, r)

	mult, err := m.resolveString(st.child(schemadiff.NodeNameMultiplicity), src.Multiplicity().String())
	if err != nil {
		return err
	}
	multiplicity, err := schema.ParseMultiplicity(mult)
	if err != nil {
		return schema.EnrichError(err, "%v", c)
	}
	if err := c.SetMultiplicity(multiplicity); err != nil {
		return err
	}

	role, err := m.resolveString(st.child(schemadiff.NodeNameRoleLabel), src.RoleLabel())
	if err != nil {
		return err
	}
	c.SetRoleLabel(role)

	poly, err := m.resolveBool(st.child(schemadiff.NodeNameIsPolymorphic), src.IsPolymorphic())
	if err != nil {
		return err
	}
	c.SetPolymorphic(poly)

	abstract := ""
	if a := src.AbstractConstraint(); a != nil {
		abstract = a.FullName()
	}
	if abstract, err = m.resolveString(st.child(schemadiff.NodeNameAbstractConstraint), abstract); err != nil {
		return err
	}
	if abstract != "" {
		s, err := m.sourceType(abstract)
		if err != nil {
			return err
		}
		a, err := m.resolveType(s)
		if err != nil {
			return err
		}
		if err := c.SetAbstractConstraint(a); err != nil {
			return err
		}
	}

	classes, err := m.mergeAligned(st.child(schemadiff.NodeNameClasses), def,
		items(l, (*schema.Constraint).Types), items(r, (*schema.Constraint).Types))
	if err != nil {
		return err
	}
	for _, x := range classes {
		t, err := m.resolveType(x)
		if err != nil {
			return err
		}
		if err := c.AddType(t); err != nil {
			return err
		}
	}

	return m.mergeCustomAttributes(st.child(schemadiff.NodeNameCustomAttributes), def,
		items(l, (*schema.Constraint).CustomAttributes), items(r, (*schema.Constraint).CustomAttributes), c)
}

// Merges aligned lists of types.
//
// Result is def side list with members of other side approved by diff slots.
// Approved member is inserted after nearest preceding member of its own list.
func (m *merger) mergeAligned(st subtree, def difftree.Side, l, r []*schema.Type) ([]*schema.Type, error) {
	res := slices.Clone(bySide(def, l, r))
	if !st.ok {
		return res, nil
	}

	other := bySide(otherSide(def), l, r)
	for i, s := range schemadiff.Align(fullNames(l), fullNames(r)) {
		switch {
		case def == difftree.Side_Left && s.IsRightOnly():
		case def == difftree.Side_Right && s.IsLeftOnly():
		default:
			continue
		}
		n := st.indexed(i)
		v, ok, err := m.resolveScalar(n)
		if err != nil {
			return nil, err
		}
		if !ok || v.IsNil() {
			continue
		}
		fullName, err := m.resolveString(n, "")
		if err != nil {
			return nil, err
		}
		x := findType(other, fullName)
		if x == nil {
			return nil, schema.ErrTypeNotFound("%v value «%s» is missing in %v", n, fullName, bySide(otherSide(def), m.left, m.right))
		}
		res = insertAfterPredecessor(res, other, x)
	}
	return res, nil
}

func relationshipOf(t *schema.Type) *schema.Relationship {
	if t == nil {
		return nil
	}
	switch k := t.Kind(); k {
	case schema.TypeKind_Entity, schema.TypeKind_Struct, schema.TypeKind_CustomAttribute:
		return nil
	case schema.TypeKind_Relationship:
		return t.Relationship()
	default:
		panic(schema.ErrUnsupported("type kind %v of %v", k, t))
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

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import "slices"

func (t *Type) Schema() *Schema { return t.schema }

func (t *Type) Name() string { return t.name }

// Returns type full name, like «Schema:Type».
func (t *Type) FullName() string { return t.schema.name + FullNameDelimiter + t.name }

func (t *Type) Kind() TypeKind { return t.kind }

func (t *Type) Modifier() Modifier { return t.modifier }

func (t *Type) SetModifier(m Modifier) { t.modifier = m }

// Returns display label if defined, otherwise type name.
func (t *Type) DisplayLabel() string { return t.displayLabel(t.name) }

// Returns relationship payload. Returns nil if type is not relationship.
func (t *Type) Relationship() *Relationship { return t.relationship }

func (t *Type) String() string { return t.kind.TrimString() + " «" + t.FullName() + "»" }

// Returns base types in order of addition.
func (t *Type) BaseTypes() []*Type { return slices.Clone(t.bases) }

// Adds base type.
//
// Base type should have the same kind and should be declared in the same schema or in referenced one.
func (t *Type) AddBaseType(base *Type) error {
	if base == t {
		return ErrUnsupported("%v inherits itself", t)
	}
	if base.kind != t.kind {
		return ErrKindMismatch(base, t.kind)
	}
	if !t.schema.Reaches(base.schema) {
		return ErrSchemaNotFound("%v base %v schema is not referenced", t, base)
	}
	if slices.Contains(t.bases, base) {
		return ErrAlreadyExists("%v base %v", t, base)
	}
	t.bases = append(t.bases, base)
	return nil
}

// Returns is type inherits base, directly or through other bases.
func (t *Type) Inherits(base *Type) bool {
	for _, b := range t.bases {
		if b == base || b.Inherits(base) {
			return true
		}
	}
	return false
}

// Returns own properties in order of addition.
func (t *Type) Properties() []*Property { return slices.Clone(t.props) }

// Returns own property by name, case-insensitive. Returns nil if not found.
func (t *Type) Property(name string) *Property { return t.propsByKey[NameKey(name)] }

// Returns own or inherited property by name. Bases are searched depth-first in order of addition.
func (t *Type) FindProperty(name string) *Property {
	if p := t.Property(name); p != nil {
		return p
	}
	for _, b := range t.bases {
		if p := b.FindProperty(name); p != nil {
			return p
		}
	}
	return nil
}

func (t *Type) AddPrimitiveProperty(name string, pt PrimitiveType) (*Property, error) {
	return t.addProperty(name, PropertyShape_Primitive, pt, nil, 0, 0)
}

func (t *Type) AddStructProperty(name string, st *Type) (*Property, error) {
	return t.addProperty(name, PropertyShape_Struct, PrimitiveType_null, st, 0, 0)
}

func (t *Type) AddPrimitiveArrayProperty(name string, pt PrimitiveType, minOccurs, maxOccurs uint32) (*Property, error) {
	return t.addProperty(name, PropertyShape_PrimitiveArray, pt, nil, minOccurs, maxOccurs)
}

func (t *Type) AddStructArrayProperty(name string, st *Type, minOccurs, maxOccurs uint32) (*Property, error) {
	return t.addProperty(name, PropertyShape_StructArray, PrimitiveType_null, st, minOccurs, maxOccurs)
}

func (t *Type) addProperty(name string, shape PropertyShape, pt PrimitiveType, st *Type, minOccurs, maxOccurs uint32) (*Property, error) {
	if err := ValidIdent(name); err != nil {
		return nil, err
	}
	key := NameKey(name)
	if p, ok := t.propsByKey[key]; ok {
		return nil, ErrAlreadyExists("%v property «%s» conflicts with «%s»", t, name, p.name)
	}

	switch shape {
	case PropertyShape_Primitive, PropertyShape_PrimitiveArray:
		if pt == PrimitiveType_null || pt >= PrimitiveType_count {
			return nil, ErrFormat("%v property «%s» has invalid primitive type %d", t, name, pt)
		}
	case PropertyShape_Struct, PropertyShape_StructArray:
		if st == nil {
			return nil, ErrTypeNotFound("%v property «%s» structure type is nil", t, name)
		}
		if st.kind != TypeKind_Struct {
			return nil, ErrKindMismatch(st, TypeKind_Struct)
		}
		if !t.schema.Reaches(st.schema) {
			return nil, ErrSchemaNotFound("%v property «%s» structure %v schema is not referenced", t, name, st)
		}
	default:
		return nil, ErrUnsupported("property shape %v", shape)
	}

	switch shape {
	case PropertyShape_PrimitiveArray, PropertyShape_StructArray:
		if minOccurs > maxOccurs {
			return nil, ErrFormat("%v property «%s» occurs %d..%d", t, name, minOccurs, maxOccurs)
		}
	default:
		minOccurs, maxOccurs = 0, 0
	}

	p := &Property{
		owner:     t,
		name:      name,
		shape:     shape,
		primitive: pt,
		structure: st,
		minOccurs: minOccurs,
		maxOccurs: maxOccurs,
	}
	p.withCustomAttributes = makeCustomAttributes(t.schema)
	t.props = append(t.props, p)
	t.propsByKey[key] = p
	return p, nil
}

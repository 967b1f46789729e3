/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

func (p *Property) Owner() *Type { return p.owner }

func (p *Property) Name() string { return p.name }

// Returns display label if defined, otherwise property name.
func (p *Property) DisplayLabel() string { return p.displayLabel(p.name) }

func (p *Property) Shape() PropertyShape { return p.shape }

// Returns primitive type of primitive or primitive array property.
func (p *Property) PrimitiveType() PrimitiveType { return p.primitive }

// Returns structure type of structure or structure array property.
func (p *Property) StructType() *Type { return p.structure }

func (p *Property) IsArray() bool {
	return p.shape == PropertyShape_PrimitiveArray || p.shape == PropertyShape_StructArray
}

func (p *Property) IsStruct() bool {
	return p.shape == PropertyShape_Struct || p.shape == PropertyShape_StructArray
}

func (p *Property) IsPrimitive() bool {
	return p.shape == PropertyShape_Primitive || p.shape == PropertyShape_PrimitiveArray
}

// Returns array bounds. Returns zeros if property is not array.
func (p *Property) Occurs() (minOccurs, maxOccurs uint32) { return p.minOccurs, p.maxOccurs }

func (p *Property) IsReadOnly() bool { return p.readOnly }

func (p *Property) SetReadOnly(ro bool) { p.readOnly = ro }

// Returns is some owner base type declares property with the same name.
func (p *Property) IsOverridden() bool {
	for _, b := range p.owner.bases {
		if b.FindProperty(p.name) != nil {
			return true
		}
	}
	return false
}

// Returns primitive type name or structure type full name.
func (p *Property) TypeName() string {
	if p.IsStruct() {
		return p.structure.FullName()
	}
	return p.primitive.String()
}

func (p *Property) String() string { return "property «" + p.owner.FullName() + "." + p.name + "»" }

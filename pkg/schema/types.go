/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import "github.com/voedger/schemadiff/pkg/scalar"

// Kind of type. Chosen when type is created and never changed.
type TypeKind uint8

// Type modifier: none, abstract or sealed.
type Modifier uint8

// Shape of property value.
type PropertyShape uint8

// Primitive value type.
type PrimitiveType uint8

// Relationship strength: referencing, holding or embedding.
type Strength uint8

// Relationship strength direction: forward or backward.
type Direction uint8

// Schema format version, «major.minor».
type FormatVersion struct {
	Major, Minor uint32
}

// Relationship constraint multiplicity, «(lower..upper)».
//
// Upper bound equals to Unbounded for «*».
type Multiplicity struct {
	Lower, Upper uint32
}

// Schema. Named, versioned container of types.
//
// Owns all its types. Refers to other schemas by alias.
type Schema struct {
	withLabel
	withCustomAttributes
	name          string
	alias         string
	versionMajor  uint32
	versionMinor  uint32
	formatVersion FormatVersion
	references    []*Schema
	types         []*Type
	typesByKey    map[string]*Type
}

// Type. Entity, structure, custom attribute or relationship.
type Type struct {
	withLabel
	withCustomAttributes
	schema       *Schema
	name         string
	kind         TypeKind
	modifier     Modifier
	bases        []*Type
	props        []*Property
	propsByKey   map[string]*Property
	relationship *Relationship
}

// Property of type.
type Property struct {
	withLabel
	withCustomAttributes
	owner     *Type
	name      string
	shape     PropertyShape
	primitive PrimitiveType
	structure *Type
	minOccurs uint32
	maxOccurs uint32
	readOnly  bool
}

// Relationship payload of relationship type.
type Relationship struct {
	owner     *Type
	strength  Strength
	direction Direction
	source    *Constraint
	target    *Constraint
}

// Source or target constraint of relationship.
type Constraint struct {
	withCustomAttributes
	rel          *Relationship
	source       bool
	multiplicity Multiplicity
	polymorphic  bool
	roleLabel    string
	abstract     *Type
	types        []*Type
}

// Custom attribute instance. Typed bag of field values.
type CustomAttribute struct {
	class  *Type
	fields []Field
}

// Named field of custom attribute instance or of structure field value.
type Field struct {
	Name  string
	Value FieldValue
}

type fieldKind uint8

// Field value: scalar, structure of fields or array of values.
type FieldValue struct {
	kind    fieldKind
	scalar  scalar.Value
	members []Field
	items   []FieldValue
}

// Flattened custom attribute leaf.
//
// Path is dot-separated member names, array items are addressed as «name[i]».
type Leaf struct {
	Path  string
	Value scalar.Value
}

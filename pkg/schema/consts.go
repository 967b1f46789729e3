/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import "math"

//go:generate stringer -type=TypeKind,Modifier,PropertyShape -output=kinds_string.go

// Type kinds
const (
	TypeKind_null TypeKind = iota

	// Entity, the only kind that may have instances stored
	TypeKind_Entity

	// Structure, used as property value shape
	TypeKind_Struct

	// Custom attribute, defines shape of custom attribute instances
	TypeKind_CustomAttribute

	// Relationship between entities, has relationship payload
	TypeKind_Relationship

	TypeKind_count
)

// Type modifiers
const (
	Modifier_None Modifier = iota
	Modifier_Abstract
	Modifier_Sealed

	Modifier_count
)

// Property value shapes
const (
	PropertyShape_null PropertyShape = iota
	PropertyShape_Primitive
	PropertyShape_Struct
	PropertyShape_PrimitiveArray
	PropertyShape_StructArray

	PropertyShape_count
)

// Primitive types
const (
	PrimitiveType_null PrimitiveType = iota
	PrimitiveType_Binary
	PrimitiveType_Boolean
	PrimitiveType_DateTime
	PrimitiveType_Double
	PrimitiveType_Integer
	PrimitiveType_Long
	PrimitiveType_Point2d
	PrimitiveType_Point3d
	PrimitiveType_String
	PrimitiveType_IGeometry

	PrimitiveType_count
)

// Relationship strengths
const (
	Strength_Referencing Strength = iota
	Strength_Holding
	Strength_Embedding

	Strength_count
)

// Relationship strength directions
const (
	Direction_Forward Direction = iota
	Direction_Backward

	Direction_count
)

const (
	// Delimiter between schema name and type name in type full name
	FullNameDelimiter = ":"

	// Upper bound of unbounded multiplicity or array
	Unbounded = math.MaxUint32

	unboundedStr = "*"
)

var primitiveTypeNames = map[PrimitiveType]string{
	PrimitiveType_Binary:    "binary",
	PrimitiveType_Boolean:   "boolean",
	PrimitiveType_DateTime:  "dateTime",
	PrimitiveType_Double:    "double",
	PrimitiveType_Integer:   "int",
	PrimitiveType_Long:      "long",
	PrimitiveType_Point2d:   "point2d",
	PrimitiveType_Point3d:   "point3d",
	PrimitiveType_String:    "string",
	PrimitiveType_IGeometry: "Bentley.Geometry.Common.IGeometry",
}

var strengthNames = map[Strength]string{
	Strength_Referencing: "Referencing",
	Strength_Holding:     "Holding",
	Strength_Embedding:   "Embedding",
}

var directionNames = map[Direction]string{
	Direction_Forward:  "Forward",
	Direction_Backward: "Backward",
}

// Relationship defaults
const (
	DefaultStrength    = Strength_Referencing
	DefaultDirection   = Direction_Forward
	DefaultPolymorphic = true
)

// Default constraint multiplicity, (0..1)
var DefaultMultiplicity = Multiplicity{Lower: 0, Upper: 1}

// Default schema format version
var DefaultFormatVersion = FormatVersion{Major: 3, Minor: 1}

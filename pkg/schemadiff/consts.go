/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemadiff

// Diff tree node names
const (
	NodeNameName               = "Name"
	NodeNameAlias              = "Alias"
	NodeNameVersionMajor       = "VersionMajor"
	NodeNameVersionMinor       = "VersionMinor"
	NodeNameFormatVersion      = "FormatVersion"
	NodeNameDisplayLabel       = "DisplayLabel"
	NodeNameDescription        = "Description"
	NodeNameReferences         = "References"
	NodeNameClasses            = "Classes"
	NodeNameCustomAttributes   = "CustomAttributes"
	NodeNameKind               = "Kind"
	NodeNameModifier           = "Modifier"
	NodeNameBaseClasses        = "BaseClasses"
	NodeNameProperties         = "Properties"
	NodeNameTypeName           = "TypeName"
	NodeNameIsArray            = "IsArray"
	NodeNameArrayInfo          = "ArrayInfo"
	NodeNameMinOccurs          = "MinOccurs"
	NodeNameMaxOccurs          = "MaxOccurs"
	NodeNameIsReadOnly         = "IsReadOnly"
	NodeNameIsOverridden       = "IsOverridden"
	NodeNameRelationshipInfo   = "RelationshipInfo"
	NodeNameStrength           = "Strength"
	NodeNameStrengthDirection  = "StrengthDirection"
	NodeNameSource             = "Source"
	NodeNameTarget             = "Target"
	NodeNameMultiplicity       = "Multiplicity"
	NodeNameRoleLabel          = "RoleLabel"
	NodeNameIsPolymorphic      = "IsPolymorphic"
	NodeNameAbstractConstraint = "AbstractConstraint"
)

// Suffix of custom attribute leaf node which name is used by nested leaves of other side.
const LeafClashSuffix = "#"

const (
	leafPathDelimiter = "."
)

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"fmt"
	"slices"
)

// Creates and returns new empty schema.
//
// Alias may be empty. Format version is DefaultFormatVersion.
func New(name, alias string, major, minor uint32) (*Schema, error) {
	if err := ValidIdent(name); err != nil {
		return nil, err
	}
	if alias != "" {
		if err := ValidIdent(alias); err != nil {
			return nil, err
		}
	}
	s := &Schema{
		name:          name,
		alias:         alias,
		versionMajor:  major,
		versionMinor:  minor,
		formatVersion: DefaultFormatVersion,
		typesByKey:    make(map[string]*Type),
	}
	s.withCustomAttributes = makeCustomAttributes(s)
	return s, nil
}

func (s *Schema) Name() string { return s.name }

func (s *Schema) Alias() string { return s.alias }

// Returns full schema name, like «Name.01.00».
func (s *Schema) FullName() string {
	return fmt.Sprintf("%s.%02d.%02d", s.name, s.versionMajor, s.versionMinor)
}

func (s *Schema) VersionMajor() uint32 { return s.versionMajor }

func (s *Schema) VersionMinor() uint32 { return s.versionMinor }

func (s *Schema) FormatVersion() FormatVersion { return s.formatVersion }

// Returns display label if defined, otherwise schema name.
func (s *Schema) DisplayLabel() string { return s.displayLabel(s.name) }

func (s *Schema) SetFormatVersion(v FormatVersion) { s.formatVersion = v }

func (s *Schema) String() string { return s.FullName() }

// Returns referenced schemas in order of addition.
func (s *Schema) References() []*Schema { return slices.Clone(s.references) }

// Returns referenced schema by alias. Returns nil if not found.
func (s *Schema) Reference(alias string) *Schema {
	for _, r := range s.references {
		if SameName(r.alias, alias) {
			return r
		}
	}
	return nil
}

// Adds reference to other schema.
//
// Referenced schema must have alias unique between references.
// Repeated reference to schema with the same full name is ignored.
func (s *Schema) AddReference(ref *Schema) error {
	if ref == s {
		return ErrUnsupported("schema %v self reference", s)
	}
	if ref.alias == "" {
		return ErrFormat("referenced schema %v has empty alias", ref)
	}
	for _, r := range s.references {
		if r.FullName() == ref.FullName() {
			return nil
		}
		if SameName(r.alias, ref.alias) {
			return ErrAlreadyExists("schema %v alias «%s» is used by %v", ref, ref.alias, r)
		}
	}
	s.references = append(s.references, ref)
	return nil
}

// Returns is schema is the same or is referenced by s.
func (s *Schema) Reaches(other *Schema) bool {
	if s == other {
		return true
	}
	for _, r := range s.references {
		if r == other {
			return true
		}
	}
	return false
}

// Returns types in order of addition.
func (s *Schema) Types() []*Type { return slices.Clone(s.types) }

// Returns type by name, case-insensitive. Returns nil if not found.
func (s *Schema) Type(name string) *Type { return s.typesByKey[NameKey(name)] }

// Returns type by full name «Schema:Type» from this schema or from referenced one.
func (s *Schema) FindType(fullName string) (*Type, error) {
	schemaName, typeName, err := SplitFullName(fullName)
	if err != nil {
		return nil, err
	}
	owner := s
	if !SameName(schemaName, s.name) {
		owner = nil
		for _, r := range s.references {
			if SameName(schemaName, r.name) {
				owner = r
				break
			}
		}
		if owner == nil {
			return nil, ErrSchemaNotFound("schema «%s» is not referenced by %v", schemaName, s)
		}
	}
	if t := owner.Type(typeName); t != nil {
		return t, nil
	}
	return nil, ErrTypeNotFound("type «%s»", fullName)
}

// Adds new type of specified kind.
func (s *Schema) AddType(name string, kind TypeKind) (*Type, error) {
	if err := ValidIdent(name); err != nil {
		return nil, err
	}
	key := NameKey(name)
	if t, ok := s.typesByKey[key]; ok {
		return nil, ErrAlreadyExists("type «%s» conflicts with %v", name, t)
	}
	t := &Type{
		schema:     s,
		name:       name,
		kind:       kind,
		propsByKey: make(map[string]*Property),
	}
	t.withCustomAttributes = makeCustomAttributes(s)
	switch kind {
	case TypeKind_Entity, TypeKind_Struct, TypeKind_CustomAttribute:
	case TypeKind_Relationship:
		t.relationship = newRelationship(t)
	default:
		return nil, ErrUnsupported("type kind %v", kind)
	}
	s.types = append(s.types, t)
	s.typesByKey[key] = t
	return t, nil
}

func (s *Schema) AddEntity(name string) (*Type, error) {
	return s.AddType(name, TypeKind_Entity)
}

func (s *Schema) AddStruct(name string) (*Type, error) {
	return s.AddType(name, TypeKind_Struct)
}

func (s *Schema) AddCustomAttributeType(name string) (*Type, error) {
	return s.AddType(name, TypeKind_CustomAttribute)
}

func (s *Schema) AddRelationship(name string) (*Type, error) {
	return s.AddType(name, TypeKind_Relationship)
}

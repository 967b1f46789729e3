/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/voedger/schemadiff/pkg/scalar"
)

// Custom attribute instances container.
//
// At most one instance of each custom attribute class is attached.
type withCustomAttributes struct {
	owner *Schema
	cas   []*CustomAttribute
}

func makeCustomAttributes(owner *Schema) withCustomAttributes {
	return withCustomAttributes{owner: owner}
}

// Returns custom attribute instances in order of addition.
func (c *withCustomAttributes) CustomAttributes() []*CustomAttribute { return slices.Clone(c.cas) }

// Returns custom attribute instance by class full name. Returns nil if not found.
func (c *withCustomAttributes) CustomAttribute(classFullName string) *CustomAttribute {
	for _, ca := range c.cas {
		if SameName(ca.class.FullName(), classFullName) {
			return ca
		}
	}
	return nil
}

// Attaches custom attribute instance.
//
// Instance class should be declared in container schema or in referenced one.
func (c *withCustomAttributes) SetCustomAttribute(ca *CustomAttribute) error {
	if !c.owner.Reaches(ca.class.schema) {
		return ErrSchemaNotFound("custom attribute %v schema is not referenced by %v", ca.class, c.owner)
	}
	if exists := c.CustomAttribute(ca.class.FullName()); exists != nil {
		return ErrAlreadyExists("custom attribute %v", ca.class)
	}
	c.cas = append(c.cas, ca)
	return nil
}

const (
	fieldKind_null fieldKind = iota
	fieldKind_Scalar
	fieldKind_Struct
	fieldKind_Array
)

// Returns scalar field value.
func ScalarValue(v scalar.Value) FieldValue {
	return FieldValue{kind: fieldKind_Scalar, scalar: v}
}

// Returns structure field value.
func StructValue(members ...Field) FieldValue {
	return FieldValue{kind: fieldKind_Struct, members: slices.Clone(members)}
}

// Returns array field value.
func ArrayValue(items ...FieldValue) FieldValue {
	return FieldValue{kind: fieldKind_Array, items: slices.Clone(items)}
}

func (v FieldValue) IsScalar() bool { return v.kind == fieldKind_Scalar }

func (v FieldValue) IsStruct() bool { return v.kind == fieldKind_Struct }

func (v FieldValue) IsArray() bool { return v.kind == fieldKind_Array }

// Returns scalar payload. Returns Nil if value is not scalar.
func (v FieldValue) Scalar() scalar.Value { return v.scalar }

func (v FieldValue) Members() []Field { return slices.Clone(v.members) }

func (v FieldValue) Items() []FieldValue { return slices.Clone(v.items) }

func (v FieldValue) validate(path string) error {
	switch v.kind {
	case fieldKind_Scalar:
		return nil
	case fieldKind_Struct:
		return validateFields(path+".", v.members)
	case fieldKind_Array:
		for i, item := range v.items {
			if err := item.validate(fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrFormat("field «%s» has no value", path)
	}
}

func (v FieldValue) clone() FieldValue {
	c := FieldValue{kind: v.kind, scalar: v.scalar}
	if v.members != nil {
		c.members = make([]Field, len(v.members))
		for i, m := range v.members {
			c.members[i] = Field{Name: m.Name, Value: m.Value.clone()}
		}
	}
	if v.items != nil {
		c.items = make([]FieldValue, len(v.items))
		for i, item := range v.items {
			c.items[i] = item.clone()
		}
	}
	return c
}

func (v FieldValue) flatten(path string, leaves []Leaf) []Leaf {
	switch v.kind {
	case fieldKind_Scalar:
		leaves = append(leaves, Leaf{Path: path, Value: v.scalar})
	case fieldKind_Struct:
		for _, m := range v.members {
			leaves = m.Value.flatten(path+"."+m.Name, leaves)
		}
	case fieldKind_Array:
		for i, item := range v.items {
			leaves = item.flatten(fmt.Sprintf("%s[%d]", path, i), leaves)
		}
	}
	return leaves
}

func validateFields(prefix string, fields []Field) error {
	names := make(map[string]bool, len(fields))
	for _, f := range fields {
		if err := ValidIdent(f.Name); err != nil {
			return EnrichError(err, "field «%s%s»", prefix, f.Name)
		}
		key := NameKey(f.Name)
		if names[key] {
			return ErrAlreadyExists("field «%s%s»", prefix, f.Name)
		}
		names[key] = true
		if err := f.Value.validate(prefix + f.Name); err != nil {
			return err
		}
	}
	return nil
}

// Creates new custom attribute instance of specified class with specified fields.
//
// Class should be custom attribute type. Field names should be valid identifiers unique within structure.
func NewCustomAttribute(class *Type, fields ...Field) (*CustomAttribute, error) {
	if class == nil {
		return nil, ErrTypeNotFound("custom attribute class is nil")
	}
	if class.kind != TypeKind_CustomAttribute {
		return nil, ErrKindMismatch(class, TypeKind_CustomAttribute)
	}
	if err := validateFields("", fields); err != nil {
		return nil, EnrichError(err, "custom attribute %v", class)
	}
	ca := &CustomAttribute{class: class, fields: make([]Field, len(fields))}
	for i, f := range fields {
		ca.fields[i] = Field{Name: f.Name, Value: f.Value.clone()}
	}
	return ca, nil
}

func (ca *CustomAttribute) Class() *Type { return ca.class }

// Returns top level fields in order of addition.
func (ca *CustomAttribute) Fields() []Field { return slices.Clone(ca.fields) }

// Returns top level field value by name, case-insensitive.
func (ca *CustomAttribute) Field(name string) (FieldValue, bool) {
	for _, f := range ca.fields {
		if SameName(f.Name, name) {
			return f.Value, true
		}
	}
	return FieldValue{}, false
}

// Returns leaf values in field order.
//
// Structure members are joined with «.», array items are addressed as «name[i]».
// Empty structures and arrays give no leaves.
func (ca *CustomAttribute) Flatten() []Leaf {
	leaves := make([]Leaf, 0, len(ca.fields))
	for _, f := range ca.fields {
		leaves = f.Value.flatten(f.Name, leaves)
	}
	return leaves
}

// Returns deep copy of instance with specified class.
func (ca *CustomAttribute) Clone(class *Type) (*CustomAttribute, error) {
	return NewCustomAttribute(class, ca.fields...)
}

func (ca *CustomAttribute) String() string {
	leaves := ca.Flatten()
	s := make([]string, len(leaves))
	for i, l := range leaves {
		s[i] = l.Path + "=" + l.Value.String()
	}
	return ca.class.FullName() + "{" + strings.Join(s, ", ") + "}"
}

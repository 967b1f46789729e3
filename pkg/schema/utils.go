/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Returns case-insensitive key of name.
func NameKey(name string) string {
	return cases.Fold().String(name)
}

// Returns is two names equal ignoring case.
func SameName(a, b string) bool {
	return NameKey(a) == NameKey(b)
}

// Compares names case-insensitive, ties are broken by raw names.
//
// Suitable for slices.SortFunc to get stable case-insensitive order.
func CompareNames(a, b string) int {
	if c := strings.Compare(NameKey(a), NameKey(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Splits type full name «Schema:Type» into schema and type names.
func SplitFullName(fullName string) (schemaName, typeName string, err error) {
	s, t, ok := strings.Cut(fullName, FullNameDelimiter)
	if !ok || s == "" || t == "" {
		return "", "", ErrFormat("invalid type full name «%s»", fullName)
	}
	return s, t, nil
}

// Returns error if name is not valid identifier.
//
// Valid identifier starts with letter or underscore and continues with letters, digits or underscores.
func ValidIdent(name string) error {
	if name == "" {
		return ErrInvalidName(name)
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return ErrInvalidName(name)
		}
	}
	return nil
}

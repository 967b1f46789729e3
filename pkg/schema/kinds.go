/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Renders kind without «TypeKind_» prefix, like «Entity».
func (k TypeKind) TrimString() string {
	const pref = "TypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Parses kind from string rendered by TrimString.
func ParseTypeKind(s string) (TypeKind, error) {
	for k := TypeKind_null + 1; k < TypeKind_count; k++ {
		if k.TrimString() == s {
			return k, nil
		}
	}
	return TypeKind_null, ErrFormat("unknown type kind «%s»", s)
}

// Renders modifier without «Modifier_» prefix, like «Abstract».
func (m Modifier) TrimString() string {
	const pref = "Modifier_"
	return strings.TrimPrefix(m.String(), pref)
}

// Parses modifier from string rendered by TrimString.
func ParseModifier(s string) (Modifier, error) {
	for m := Modifier_None; m < Modifier_count; m++ {
		if m.TrimString() == s {
			return m, nil
		}
	}
	return Modifier_None, ErrFormat("unknown modifier «%s»", s)
}

func (t PrimitiveType) String() string {
	if s, ok := primitiveTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("PrimitiveType(%d)", t)
}

// Parses primitive type name, case-insensitive.
//
// Both «int» and «integer» are accepted for Integer, both «IGeometry» and full geometry name for IGeometry.
func ParsePrimitiveType(s string) (PrimitiveType, error) {
	for t, n := range primitiveTypeNames {
		if strings.EqualFold(n, s) {
			return t, nil
		}
	}
	switch {
	case strings.EqualFold(s, "integer"):
		return PrimitiveType_Integer, nil
	case strings.EqualFold(s, "IGeometry"):
		return PrimitiveType_IGeometry, nil
	}
	return PrimitiveType_null, ErrFormat("unknown primitive type «%s»", s)
}

func (s Strength) String() string {
	if n, ok := strengthNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strength(%d)", s)
}

// Parses strength: «Referencing», «Holding» or «Embedding».
func ParseStrength(s string) (Strength, error) {
	for v, n := range strengthNames {
		if n == s {
			return v, nil
		}
	}
	return DefaultStrength, ErrFormat("unknown strength «%s»", s)
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Parses strength direction: «Forward» or «Backward».
func ParseDirection(s string) (Direction, error) {
	for v, n := range directionNames {
		if n == s {
			return v, nil
		}
	}
	return DefaultDirection, ErrFormat("unknown strength direction «%s»", s)
}

func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Parses format version «major.minor».
func ParseFormatVersion(s string) (FormatVersion, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return FormatVersion{}, ErrFormat("format version «%s»", s)
	}
	const base, bits = 10, 32
	ma, err := strconv.ParseUint(major, base, bits)
	if err != nil {
		return FormatVersion{}, ErrFormat("format version «%s»: %v", s, err)
	}
	mi, err := strconv.ParseUint(minor, base, bits)
	if err != nil {
		return FormatVersion{}, ErrFormat("format version «%s»: %v", s, err)
	}
	return FormatVersion{Major: uint32(ma), Minor: uint32(mi)}, nil
}

// Renders multiplicity, like «(0..*)».
func (m Multiplicity) String() string {
	return "(" + occursString(m.Lower) + ".." + occursString(m.Upper) + ")"
}

// Parses multiplicity «(lower..upper)». Upper may be «*» for unbounded.
func ParseMultiplicity(s string) (Multiplicity, error) {
	body, ok := strings.CutPrefix(s, "(")
	if ok {
		body, ok = strings.CutSuffix(body, ")")
	}
	if !ok {
		return Multiplicity{}, ErrFormat("multiplicity «%s» should be enclosed in parentheses", s)
	}
	lo, up, ok := strings.Cut(body, "..")
	if !ok {
		return Multiplicity{}, ErrFormat("multiplicity «%s» has no «..» delimiter", s)
	}
	lower, err := parseOccurs(lo)
	if err != nil {
		return Multiplicity{}, EnrichError(err, "multiplicity «%s» lower bound", s)
	}
	upper, err := parseOccurs(up)
	if err != nil {
		return Multiplicity{}, EnrichError(err, "multiplicity «%s» upper bound", s)
	}
	m := Multiplicity{Lower: lower, Upper: upper}
	if err := m.Validate(); err != nil {
		return Multiplicity{}, err
	}
	return m, nil
}

// Returns error if lower bound is unbounded or greater than upper, or if upper is zero.
func (m Multiplicity) Validate() error {
	if m.Lower == Unbounded || m.Lower > m.Upper || m.Upper == 0 {
		return ErrFormat("multiplicity %v is out of bounds", m)
	}
	return nil
}

func occursString(o uint32) string {
	if o == Unbounded {
		return unboundedStr
	}
	const base = 10
	return strconv.FormatUint(uint64(o), base)
}

func parseOccurs(s string) (uint32, error) {
	if s == unboundedStr {
		return Unbounded, nil
	}
	const base, bits = 10, 32
	o, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, ErrFormat("occurs «%s»: %v", s, err)
	}
	return uint32(o), nil
}

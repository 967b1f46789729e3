/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package scalar

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
)

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNil() bool { return v.kind == Kind_null }

// Returns string payload. Panics if value is not a string.
func (v Value) AsString() string {
	v.mustBe(Kind_String)
	return v.s
}

func (v Value) AsInt32() int32 {
	v.mustBe(Kind_Int32)
	return int32(v.i)
}

func (v Value) AsInt64() int64 {
	v.mustBe(Kind_Int64)
	return v.i
}

func (v Value) AsDouble() float64 {
	v.mustBe(Kind_Double)
	return v.f
}

func (v Value) AsBool() bool {
	v.mustBe(Kind_Boolean)
	return v.i != 0
}

func (v Value) AsDateTime() int64 {
	v.mustBe(Kind_DateTime)
	return v.i
}

// Returns copy of binary payload.
func (v Value) AsBinary() []byte {
	v.mustBe(Kind_Binary)
	return bytes.Clone(v.b)
}

// Returns is two values have the same kind and the same payload.
//
// Doubles are compared bitwise, so NaN equals to itself.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Kind_null:
		return true
	case Kind_String:
		return v.s == o.s
	case Kind_Int32, Kind_Int64, Kind_Boolean, Kind_DateTime:
		return v.i == o.i
	case Kind_Double:
		return math.Float64bits(v.f) == math.Float64bits(o.f)
	case Kind_Binary:
		return bytes.Equal(v.b, o.b)
	default:
		panic(fmt.Errorf("%w: scalar kind %v", ErrUnsupportedKind, v.kind))
	}
}

// Renders value in diff text form: quoted strings, «<nil>», «%f» for doubles.
func (v Value) String() string {
	switch v.kind {
	case Kind_null:
		return nilStr
	case Kind_String:
		return `"` + v.s + `"`
	case Kind_Int32, Kind_Int64, Kind_DateTime:
		const base = 10
		return strconv.FormatInt(v.i, base)
	case Kind_Double:
		return fmt.Sprintf("%f", v.f)
	case Kind_Boolean:
		if v.i != 0 {
			return trueStr
		}
		return falseStr
	case Kind_Binary:
		return hexPref + hex.EncodeToString(v.b)
	default:
		panic(fmt.Errorf("%w: scalar kind %v", ErrUnsupportedKind, v.kind))
	}
}

// Returns payload as plain Go value: nil, string, int32, int64, float64, bool or []byte.
//
// Date-time is returned as int64 ticks.
func (v Value) Any() any {
	switch v.kind {
	case Kind_null:
		return nil
	case Kind_String:
		return v.s
	case Kind_Int32:
		return int32(v.i)
	case Kind_Int64, Kind_DateTime:
		return v.i
	case Kind_Double:
		return v.f
	case Kind_Boolean:
		return v.i != 0
	case Kind_Binary:
		return bytes.Clone(v.b)
	default:
		panic(fmt.Errorf("%w: scalar kind %v", ErrUnsupportedKind, v.kind))
	}
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Errorf("%w: %v expected, but %v", ErrKindMismatch, k, v.kind))
	}
}

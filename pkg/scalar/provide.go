/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package scalar

// Returns Nil value.
func Nil() Value { return Value{} }

func String(s string) Value { return Value{kind: Kind_String, s: s} }

func Int32(i int32) Value { return Value{kind: Kind_Int32, i: int64(i)} }

func Int64(i int64) Value { return Value{kind: Kind_Int64, i: i} }

func Double(f float64) Value { return Value{kind: Kind_Double, f: f} }

func Bool(b bool) Value {
	v := Value{kind: Kind_Boolean}
	if b {
		v.i = 1
	}
	return v
}

// Returns date-time value from ticks.
func DateTime(ticks int64) Value { return Value{kind: Kind_DateTime, i: ticks} }

// Returns binary value. Data is copied, nil data gives empty binary, not Nil.
func Binary(data []byte) Value {
	b := make([]byte, len(data))
	copy(b, data)
	return Value{kind: Kind_Binary, b: b}
}

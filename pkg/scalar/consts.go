/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package scalar

//go:generate stringer -type=Kind -output=kind_string.go

const (
	// Zero value. Nil value has no kind-specific payload.
	Kind_null Kind = iota

	Kind_String
	Kind_Int32
	Kind_Int64
	Kind_Double
	Kind_Boolean

	// Date-time stored as ticks, 100-ns intervals since 0001-01-01 UTC.
	Kind_DateTime

	Kind_Binary

	Kind_count
)

const (
	nilStr   = "<nil>"
	trueStr  = "true"
	falseStr = "false"
	hexPref  = "0x"
)

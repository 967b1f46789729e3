/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package difftree

//go:generate stringer -type=State,Side -output=state_string.go

// Node classification states
const (
	// No value and no not empty child
	State_Empty State = iota

	// Every not empty part is left-only
	State_Left

	// Every not empty part is right-only
	State_Right

	// Both sides defined, or left-only mixed with right-only
	State_Conflict

	State_count
)

// Sides of two-sided value
const (
	Side_Left Side = iota
	Side_Right

	Side_count
)

const (
	// Name of tree root node
	RootName = "Root"

	// Default render indent width
	DefaultIndentWidth = 2

	// Segment delimiter in access path
	PathDelimiter = "."

	// Access path segment that matches any single node
	PathWildcard = "*"
)

const (
	noIndex  = -1
	noParent = NodeID(-1)
	eol      = "\r\n"
)

var stateLegend = map[State]string{
	State_Empty:    " ",
	State_Left:     "L",
	State_Right:    "R",
	State_Conflict: "!",
}

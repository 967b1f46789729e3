/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge

//go:generate stringer -type=ConflictRule -output=conflictrule_string.go

// Default side for two-sided disagreements
const (
	ConflictRule_PreferLeft ConflictRule = iota
	ConflictRule_PreferRight

	ConflictRule_count
)

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemafuzz

import fuzz "github.com/google/gofuzz"

// Generator builds random valid schemas.
type Generator struct {
	f *fuzz.Fuzzer
}

// Random schema outline. Names are taken from small sets, so that two outlines share classes and properties.
type outline struct {
	Minor       uint8
	Description string
	Classes     []classOutline
}

type classOutline struct {
	Struct      bool
	Modifier    uint8
	Label       *string
	Description string
	Bases       []uint8
	Properties  []propertyOutline
}

type propertyOutline struct {
	Name      uint8
	Type      uint8
	Array     bool
	MinOccurs uint8
	MaxOccurs uint8
	ReadOnly  bool
	Label     *string
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemafuzz

import (
	"math/rand"

	fuzz "github.com/google/gofuzz"
)

// Returns generator seeded by seed. Generators with the same seed build the same schemas.
func New(seed int64) *Generator {
	return &Generator{
		f: fuzz.New().
			RandSource(rand.NewSource(seed)).
			NilChance(.5).
			NumElements(0, maxClasses),
	}
}

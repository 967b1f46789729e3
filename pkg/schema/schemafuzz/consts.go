/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemafuzz

const (
	SchemaName  = "S"
	SchemaAlias = "s"

	maxClasses    = 4
	maxProperties = 4
	maxBases      = 2

	// distinct property names per class
	propertyNames = 6
)

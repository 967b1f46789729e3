/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package scalar

// Scalar value kind.
type Kind uint8

// Scalar value. Tagged union over Kind.
//
// Zero value is Nil.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    []byte
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package require

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Testify require assertions extended with constraint checks for errors and panics.
type Require struct {
	*require.Assertions
	t *testing.T
}

func New(t *testing.T) *Require {
	return &Require{
		Assertions: require.New(t),
		t:          t,
	}
}

// Returns a constraint that checks that value (panic or error) contains
// the given substring.
func (r *Require) Has(substr string, msgAndArgs ...interface{}) Constraint {
	return Has(substr, msgAndArgs...)
}

// Returns a constraint that checks that value (panic or error) does not contain
// the given substring.
func (r *Require) NotHas(substr string, msgAndArgs ...interface{}) Constraint {
	return NotHas(substr, msgAndArgs...)
}

// Returns a constraint that checks that error (or one of the errors in the error chain)
// matches the target.
func (r *Require) Is(target error, msgAndArgs ...interface{}) Constraint {
	return Is(target, msgAndArgs...)
}

// Returns a constraint that checks that none of the errors in the error chain
// match the target.
func (r *Require) NotIs(target error, msgAndArgs ...interface{}) Constraint {
	return NotIs(target, msgAndArgs...)
}

// PanicsWith asserts that f panics and the recovered value satisfies all constraints.
//
//	require := require.New(t)
//	require.PanicsWith(
//		func(){ node.SetValue(scalar.Nil(), scalar.Nil()) },
//		require.Is(difftree.ErrNothingToDiffError),
//		require.Has("Root.Name"))
func (r *Require) PanicsWith(f func(), c ...Constraint) {
	if !PanicsWith(r.t, f, c...) {
		r.t.FailNow()
	}
}

// ErrorWith asserts that error is not nil and satisfies all constraints.
//
//	require := require.New(t)
//	require.ErrorWith(
//		err,
//		require.Is(schema.ErrTypeNotFoundError),
//		require.Has("S:Widget"))
func (r *Require) ErrorWith(e error, c ...Constraint) {
	if !ErrorWith(r.t, e, c...) {
		r.t.FailNow()
	}
}

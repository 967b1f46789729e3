/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package require

import (
	"errors"
	"fmt"
	"testing"
)

var errTypeNotFound = errors.New("type not found")

func TestPanicsWith(t *testing.T) {
	testError := fmt.Errorf("%w: S:Widget", errTypeNotFound)
	tests := []struct {
		name string
		f    func()
		c    Constraint
		want bool
	}{
		{"should fail if no expected panic",
			func() {}, Has("Widget"), false},
		{"should be ok if panic message contains expected substring",
			func() { panic("node «Root.Name» exists") }, Has("Root.Name"), true},
		{"should be ok if panic error contains expected substring",
			func() { panic(testError) }, Has("S:Widget"), true},
		{"should fail if panic with unexpected message",
			func() { panic("other error") }, Has("Widget"), false},
		{"should be ok if panic does not contain deprecated substring",
			func() { panic(testError) }, NotHas("Gadget"), true},
		{"should fail if panic contains deprecated substring",
			func() { panic(testError) }, NotHas("Widget"), false},
		{"should be ok if panic with expected error in chain",
			func() { panic(fmt.Errorf("merge: %w", testError)) }, Is(errTypeNotFound), true},
		{"should fail if panic without error",
			func() { panic("panic message") }, Is(errTypeNotFound), false},
		{"should be ok if panic with other error",
			func() { panic(errors.New("other error")) }, NotIs(errTypeNotFound), true},
		{"should fail if panic with expected error",
			func() { panic(testError) }, NotIs(errTypeNotFound), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockT := new(testing.T)
			if r := PanicsWith(mockT, tt.f, tt.c); r != tt.want {
				t.Errorf("PanicsWith() returns %v, want %v", r, tt.want)
			}
		})
	}
}

func TestErrorWith(t *testing.T) {
	testError := fmt.Errorf("%w: S:Widget", errTypeNotFound)
	tests := []struct {
		name string
		e    error
		c    Constraint
		want bool
	}{
		{"should fail if no error",
			nil, Has("Widget"), false},
		{"should be ok if error contains expected substring",
			testError, Has("S:Widget"), true},
		{"should be ok if wrapped error contains expected substring",
			fmt.Errorf("merge: %w", testError), Has("S:Widget"), true},
		{"should fail if unexpected error",
			errors.New("other error"), Has("Widget"), false},
		{"should fail if error contains deprecated substring",
			testError, NotHas("Widget"), false},
		{"should be ok if error with expected error in chain",
			fmt.Errorf("merge: %w", testError), Is(errTypeNotFound), true},
		{"should fail if error with other error",
			errors.New("other error"), Is(errTypeNotFound), false},
		{"should fail if error with not expected error",
			testError, NotIs(errTypeNotFound), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockT := new(testing.T)
			if r := ErrorWith(mockT, tt.e, tt.c); r != tt.want {
				t.Errorf("ErrorWith() returns %v, want %v", r, tt.want)
			}
		})
	}
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrSchemaNotFoundError = errors.New("schema not found")

func ErrSchemaNotFound(msg string, args ...any) error {
	return EnrichError(ErrSchemaNotFoundError, msg, args...)
}

var ErrTypeNotFoundError = errors.New("type not found")

func ErrTypeNotFound(msg string, args ...any) error {
	return EnrichError(ErrTypeNotFoundError, msg, args...)
}

var ErrPropertyNotFoundError = errors.New("property not found")

func ErrPropertyNotFound(msg string, args ...any) error {
	return EnrichError(ErrPropertyNotFoundError, msg, args...)
}

var ErrConstraintTypeMismatchError = errors.New("constraint type mismatch")

func ErrConstraintTypeMismatch(msg string, args ...any) error {
	return EnrichError(ErrConstraintTypeMismatchError, msg, args...)
}

// Type kind is not acceptable at the place it is used.
func ErrKindMismatch(t *Type, expected ...TypeKind) error {
	return ErrConstraintTypeMismatch("%v is %v, expected one of %v", t, t.Kind().TrimString(), expected)
}

var ErrFormatError = errors.New("format error")

func ErrFormat(msg string, args ...any) error {
	return EnrichError(ErrFormatError, msg, args...)
}

func ErrInvalidName(name string) error {
	return ErrFormat("invalid name «%s»", name)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrUnsupportedError = errors.ErrUnsupported

func ErrUnsupported(msg string, args ...any) error {
	return EnrichError(ErrUnsupportedError, msg, args...)
}

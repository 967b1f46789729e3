/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package difftree

import (
	"errors"
	"fmt"
)

func enrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrInvalidAccessPathError = errors.New("invalid access path")

func ErrInvalidAccessPath(path string, cause error) error {
	return enrichError(ErrInvalidAccessPathError, "«%s»: %v", path, cause)
}

var ErrNodeNotFoundError = errors.New("node not found")

func ErrNodeNotFound(path string) error {
	return enrichError(ErrNodeNotFoundError, "«%s»", path)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return enrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrNothingToDiffError = errors.New("both sides are nil")

func ErrNothingToDiff(n Node) error {
	return enrichError(ErrNothingToDiffError, "node «%s»", n.Path())
}

var ErrTreeFinalizedError = errors.New("tree is finalized")

func ErrTreeFinalized(op string) error {
	return enrichError(ErrTreeFinalizedError, "%s", op)
}

var ErrUnsupportedError = errors.ErrUnsupported

func ErrUnsupported(msg string, args ...any) error {
	return enrichError(ErrUnsupportedError, msg, args...)
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package scalar

import "errors"

var ErrKindMismatch = errors.New("scalar kind mismatch")

var ErrUnsupportedKind = errors.ErrUnsupported

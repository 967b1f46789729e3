/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/goutils/logger"
	"github.com/voedger/schemadiff/pkg/schema"
)

// Builds new schema from diff tree of left and right schemas.
//
// Left-only and right-only differences are taken unconditionally, rule selects default side
// for conflicts. Fields without diff nodes are copied from default side.
// Inputs are never changed. First error aborts merge, no partial schema is returned.
// Context attributes are added to log lines, «mergeid» attribute identifies the call.
func Merge(ctx context.Context, tree *difftree.Tree, left, right *schema.Schema, rule ConflictRule) (*schema.Schema, error) {
	var side difftree.Side
	switch rule {
	case ConflictRule_PreferLeft:
		side = difftree.Side_Left
	case ConflictRule_PreferRight:
		side = difftree.Side_Right
	default:
		return nil, schema.ErrUnsupported("conflict rule %v", rule)
	}
	if tree == nil || left == nil || right == nil {
		return nil, schema.ErrUnsupported("merge requires diff tree and both schemas")
	}

	ctx = logger.WithContextAttrs(ctx, logger.LogAttr_MergeID, uuid.NewString())
	ctx = logger.WithContextAttrs(ctx, logger.LogAttr_Rule, rule.TrimString())
	m := &merger{
		ctx:      ctx,
		tree:     tree,
		side:     side,
		left:     left,
		right:    right,
		resolved: make(map[string]*schema.Type),
	}
	if err := m.mergeSchema(); err != nil {
		if logger.IsVerbose() {
			logger.VerboseCtx(ctx, fmt.Sprintf("merge %v with %v failed: %v", left, right, err))
		}
		return nil, err
	}

	if logger.IsInfo() {
		logger.InfoCtx(ctx, fmt.Sprintf("merge %v with %v: %d classes, %d merged field by field",
			left, right, len(m.plans), m.conflicts))
	}
	return m.merged, nil
}

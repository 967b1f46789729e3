/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemadiff

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/goutils/logger"
	"github.com/voedger/schemadiff/pkg/schema"
)

// Compares two versions of the same schema and returns finalized diff tree.
//
// Tree contains only differences: diff of equal schemas is empty.
// Context attributes are added to log lines, «diffid» attribute identifies the call.
func Diff(ctx context.Context, left, right *schema.Schema, opts ...Option) *difftree.Tree {
	o := options{registry: NewRegistry()}
	for _, opt := range opts {
		opt(&o)
	}

	ctx = logger.WithContextAttrs(ctx, logger.LogAttr_DiffID, uuid.NewString())
	d := &differ{ctx: ctx, registry: o.registry, tree: difftree.New()}
	d.diffSchemas(left, right)
	d.tree.Finalize()

	if logger.IsInfo() {
		logger.InfoCtx(ctx, fmt.Sprintf("diff %v with %v: %d classes differ, %v", left, right, d.classes, d.tree.Root().Classify(true)))
	}
	return d.tree
}

// Uses specified custom attribute flatten strategies.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// Creates new empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]FlattenStrategy)}
}

// Flattens instance with CustomAttribute.Flatten.
func DefaultFlatten(ca *schema.CustomAttribute) []schema.Leaf { return ca.Flatten() }

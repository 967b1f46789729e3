/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemadiff

import (
	"context"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/schema"
)

// Flattens custom attribute instance into ordered leaves.
type FlattenStrategy func(*schema.CustomAttribute) []schema.Leaf

// Custom attribute flatten strategies keyed by custom attribute class full name.
//
// Classes without registered strategy are flattened by DefaultFlatten.
type Registry struct {
	strategies map[string]FlattenStrategy
}

// Diff option.
type Option func(*options)

type options struct {
	registry *Registry
}

// Slot of aligned list.
//
// Left and Right are member identities, empty string if side has no member in slot.
type Slot struct {
	Left, Right string
}

type differ struct {
	ctx      context.Context
	registry *Registry
	tree     *difftree.Tree
	classes  int
}

// Two-sided member of name union.
type pair[T any] struct {
	name        string
	left, right T
}

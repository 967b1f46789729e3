/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge

import (
	"context"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/schema"
)

// Default side for genuine two-sided disagreements.
//
// Left-only and right-only differences are taken regardless of rule.
type ConflictRule uint8

// Diff subtree of merged object. Zero value is missing subtree: object is copied from default side.
type subtree struct {
	node difftree.Node
	ok   bool
}

// Type to be materialized in merged schema.
//
// Type is copied from side if merge is false, otherwise merged field by field from node.
type typePlan struct {
	name        string
	node        subtree
	left, right *schema.Type
	side        difftree.Side
	merge       bool
	merged      *schema.Type
}

type merger struct {
	ctx         context.Context
	tree        *difftree.Tree
	side        difftree.Side
	left, right *schema.Schema
	merged      *schema.Schema
	plans       []*typePlan
	resolved    map[string]*schema.Type
	conflicts   int
}

type pair[T any] struct {
	name        string
	left, right T
}

// Container of custom attribute instances.
type customAttributes interface {
	SetCustomAttribute(*schema.CustomAttribute) error
}

type labeled interface {
	IsDisplayLabelDefined() bool
	DisplayLabel() string
	Description() string
	SetDisplayLabel(string)
	SetDescription(string)
}

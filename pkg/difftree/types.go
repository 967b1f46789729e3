/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package difftree

import "github.com/voedger/schemadiff/pkg/scalar"

// Node classification: empty, left-only, right-only or conflict.
type State uint8

// Side of two-sided value: left or right.
type Side uint8

// Index of node in tree arena.
type NodeID int32

type nodeKind uint8

const (
	nodeKind_Composite nodeKind = iota
	nodeKind_Scalar
)

type node struct {
	name     string
	index    int
	kind     nodeKind
	parent   NodeID
	children []NodeID
	byName   map[string]NodeID
	values   [Side_count]scalar.Value
	removed  bool
}

// Diff tree. Arena of nodes addressed by NodeID.
//
// Tree is built once, then finalized by Finalize. Finalized tree is immutable.
type Tree struct {
	nodes  []node
	rollup []State
}

// Handle of tree node.
type Node struct {
	tree *Tree
	id   NodeID
}

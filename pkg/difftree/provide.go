/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package difftree

// Returns new tree with single composite root node named «Root».
func New() *Tree {
	t := &Tree{}
	t.newNode(noParent, RootName, noIndex, nodeKind_Composite)
	return t
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemadiff

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/goutils/logger"
	"github.com/voedger/schemadiff/pkg/scalar"
	"github.com/voedger/schemadiff/pkg/schema"
)

var leafComparer = cmp.Comparer(scalar.Value.Equal)

func (d *differ) diffCustomAttributes(parent difftree.Node, l, r []*schema.CustomAttribute) {
	n := parent.AddComposite(NodeNameCustomAttributes)
	for _, p := range union(l, r, classFullName) {
		d.diffCustomAttribute(n, p.name, p.left, p.right)
	}
	parent.RemoveIfEmpty(n)
}

// Compares instances of the same custom attribute class leaf by leaf.
//
// Instance present on one side only gives its not nil leaves.
// Instance without leaves gives scalar node with class full name.
func (d *differ) diffCustomAttribute(parent difftree.Node, name string, l, r *schema.CustomAttribute) {
	ll, rl := d.flatten(l), d.flatten(r)
	if l != nil && r != nil {
		if cmp.Equal(ll, rl, leafComparer) {
			return
		}
		if logger.IsVerbose() {
			logger.VerboseCtx(d.ctx, fmt.Sprintf("custom attribute «%s» in %v differs (-left +right):\n%s",
				name, parent, cmp.Diff(ll, rl, leafComparer)))
		}
	}

	paths, lv, rv := unionLeaves(ll, rl)
	if l == nil || r == nil {
		if !hasValues(lv) && !hasValues(rv) {
			lc, rc := scalar.Nil(), scalar.Nil()
			if l != nil {
				lc = scalar.String(name)
			} else {
				rc = scalar.String(name)
			}
			parent.AddScalar(name).SetValue(lc, rc)
			return
		}
	}

	n := parent.AddComposite(name)
	clashes := composedPaths(paths)
	for _, path := range paths {
		if lv[path].Equal(rv[path]) {
			continue
		}
		leafNode(n, path, clashes).SetValue(lv[path], rv[path])
	}
	parent.RemoveIfEmpty(n)
}

func (d *differ) flatten(ca *schema.CustomAttribute) []schema.Leaf {
	if ca == nil {
		return nil
	}
	return d.registry.Strategy(ca.Class().FullName())(ca)
}

// Returns leaf paths of both sides in order of first appearance, left then right,
// and values by path.
func unionLeaves(l, r []schema.Leaf) (paths []string, lv, rv map[string]scalar.Value) {
	lv, rv = make(map[string]scalar.Value, len(l)), make(map[string]scalar.Value, len(r))
	add := func(leaves []schema.Leaf, values map[string]scalar.Value) {
		for _, leaf := range leaves {
			if leaf.Path == "" {
				continue
			}
			if _, ok := lv[leaf.Path]; !ok {
				if _, ok := rv[leaf.Path]; !ok {
					paths = append(paths, leaf.Path)
				}
			}
			values[leaf.Path] = leaf.Value
		}
	}
	add(l, lv)
	add(r, rv)
	return paths, lv, rv
}

func hasValues(values map[string]scalar.Value) bool {
	for _, v := range values {
		if !v.IsNil() {
			return true
		}
	}
	return false
}

// Returns paths used as composite prefix by other paths.
func composedPaths(paths []string) map[string]bool {
	composed := make(map[string]bool)
	for _, path := range paths {
		for i := range len(path) {
			if path[i] == leafPathDelimiter[0] {
				composed[path[:i]] = true
			}
		}
	}
	return composed
}

// Returns scalar node for leaf path. Each path segment except last gives composite node.
//
// Leaf which path is a prefix of other leaf path gets LeafClashSuffix.
func leafNode(parent difftree.Node, path string, clashes map[string]bool) difftree.Node {
	segments := strings.Split(path, leafPathDelimiter)
	n := parent
	for _, s := range segments[:len(segments)-1] {
		n = n.AddComposite(s)
	}
	last := segments[len(segments)-1]
	if clashes[path] {
		last += LeafClashSuffix
	}
	return n.AddScalar(last)
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge

import (
	"slices"
	"strings"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/schema"
)

// Renders rule without «ConflictRule_» prefix, like «PreferLeft».
func (r ConflictRule) TrimString() string {
	const pref = "ConflictRule_"
	return strings.TrimPrefix(r.String(), pref)
}

func bySide[T any](side difftree.Side, l, r T) T {
	if side == difftree.Side_Left {
		return l
	}
	return r
}

func otherSide(side difftree.Side) difftree.Side {
	if side == difftree.Side_Left {
		return difftree.Side_Right
	}
	return difftree.Side_Left
}

// Returns specified side if it has object, otherwise other side.
func present[T any](side difftree.Side, l, r *T) difftree.Side {
	if bySide(side, l, r) == nil {
		return otherSide(side)
	}
	return side
}

func items[T, I any](x *T, f func(*T) []I) []I {
	if x == nil {
		return nil
	}
	return f(x)
}

// Returns members of default side in order, then members of other side missing in default side.
//
// Member name is taken from left side if present.
func ordered[T any](side difftree.Side, l, r []*T, name func(*T) string) []pair[*T] {
	byKey := func(list []*T) map[string]*T {
		m := make(map[string]*T, len(list))
		for _, x := range list {
			m[schema.NameKey(name(x))] = x
		}
		return m
	}
	lm, rm := byKey(l), byKey(r)

	res := make([]pair[*T], 0, len(l)+len(r))
	seen := make(map[string]bool, len(l)+len(r))
	for _, list := range [][]*T{bySide(side, l, r), bySide(otherSide(side), l, r)} {
		for _, x := range list {
			k := schema.NameKey(name(x))
			if seen[k] {
				continue
			}
			seen[k] = true
			p := pair[*T]{name: name(x), left: lm[k], right: rm[k]}
			if p.left != nil {
				p.name = name(p.left)
			}
			res = append(res, p)
		}
	}
	return res
}

func fullNames(types []*schema.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.FullName()
	}
	return names
}

func findType(types []*schema.Type, fullName string) *schema.Type {
	for _, t := range types {
		if schema.SameName(t.FullName(), fullName) {
			return t
		}
	}
	return nil
}

// Inserts x after nearest preceding member of its own list found in res, or at front.
func insertAfterPredecessor(res, own []*schema.Type, x *schema.Type) []*schema.Type {
	i := slices.Index(own, x)
	for j := i - 1; j >= 0; j-- {
		if k := slices.IndexFunc(res, func(t *schema.Type) bool {
			return schema.SameName(t.FullName(), own[j].FullName())
		}); k >= 0 {
			return slices.Insert(res, k+1, x)
		}
	}
	return slices.Insert(res, 0, x)
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemadiff

import "github.com/voedger/schemadiff/pkg/schema"

// Aligns two ordered lists of member identities.
//
// Slots are ordered by first appearance of identity across left list, then right list.
// Member present in one list only gets own slot.
//
// Slots of identities present in both lists pair members by rank among shared members, so that
// k-th shared member of left list is paired with k-th shared member of right list.
// Pure reorder of shared members gives differing pairs starting from the first divergent rank.
// Identities are compared case-insensitive.
func Align(left, right []string) []Slot {
	inLeft, inRight := keySet(left), keySet(right)

	var sharedRight []string
	for _, r := range right {
		if inLeft[schema.NameKey(r)] {
			sharedRight = append(sharedRight, r)
		}
	}

	slots := make([]Slot, 0, len(left)+len(right)-len(sharedRight))
	rank := 0
	for _, l := range left {
		if !inRight[schema.NameKey(l)] || rank == len(sharedRight) {
			slots = append(slots, Slot{Left: l})
			continue
		}
		slots = append(slots, Slot{Left: l, Right: sharedRight[rank]})
		rank++
	}
	for _, r := range right {
		if !inLeft[schema.NameKey(r)] {
			slots = append(slots, Slot{Right: r})
		}
	}
	return slots
}

// Returns is slot sides hold different members.
func (s Slot) Differs() bool { return !schema.SameName(s.Left, s.Right) }

// Returns is slot member present in left list only.
func (s Slot) IsLeftOnly() bool { return s.Right == "" }

// Returns is slot member present in right list only.
func (s Slot) IsRightOnly() bool { return s.Left == "" }

func keySet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[schema.NameKey(n)] = true
	}
	return set
}

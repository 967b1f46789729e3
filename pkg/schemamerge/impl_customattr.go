/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge

import (
	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/schema"
)

// Merges custom attribute instances into dst.
//
// Merge is shallow: each instance is taken whole from one side. Instances of def side go first,
// then instances of other side classes missing in def side. Instance class is resolved to merged type.
func (m *merger) mergeCustomAttributes(st subtree, def difftree.Side, l, r []*schema.CustomAttribute, dst customAttributes) error {
	pairs := ordered(def, l, r, classFullName)
	if err := checkCustomAttributes(st, l, r); err != nil {
		return err
	}

	for _, p := range pairs {
		var ca *schema.CustomAttribute
		switch s := st.child(p.name).state(); s {
		case difftree.State_Empty:
			ca = bySide(def, p.left, p.right)
		case difftree.State_Left:
			ca = p.left
		case difftree.State_Right:
			ca = p.right
		case difftree.State_Conflict:
			ca = bySide(present(m.side, p.left, p.right), p.left, p.right)
		default:
			panic(schema.ErrUnsupported("custom attribute «%s» state %v", p.name, s))
		}
		if ca == nil {
			continue
		}

		class, err := m.resolveType(ca.Class())
		if err != nil {
			return err
		}
		clone, err := ca.Clone(class)
		if err != nil {
			return err
		}
		if err := dst.SetCustomAttribute(clone); err != nil {
			return err
		}
	}
	return nil
}

func classFullName(ca *schema.CustomAttribute) string { return ca.Class().FullName() }

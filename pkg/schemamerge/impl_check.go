/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge

import (
	"fmt"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/scalar"
	"github.com/voedger/schemadiff/pkg/schema"
	"github.com/voedger/schemadiff/pkg/schemadiff"
)

// Checks class subtree names only members of left or right class.
//
// Copied class does not read its subtree, so members are checked before any class is built.
func (m *merger) checkType(st subtree, l, r *schema.Type) error {
	if !st.ok {
		return nil
	}
	if err := checkAligned(st.child(schemadiff.NodeNameBaseClasses),
		items(l, (*schema.Type).BaseTypes), items(r, (*schema.Type).BaseTypes)); err != nil {
		return err
	}

	props := st.child(schemadiff.NodeNameProperties)
	pairs := ordered(m.side, items(l, (*schema.Type).Properties), items(r, (*schema.Type).Properties), (*schema.Property).Name)
	if err := checkChildren(props, pairs, func(name string) error {
		return schema.ErrPropertyNotFound("property «%s» of %v is missing in %v and %v", name, props, l, r)
	}); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := checkCustomAttributes(props.child(p.name).child(schemadiff.NodeNameCustomAttributes),
			items(p.left, (*schema.Property).CustomAttributes), items(p.right, (*schema.Property).CustomAttributes)); err != nil {
			return err
		}
	}

	rel := st.child(schemadiff.NodeNameRelationshipInfo)
	for _, c := range []struct {
		name   string
		source bool
	}{{schemadiff.NodeNameSource, true}, {schemadiff.NodeNameTarget, false}} {
		if err := checkConstraint(rel.child(c.name),
			constraintOf(relationshipOf(l), c.source), constraintOf(relationshipOf(r), c.source)); err != nil {
			return err
		}
	}

	return checkCustomAttributes(st.child(schemadiff.NodeNameCustomAttributes),
		items(l, (*schema.Type).CustomAttributes), items(r, (*schema.Type).CustomAttributes))
}

func checkConstraint(st subtree, l, r *schema.Constraint) error {
	if err := checkAligned(st.child(schemadiff.NodeNameClasses),
		items(l, (*schema.Constraint).Types), items(r, (*schema.Constraint).Types)); err != nil {
		return err
	}
	return checkCustomAttributes(st.child(schemadiff.NodeNameCustomAttributes),
		items(l, (*schema.Constraint).CustomAttributes), items(r, (*schema.Constraint).CustomAttributes))
}

func checkCustomAttributes(st subtree, l, r []*schema.CustomAttribute) error {
	return checkChildren(st, ordered(difftree.Side_Left, l, r, classFullName), func(name string) error {
		return schema.ErrTypeNotFound("custom attribute «%s» of %v is missing in both sides", name, st)
	})
}

// Checks aligned list subtree has slots within alignment of l and r, and
// slot values are full names of l or r members.
func checkAligned(st subtree, l, r []*schema.Type) error {
	if !st.ok {
		return nil
	}
	slots := schemadiff.Align(fullNames(l), fullNames(r))
	pairs := make([]pair[*schema.Type], len(slots))
	for i := range slots {
		pairs[i].name = fmt.Sprintf("%s[%d]", st.node.Name(), i)
	}
	if err := checkChildren(st, pairs, func(name string) error {
		return schema.ErrTypeNotFound("slot «%s» of %v is out of %d aligned members", name, st, len(slots))
	}); err != nil {
		return err
	}

	for _, n := range st.node.Children() {
		for _, v := range []scalar.Value{n.Left(), n.Right()} {
			if v.Kind() != scalar.Kind_String {
				continue
			}
			if name := v.AsString(); findType(l, name) == nil && findType(r, name) == nil {
				return schema.ErrTypeNotFound("%v value «%s» is missing in both sides", n, name)
			}
		}
	}
	return nil
}

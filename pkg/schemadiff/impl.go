/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemadiff

import (
	"fmt"

	"github.com/voedger/schemadiff/pkg/difftree"
	"github.com/voedger/schemadiff/pkg/goutils/logger"
	"github.com/voedger/schemadiff/pkg/scalar"
	"github.com/voedger/schemadiff/pkg/schema"
)

// Any side may be nil, then the other side is appended as one-sided subtree.
// Every composite is removed from its parent if nothing differs inside.

func (d *differ) diffSchemas(l, r *schema.Schema) {
	root := d.tree.Root()

	diffField(root, NodeNameName, l, r, func(s *schema.Schema) scalar.Value { return scalar.String(s.Name()) })
	diffField(root, NodeNameVersionMajor, l, r, func(s *schema.Schema) scalar.Value { return scalar.Int64(int64(s.VersionMajor())) })
	diffField(root, NodeNameVersionMinor, l, r, func(s *schema.Schema) scalar.Value { return scalar.Int64(int64(s.VersionMinor())) })
	diffField(root, NodeNameFormatVersion, l, r, func(s *schema.Schema) scalar.Value { return scalar.String(s.FormatVersion().String()) })
	diffField(root, NodeNameDisplayLabel, l, r, displayLabel[*schema.Schema])
	diffField(root, NodeNameDescription, l, r, description[*schema.Schema])
	diffField(root, NodeNameAlias, l, r, func(s *schema.Schema) scalar.Value { return scalar.String(s.Alias()) })

	d.diffReferences(root, l, r)

	classes := root.AddComposite(NodeNameClasses)
	for _, p := range union(items(l, (*schema.Schema).Types), items(r, (*schema.Schema).Types), (*schema.Type).Name) {
		d.diffType(classes, p.name, p.left, p.right)
	}
	root.RemoveIfEmpty(classes)

	d.diffCustomAttributes(root, items(l, (*schema.Schema).CustomAttributes), items(r, (*schema.Schema).CustomAttributes))
}

// Referenced schemas are compared by alias. Node value is referenced schema full name.
func (d *differ) diffReferences(parent difftree.Node, l, r *schema.Schema) {
	n := parent.AddComposite(NodeNameReferences)
	for _, p := range union(items(l, (*schema.Schema).References), items(r, (*schema.Schema).References), (*schema.Schema).Alias) {
		diffField(n, p.name, p.left, p.right, func(s *schema.Schema) scalar.Value { return scalar.String(s.FullName()) })
	}
	parent.RemoveIfEmpty(n)
}

func (d *differ) diffType(parent difftree.Node, name string, l, r *schema.Type) {
	n := parent.AddComposite(name)

	if l != nil && r != nil && l.Name() != r.Name() {
		n.AddScalar(NodeNameName).SetValue(scalar.String(l.Name()), scalar.String(r.Name()))
	}
	diffField(n, NodeNameDisplayLabel, l, r, displayLabel[*schema.Type])
	diffField(n, NodeNameDescription, l, r, description[*schema.Type])
	diffField(n, NodeNameKind, l, r, func(t *schema.Type) scalar.Value { return scalar.String(t.Kind().TrimString()) })
	diffField(n, NodeNameModifier, l, r, func(t *schema.Type) scalar.Value { return scalar.String(t.Modifier().TrimString()) })
	diffAligned(n, NodeNameBaseClasses, fullNames(items(l, (*schema.Type).BaseTypes)), fullNames(items(r, (*schema.Type).BaseTypes)))

	props := n.AddComposite(NodeNameProperties)
	for _, p := range union(items(l, (*schema.Type).Properties), items(r, (*schema.Type).Properties), (*schema.Property).Name) {
		d.diffProperty(props, p.name, p.left, p.right)
	}
	n.RemoveIfEmpty(props)

	d.diffCustomAttributes(n, items(l, (*schema.Type).CustomAttributes), items(r, (*schema.Type).CustomAttributes))
	d.diffRelationship(n, relationshipOf(l), relationshipOf(r))

	if parent.RemoveIfEmpty(n) {
		return
	}
	d.classes++
	if logger.IsVerbose() {
		logger.VerboseCtx(d.ctx, fmt.Sprintf("class «%s» differs: %v", name, n.Classify(true)))
	}
}

func (d *differ) diffProperty(parent difftree.Node, name string, l, r *schema.Property) {
	n := parent.AddComposite(name)

	if l != nil && r != nil && l.Name() != r.Name() {
		n.AddScalar(NodeNameName).SetValue(scalar.String(l.Name()), scalar.String(r.Name()))
	}
	diffField(n, NodeNameDisplayLabel, l, r, displayLabel[*schema.Property])
	diffField(n, NodeNameDescription, l, r, description[*schema.Property])
	diffField(n, NodeNameTypeName, l, r, func(p *schema.Property) scalar.Value { return scalar.String(p.TypeName()) })
	diffField(n, NodeNameIsArray, l, r, func(p *schema.Property) scalar.Value { return scalar.Bool(p.IsArray()) })

	arr := n.AddComposite(NodeNameArrayInfo)
	diffField(arr, NodeNameMinOccurs, l, r, func(p *schema.Property) scalar.Value {
		minOccurs, _ := p.Occurs()
		return occurs(p, minOccurs)
	})
	diffField(arr, NodeNameMaxOccurs, l, r, func(p *schema.Property) scalar.Value {
		_, maxOccurs := p.Occurs()
		return occurs(p, maxOccurs)
	})
	n.RemoveIfEmpty(arr)

	diffField(n, NodeNameIsReadOnly, l, r, func(p *schema.Property) scalar.Value { return scalar.Bool(p.IsReadOnly()) })
	diffField(n, NodeNameIsOverridden, l, r, func(p *schema.Property) scalar.Value { return scalar.Bool(p.IsOverridden()) })

	d.diffCustomAttributes(n, items(l, (*schema.Property).CustomAttributes), items(r, (*schema.Property).CustomAttributes))

	parent.RemoveIfEmpty(n)
}

func (d *differ) diffRelationship(parent difftree.Node, l, r *schema.Relationship) {
	if l == nil && r == nil {
		return
	}
	n := parent.AddComposite(NodeNameRelationshipInfo)

	diffField(n, NodeNameStrength, l, r, func(rel *schema.Relationship) scalar.Value { return scalar.String(rel.Strength().String()) })
	diffField(n, NodeNameStrengthDirection, l, r, func(rel *schema.Relationship) scalar.Value { return scalar.String(rel.Direction().String()) })
	d.diffConstraint(n, NodeNameSource, constraintOf(l, true), constraintOf(r, true))
	d.diffConstraint(n, NodeNameTarget, constraintOf(l, false), constraintOf(r, false))

	parent.RemoveIfEmpty(n)
}

func (d *differ) diffConstraint(parent difftree.Node, name string, l, r *schema.Constraint) {
	n := parent.AddComposite(name)

	diffField(n, NodeNameMultiplicity, l, r, func(c *schema.Constraint) scalar.Value { return scalar.String(c.Multiplicity().String()) })
	diffField(n, NodeNameRoleLabel, l, r, func(c *schema.Constraint) scalar.Value { return str(c.RoleLabel()) })
	diffField(n, NodeNameIsPolymorphic, l, r, func(c *schema.Constraint) scalar.Value { return scalar.Bool(c.IsPolymorphic()) })
	diffField(n, NodeNameAbstractConstraint, l, r, func(c *schema.Constraint) scalar.Value {
		if a := c.AbstractConstraint(); a != nil {
			return scalar.String(a.FullName())
		}
		return scalar.Nil()
	})
	diffAligned(n, NodeNameClasses, fullNames(items(l, (*schema.Constraint).Types)), fullNames(items(r, (*schema.Constraint).Types)))
	d.diffCustomAttributes(n, items(l, (*schema.Constraint).CustomAttributes), items(r, (*schema.Constraint).CustomAttributes))

	parent.RemoveIfEmpty(n)
}

// Adds indexed node for each slot where sides differ.
func diffAligned(parent difftree.Node, name string, l, r []string) {
	n := parent.AddComposite(name)
	for i, s := range Align(l, r) {
		if s.Differs() {
			n.AddIndexed(i).SetValue(str(s.Left), str(s.Right))
		}
	}
	parent.RemoveIfEmpty(n)
}

func diffScalar(parent difftree.Node, name string, l, r scalar.Value) {
	if !l.Equal(r) {
		parent.AddScalar(name).SetValue(l, r)
	}
}

// Compares field extracted by f from both sides. Nil side gives Nil value.
func diffField[T any](parent difftree.Node, name string, l, r *T, f func(*T) scalar.Value) {
	diffScalar(parent, name, value(l, f), value(r, f))
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge

import (
	"fmt"

	"github.com/voedger/schemadiff/pkg/goutils/logger"
	"github.com/voedger/schemadiff/pkg/schema"
	"github.com/voedger/schemadiff/pkg/schemadiff"
)

func (m *merger) mergeSchema() error {
	root := subtree{node: m.tree.Root(), ok: true}
	def := bySide(m.side, m.left, m.right)

	name, err := m.resolveString(root.child(schemadiff.NodeNameName), def.Name())
	if err != nil {
		return err
	}
	alias, err := m.resolveString(root.child(schemadiff.NodeNameAlias), def.Alias())
	if err != nil {
		return err
	}
	major, err := m.resolveUint32(root.child(schemadiff.NodeNameVersionMajor), def.VersionMajor())
	if err != nil {
		return err
	}
	minor, err := m.resolveUint32(root.child(schemadiff.NodeNameVersionMinor), def.VersionMinor())
	if err != nil {
		return err
	}
	fv, err := m.resolveString(root.child(schemadiff.NodeNameFormatVersion), def.FormatVersion().String())
	if err != nil {
		return err
	}
	formatVersion, err := schema.ParseFormatVersion(fv)
	if err != nil {
		return err
	}

	if m.merged, err = schema.New(name, alias, major, minor); err != nil {
		return err
	}
	m.merged.SetFormatVersion(formatVersion)
	if err := m.mergeLabel(m.merged, root, def); err != nil {
		return err
	}

	if err := m.mergeReferences(root.child(schemadiff.NodeNameReferences)); err != nil {
		return err
	}
	if err := m.planTypes(root.child(schemadiff.NodeNameClasses)); err != nil {
		return err
	}
	for _, p := range m.plans {
		if err := m.buildType(p); err != nil {
			return schema.EnrichError(err, "merge %v", p.merged)
		}
	}

	return m.mergeCustomAttributes(root.child(schemadiff.NodeNameCustomAttributes), m.side,
		m.left.CustomAttributes(), m.right.CustomAttributes(), m.merged)
}

// Referenced schemas are matched by alias, node value is referenced schema full name.
func (m *merger) mergeReferences(st subtree) error {
	pairs := ordered(m.side, m.left.References(), m.right.References(), (*schema.Schema).Alias)
	if err := checkChildren(st, pairs, func(name string) error {
		return schema.ErrSchemaNotFound("reference «%s» of %v is missing in %v and %v", name, st, m.left, m.right)
	}); err != nil {
		return err
	}

	for _, p := range pairs {
		ref := bySide(m.side, p.left, p.right)
		n := st.child(p.name)
		if n.ok {
			fullName, err := m.resolveString(n, "")
			if err != nil {
				return err
			}
			ref = nil
			for _, r := range []*schema.Schema{p.left, p.right} {
				if r != nil && r.FullName() == fullName {
					ref = r
					break
				}
			}
			if ref == nil {
				return schema.ErrSchemaNotFound("reference «%s» to «%s»", p.name, fullName)
			}
		}
		if ref == nil {
			continue
		}
		if err := m.merged.AddReference(ref); err != nil {
			return err
		}
	}
	return nil
}

// Creates merged types with their names and kinds. Types are filled later by buildType.
//
// Types are planned in order of default side, then other side types are appended.
func (m *merger) planTypes(st subtree) error {
	pairs := ordered(m.side, m.left.Types(), m.right.Types(), (*schema.Type).Name)
	if err := checkChildren(st, pairs, func(name string) error {
		return schema.ErrTypeNotFound("class «%s» of %v is missing in %v and %v", name, st, m.left, m.right)
	}); err != nil {
		return err
	}

	for _, p := range pairs {
		n := st.child(p.name)
		if !n.ok && bySide(m.side, p.left, p.right) == nil {
			continue
		}
		if err := m.checkType(n, p.left, p.right); err != nil {
			return schema.EnrichError(err, "class %v", n)
		}
		plan := &typePlan{name: p.name, node: n, left: p.left, right: p.right}
		plan.side, plan.merge = m.pick(n, m.side)
		if plan.merge {
			plan.side = present(plan.side, p.left, p.right)
		}
		src := bySide(plan.side, p.left, p.right)
		if src == nil {
			return schema.ErrTypeNotFound("class %v is missing in %v", n, bySide(plan.side, m.left, m.right))
		}

		name, kind := src.Name(), src.Kind()
		if plan.merge {
			var err error
			if name, err = m.resolveString(n.child(schemadiff.NodeNameName), name); err != nil {
				return err
			}
			k, err := m.resolveString(n.child(schemadiff.NodeNameKind), kind.TrimString())
			if err != nil {
				return err
			}
			if kind, err = schema.ParseTypeKind(k); err != nil {
				return schema.EnrichError(err, "class %v", n)
			}
			m.conflicts++
			if logger.IsVerbose() {
				logger.VerboseCtx(m.ctx, fmt.Sprintf("class «%s» conflicts, merged field by field", name))
			}
		}

		t, err := m.merged.AddType(name, kind)
		if err != nil {
			return err
		}
		plan.merged = t
		m.resolved[schema.NameKey(p.name)] = t
		m.plans = append(m.plans, plan)
	}
	return nil
}

// Returns merged type for type of left or right schema.
//
// Type of other schema is returned from merged schema reference, reference is added if missing.
// Own types are keyed by name, foreign types by full name.
func (m *merger) resolveType(src *schema.Type) (*schema.Type, error) {
	if s := src.Schema(); s != m.left && s != m.right {
		return m.resolveForeign(src)
	}
	if t, ok := m.resolved[schema.NameKey(src.Name())]; ok {
		return t, nil
	}
	return nil, schema.ErrTypeNotFound("%v is not merged into %v", src, m.merged)
}

func (m *merger) resolveForeign(src *schema.Type) (*schema.Type, error) {
	key := schema.NameKey(src.FullName())
	if t, ok := m.resolved[key]; ok {
		return t, nil
	}

	var ref *schema.Schema
	for _, r := range m.merged.References() {
		if r.FullName() == src.Schema().FullName() {
			ref = r
			break
		}
	}
	if ref == nil {
		ref = src.Schema()
		if err := m.merged.AddReference(ref); err != nil {
			return nil, err
		}
		if logger.IsVerbose() {
			logger.VerboseCtx(m.ctx, fmt.Sprintf("reference to %v added for %v", ref, src))
		}
	}

	t := ref.Type(src.Name())
	if t == nil {
		return nil, schema.ErrTypeNotFound("%v in %v", src, ref)
	}
	m.resolved[key] = t
	return t, nil
}

// Finds type by full name «Schema:Type» in default side schema, then in other side schema.
func (m *merger) sourceType(fullName string) (*schema.Type, error) {
	t, err := bySide(m.side, m.left, m.right).FindType(fullName)
	if err == nil {
		return t, nil
	}
	if t, e := bySide(otherSide(m.side), m.left, m.right).FindType(fullName); e == nil {
		return t, nil
	}
	return nil, err
}

// Returns error if subtree has child not named by any pair.
func checkChildren[T any](st subtree, pairs []pair[T], notFound func(name string) error) error {
	names := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		names[schema.NameKey(p.name)] = true
	}
	for _, c := range st.children() {
		if !names[schema.NameKey(c)] {
			return notFound(c)
		}
	}
	return nil
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemafuzz

import (
	"testing"

	"github.com/voedger/schemadiff/pkg/goutils/testingu/require"
	"github.com/voedger/schemadiff/pkg/schema"
)

func TestGenerator(t *testing.T) {
	t.Run("should build the same schemas for the same seed", func(t *testing.T) {
		require := require.New(t)
		g1, g2 := New(7), New(7)
		for i := 0; i < 20; i++ {
			require.Equal(g1.Schema().Snapshot(), g2.Schema().Snapshot())
		}
	})

	t.Run("should build valid schemas", func(t *testing.T) {
		require := require.New(t)
		g := New(11)
		for i := 0; i < 100; i++ {
			s := g.Schema()
			require.Equal(SchemaName, s.Name())
			require.LessOrEqual(len(s.Types()), maxClasses)
			for _, c := range s.Types() {
				require.Contains([]schema.TypeKind{schema.TypeKind_Entity, schema.TypeKind_Struct}, c.Kind())
				for _, b := range c.BaseTypes() {
					require.Equal(c.Kind(), b.Kind())
					require.False(b.Inherits(c), "%v inherits itself through %v", c, b)
				}
				for _, p := range c.Properties() {
					minOccurs, maxOccurs := p.Occurs()
					require.LessOrEqual(minOccurs, maxOccurs)
				}
			}
		}
	})

	t.Run("should extend copy of base schema", func(t *testing.T) {
		require := require.New(t)
		g := New(13)
		for i := 0; i < 100; i++ {
			base, extended := g.Additive()
			require.NotSame(base, extended)
			for _, c := range base.Types() {
				e := extended.Type(c.Name())
				require.NotNil(e)
				require.Equal(c.Kind(), e.Kind())
				require.LessOrEqual(len(c.Properties()), len(e.Properties()))
				for j, p := range c.Properties() {
					require.Equal(p.Name(), e.Properties()[j].Name())
				}
				for j, b := range c.BaseTypes() {
					require.Equal(b.FullName(), e.BaseTypes()[j].FullName())
				}
			}
		}
	})
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schemamerge_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/voedger/schemadiff/pkg/goutils/logger"
	"github.com/voedger/schemadiff/pkg/goutils/testingu/require"
	"github.com/voedger/schemadiff/pkg/scalar"
	"github.com/voedger/schemadiff/pkg/schema"
	"github.com/voedger/schemadiff/pkg/schema/schemafuzz"
	"github.com/voedger/schemadiff/pkg/schemadiff"
	"github.com/voedger/schemadiff/pkg/schemamerge"
)

func TestMerge_Equal(t *testing.T) {
	for _, rule := range rules {
		t.Run("should copy equal schemas with "+rule.TrimString(), func(t *testing.T) {
			require := require.New(t)
			a, b := richSchema(), richSchema()

			m, err := diffMerge(a, b, rule)
			require.NoError(err)
			require.Empty(snapDiff(a, m))
			require.NotSame(a.Type("Widget"), m.Type("Widget"))
			require.NotSame(b.Type("Widget"), m.Type("Widget"))
		})
	}
}

func TestMerge_Additive(t *testing.T) {
	a, b := richSchema(), richSchema()

	thing := must(b.AddEntity("Thing"))
	w := b.Type("Widget")
	w.SetDescription("widget")
	noErr(w.AddBaseType(thing))
	must(w.AddPrimitiveProperty("Weight", schema.PrimitiveType_Double))

	gadget := must(b.AddEntity("Gadget"))
	noErr(gadget.SetCustomAttribute(must(schema.NewCustomAttribute(b.Type("Note"), field("Text", str("gadget"))))))
	noErr(b.SetCustomAttribute(must(schema.NewCustomAttribute(b.Type("Note")))))
	b.Type("WidgetHasElement").Relationship().Source().SetRoleLabel("owner")

	for _, rule := range rules {
		t.Run("should return right schema with "+rule.TrimString(), func(t *testing.T) {
			require := require.New(t)
			m, err := diffMerge(a, b, rule)
			require.NoError(err)
			require.Empty(snapDiff(b, m))
		})
	}

	t.Run("should return extended random schema", func(t *testing.T) {
		require := require.New(t)
		g := schemafuzz.New(3)
		for i := 0; i < 200; i++ {
			a, b := g.Additive()
			for _, rule := range rules {
				m, err := diffMerge(a, b, rule)
				require.NoError(err, rule)
				require.Empty(snapDiff(b, m), rule)
			}
		}
	})
}

func TestMerge_Fields(t *testing.T) {
	a := widgetSchema()
	a.SetDescription("old")
	a.Type("Widget").SetDescription("old")

	b := must(schema.New("S", "s", 1, 1))
	must(must(b.AddEntity("Widget")).AddPrimitiveProperty("Name", schema.PrimitiveType_String))
	b.SetDescription("new")
	b.Type("Widget").SetDescription("new")

	tests := []struct {
		rule    schemamerge.ConflictRule
		version string
		desc    string
	}{
		{schemamerge.ConflictRule_PreferLeft, "S.01.00", "old"},
		{schemamerge.ConflictRule_PreferRight, "S.01.01", "new"},
	}
	for _, tt := range tests {
		t.Run("should take conflicting fields from default side with "+tt.rule.TrimString(), func(t *testing.T) {
			require := require.New(t)
			m, err := diffMerge(a, b, tt.rule)
			require.NoError(err)
			require.Equal(tt.version, m.FullName())
			require.Equal(tt.desc, m.Description())
			require.Equal(tt.desc, m.Type("Widget").Description())
			require.NotNil(m.Type("Widget").Property("Name"))
		})
	}
}

func TestMerge_OneSided(t *testing.T) {
	t.Run("should keep left-only changes with both rules", func(t *testing.T) {
		a, b := widgetSchema(), widgetSchema()
		w := a.Type("Widget")
		w.SetDisplayLabel("Label")
		must(w.AddPrimitiveProperty("Extra", schema.PrimitiveType_Integer))

		for _, rule := range rules {
			require := require.New(t)
			m, err := diffMerge(a, b, rule)
			require.NoError(err, rule)
			require.Empty(snapDiff(a, m), rule)
		}
	})

	t.Run("should take one-sided changes of both sides", func(t *testing.T) {
		a, b := widgetSchema(), widgetSchema()
		a.Type("Widget").SetDisplayLabel("Label")
		must(a.Type("Widget").AddPrimitiveProperty("Extra", schema.PrimitiveType_Integer))
		must(b.Type("Widget").AddPrimitiveProperty("Weight", schema.PrimitiveType_Double))
		must(b.AddStruct("Point"))

		want := widgetSchema()
		want.Type("Widget").SetDisplayLabel("Label")
		must(want.Type("Widget").AddPrimitiveProperty("Extra", schema.PrimitiveType_Integer))
		must(want.Type("Widget").AddPrimitiveProperty("Weight", schema.PrimitiveType_Double))
		must(want.AddStruct("Point"))

		for _, rule := range rules {
			require := require.New(t)
			m, err := diffMerge(a, b, rule)
			require.NoError(err, rule)
			require.Empty(snapDiff(want, m), rule)
		}
	})

	t.Run("should merge widget with label, weight and conflicting description", func(t *testing.T) {
		a, b := widgetSchema(), widgetSchema()
		a.Type("Widget").SetDescription("Widget")
		w := b.Type("Widget")
		w.SetDisplayLabel("Widget Label")
		w.SetDescription("Widget with weight")
		must(w.AddPrimitiveProperty("Weight", schema.PrimitiveType_Double))

		for rule, desc := range map[schemamerge.ConflictRule]string{
			schemamerge.ConflictRule_PreferLeft:  "Widget",
			schemamerge.ConflictRule_PreferRight: "Widget with weight",
		} {
			require := require.New(t)
			m, err := diffMerge(a, b, rule)
			require.NoError(err, rule)
			mw := m.Type("Widget")
			require.Equal("Widget Label", mw.DisplayLabel(), rule)
			require.Equal(desc, mw.Description(), rule)
			require.NotNil(mw.Property("Weight"), rule)
			require.Equal(schema.PrimitiveType_Double, mw.Property("Weight").PrimitiveType(), rule)
		}
	})
}

func TestMerge_BaseClasses(t *testing.T) {
	tests := []struct {
		name        string
		left, right []string
		wantLeft    []string
		wantRight   []string
	}{
		{"should insert right base after its predecessor",
			[]string{"A", "C"}, []string{"A", "B", "C"},
			[]string{"S:A", "S:B", "S:C"}, []string{"S:A", "S:B", "S:C"}},
		{"should insert left base after its predecessor",
			[]string{"A", "B", "C"}, []string{"A", "C"},
			[]string{"S:A", "S:B", "S:C"}, []string{"S:A", "S:B", "S:C"}},
		{"should insert base without predecessor at front",
			[]string{"B"}, []string{"A", "B"},
			[]string{"S:A", "S:B"}, []string{"S:A", "S:B"}},
		{"should insert bases of both sides after the same predecessor",
			[]string{"A", "B"}, []string{"A", "C"},
			[]string{"S:A", "S:C", "S:B"}, []string{"S:A", "S:B", "S:C"}},
		{"should keep default side order of reordered bases",
			[]string{"A", "B"}, []string{"B", "A"},
			[]string{"S:A", "S:B"}, []string{"S:B", "S:A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			a, b := withBases(tt.left...), withBases(tt.right...)
			a.Type("Widget").SetDescription("left")
			b.Type("Widget").SetDescription("right")

			for rule, want := range map[schemamerge.ConflictRule][]string{
				schemamerge.ConflictRule_PreferLeft:  tt.wantLeft,
				schemamerge.ConflictRule_PreferRight: tt.wantRight,
			} {
				m, err := diffMerge(a, b, rule)
				require.NoError(err, rule)
				require.Equal(want, m.Snapshot().Types[3].BaseTypes, rule)
			}
		})
	}

	t.Run("should add reference of foreign base lazily", func(t *testing.T) {
		require := require.New(t)
		a, b := widgetSchema(), widgetSchema()
		base := baseSchema()
		noErr(b.AddReference(base))
		noErr(b.Type("Widget").AddBaseType(base.Type("Element")))

		tree := treeOf(
			change{"Classes.Widget.Description", str("left"), str("right")},
			change{"Classes.Widget.BaseClasses.BaseClasses[0]", nilv(), str("Base:Element")},
		)
		m, err := schemamerge.Merge(context.Background(), tree, a, b, schemamerge.ConflictRule_PreferLeft)
		require.NoError(err)
		require.Equal("left", m.Type("Widget").Description())
		require.Equal([]string{"b=Base.01.00"}, m.Snapshot().References)
		require.Same(base.Type("Element"), m.Type("Widget").BaseTypes()[0])
	})

	t.Run("should fail if foreign schema alias is used", func(t *testing.T) {
		require := require.New(t)
		a, b := widgetSchema(), widgetSchema()
		noErr(a.AddReference(baseSchema()))
		other := must(schema.New("Other", "b", 1, 0))
		thing := must(other.AddEntity("Thing"))
		noErr(b.AddReference(other))
		noErr(b.Type("Widget").AddBaseType(thing))

		m, err := diffMerge(a, b, schemamerge.ConflictRule_PreferLeft)
		require.ErrorWith(err, require.Is(schema.ErrAlreadyExistsError), require.Has("Other"))
		require.Nil(m)

		m, err = diffMerge(a, b, schemamerge.ConflictRule_PreferRight)
		require.NoError(err)
		require.Equal([]string{"b=Other.01.00"}, m.Snapshot().References)
		require.Same(thing, m.Type("Widget").BaseTypes()[0])
	})
}

func TestMerge_Relationship(t *testing.T) {
	a, b := richSchema(), richSchema()
	rel := b.Type("WidgetHasElement").Relationship()
	noErr(rel.SetStrength(schema.Strength_Holding))
	noErr(rel.Target().SetMultiplicity(schema.Multiplicity{Lower: 1, Upper: schema.Unbounded}))
	rel.Target().SetRoleLabel("part")
	noErr(rel.Source().AddType(must(b.AddEntity("Gadget"))))

	tests := []struct {
		rule         schemamerge.ConflictRule
		strength     schema.Strength
		multiplicity string
	}{
		{schemamerge.ConflictRule_PreferLeft, schema.Strength_Embedding, "(0..1)"},
		{schemamerge.ConflictRule_PreferRight, schema.Strength_Holding, "(1..*)"},
	}
	for _, tt := range tests {
		t.Run("should merge relationship with "+tt.rule.TrimString(), func(t *testing.T) {
			require := require.New(t)
			m, err := diffMerge(a, b, tt.rule)
			require.NoError(err)

			r := m.Type("WidgetHasElement").Relationship()
			require.Equal(tt.strength, r.Strength())
			require.Equal(tt.multiplicity, r.Target().Multiplicity().String())
			require.Equal("part", r.Target().RoleLabel())

			snap := m.Snapshot()
			require.Equal([]string{"S:Widget", "S:Gadget"}, snap.Types[4].Relationship.Source.Types)
			require.Equal([]string{"Base:Element"}, snap.Types[4].Relationship.Target.Types)
			require.Same(m.Type("Widget"), r.Source().Types()[0])
		})
	}
}

func TestMerge_CustomAttributes(t *testing.T) {
	text := func(m *schema.Schema, name string) (string, bool) {
		ca := m.Type("Widget").CustomAttribute("S:Note")
		if ca == nil {
			return "", false
		}
		v, ok := ca.Field(name)
		if !ok {
			return "", false
		}
		return v.Scalar().AsString(), true
	}

	t.Run("should take conflicting instance from default side", func(t *testing.T) {
		require := require.New(t)
		a := withNote(widgetSchema(), field("Text", str("hello")))
		b := withNote(widgetSchema(), field("Text", str("bye")))

		for rule, want := range map[schemamerge.ConflictRule]string{
			schemamerge.ConflictRule_PreferLeft:  "hello",
			schemamerge.ConflictRule_PreferRight: "bye",
		} {
			m, err := diffMerge(a, b, rule)
			require.NoError(err, rule)
			v, ok := text(m, "Text")
			require.True(ok, rule)
			require.Equal(want, v, rule)
			require.Same(m.Type("Note"), m.Type("Widget").CustomAttribute("S:Note").Class())
		}
	})

	t.Run("should merge instances shallow", func(t *testing.T) {
		require := require.New(t)
		a := withNote(widgetSchema(), field("Text", str("a")), field("L", str("l")))
		b := withNote(widgetSchema(), field("Text", str("a")), field("R", str("r")))

		m, err := diffMerge(a, b, schemamerge.ConflictRule_PreferLeft)
		require.NoError(err)
		_, ok := text(m, "L")
		require.True(ok)
		_, ok = text(m, "R")
		require.False(ok)

		m, err = diffMerge(a, b, schemamerge.ConflictRule_PreferRight)
		require.NoError(err)
		_, ok = text(m, "L")
		require.False(ok)
		_, ok = text(m, "R")
		require.True(ok)
	})

	t.Run("should keep one-sided instance with both rules", func(t *testing.T) {
		require := require.New(t)
		a := withNote(widgetSchema(), field("Text", str("hello")))
		b := widgetSchema()

		for _, rule := range rules {
			m, err := diffMerge(a, b, rule)
			require.NoError(err, rule)
			v, ok := text(m, "Text")
			require.True(ok, rule)
			require.Equal("hello", v, rule)
		}
	})

	t.Run("should take right-only leaves with whole instance", func(t *testing.T) {
		require := require.New(t)
		a := withNote(widgetSchema(), field("Text", str("a")))
		b := withNote(widgetSchema(), field("Text", str("a")), field("Extra", scalar.Int64(1)))

		for _, rule := range rules {
			m, err := diffMerge(a, b, rule)
			require.NoError(err, rule)
			require.Empty(snapDiff(b, m), rule)
		}
	})
}

func TestMerge_Errors(t *testing.T) {
	ctx := context.Background()
	left := schemamerge.ConflictRule_PreferLeft

	t.Run("should reject invalid arguments", func(t *testing.T) {
		require := require.New(t)
		a, b := widgetSchema(), widgetSchema()

		m, err := schemamerge.Merge(ctx, schemadiff.Diff(ctx, a, b), a, b, schemamerge.ConflictRule_count)
		require.ErrorWith(err, require.Is(schema.ErrUnsupportedError), require.Has("ConflictRule_count"))
		require.Nil(m)

		m, err = schemamerge.Merge(ctx, nil, a, b, left)
		require.ErrorWith(err, require.Is(schema.ErrUnsupportedError))
		require.Nil(m)
	})

	tests := []struct {
		name    string
		rich    bool
		changes []change
		is      error
		has     string
	}{
		{"should fail on malformed format version", false,
			[]change{{"FormatVersion", str("3.x"), str("3.1")}},
			schema.ErrFormatError, "3.x"},
		{"should fail on not string value", false,
			[]change{{"Classes.Widget.Description", scalar.Int64(1), str("x")}},
			schema.ErrFormatError, "Root.Classes.Widget.Description"},
		{"should fail on unknown kind", false,
			[]change{{"Classes.Widget.Kind", str("Gizmo"), str("Entity")}},
			schema.ErrFormatError, "Gizmo"},
		{"should fail on unknown modifier", false,
			[]change{{"Classes.Widget.Modifier", str("Frozen"), str("None")}},
			schema.ErrFormatError, "Frozen"},
		{"should fail on unknown primitive type", false,
			[]change{{"Classes.Widget.Properties.Name.TypeName", str("varchar"), str("string")}},
			schema.ErrFormatError, "varchar"},
		{"should fail on unknown strength", true,
			[]change{{"Classes.WidgetHasElement.RelationshipInfo.Strength", str("Strong"), str("Embedding")}},
			schema.ErrFormatError, "Strong"},
		{"should fail on malformed multiplicity", true,
			[]change{{"Classes.WidgetHasElement.RelationshipInfo.Target.Multiplicity", str("(2..1)"), str("(0..1)")}},
			schema.ErrFormatError, "(2..1)"},
		{"should fail on class missing in both schemas", false,
			[]change{{"Classes.Ghost.Description", nilv(), str("boo")}},
			schema.ErrTypeNotFoundError, "Ghost"},
		{"should fail on property missing in both schemas", false,
			[]change{{"Classes.Widget.Properties.Ghost.TypeName", nilv(), str("string")}},
			schema.ErrPropertyNotFoundError, "Ghost"},
		{"should fail on property missing in both schemas of merged class", false,
			[]change{
				{"Classes.Widget.Description", str("left"), str("right")},
				{"Classes.Widget.Properties.Ghost.TypeName", nilv(), str("string")},
			},
			schema.ErrPropertyNotFoundError, "Ghost"},
		{"should fail on custom attribute missing in both schemas", false,
			[]change{{"Classes.Widget.CustomAttributes.S:Ghost", nilv(), str("S:Ghost")}},
			schema.ErrTypeNotFoundError, "S:Ghost"},
		{"should fail on property custom attribute missing in both schemas", false,
			[]change{{"Classes.Widget.Properties.Name.CustomAttributes.S:Ghost", str("S:Ghost"), nilv()}},
			schema.ErrTypeNotFoundError, "S:Ghost"},
		{"should fail on base class missing in both schemas", true,
			[]change{{"Classes.Widget.BaseClasses.BaseClasses[0]", nilv(), str("S:Ghost")}},
			schema.ErrTypeNotFoundError, "S:Ghost"},
		{"should fail on base class slot out of alignment", true,
			[]change{{"Classes.Widget.BaseClasses.BaseClasses[5]", nilv(), str("Base:Element")}},
			schema.ErrTypeNotFoundError, "BaseClasses[5]"},
		{"should fail on constraint class missing in both schemas", true,
			[]change{{"Classes.WidgetHasElement.RelationshipInfo.Target.Classes.Classes[0]", str("S:Ghost"), nilv()}},
			schema.ErrTypeNotFoundError, "S:Ghost"},
		{"should fail on constraint custom attribute missing in both schemas", true,
			[]change{{"Classes.WidgetHasElement.RelationshipInfo.Source.CustomAttributes.S:Ghost", nilv(), str("S:Ghost")}},
			schema.ErrTypeNotFoundError, "S:Ghost"},
		{"should fail on reference missing in both schemas", false,
			[]change{{"References.x", nilv(), str("X.01.00")}},
			schema.ErrSchemaNotFoundError, "X.01.00"},
		{"should fail on reference to unknown schema", true,
			[]change{{"References.b", str("Other.01.00"), str("Base.01.00")}},
			schema.ErrSchemaNotFoundError, "Other.01.00"},
		{"should fail on structure as abstract constraint", true,
			[]change{
				{"Classes.WidgetHasElement.Description", str("left"), str("right")},
				{"Classes.WidgetHasElement.RelationshipInfo.Source.AbstractConstraint", nilv(), str("S:Point")},
			},
			schema.ErrConstraintTypeMismatchError, "S:Point"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			a, b := widgetSchema(), widgetSchema()
			if tt.rich {
				a, b = richSchema(), richSchema()
			}
			m, err := schemamerge.Merge(ctx, treeOf(tt.changes...), a, b, left)
			require.ErrorWith(err, require.Is(tt.is), require.Has(tt.has))
			require.Nil(m)
		})
	}

	t.Run("should fail on aligned value missing in source list", func(t *testing.T) {
		require := require.New(t)
		a, b := withBases("A"), withBases("A", "B")
		tree := treeOf(change{"Classes.Widget.BaseClasses.BaseClasses[1]", nilv(), str("S:Ghost")})
		m, err := schemamerge.Merge(ctx, tree, a, b, left)
		require.ErrorWith(err, require.Is(schema.ErrTypeNotFoundError), require.Has("S:Ghost"))
		require.Nil(m)
	})

	t.Run("should fail on diff of other schemas", func(t *testing.T) {
		require := require.New(t)
		a, b := widgetSchema(), widgetSchema()
		must(b.Type("Widget").AddPrimitiveProperty("Weight", schema.PrimitiveType_Double))
		stale := schemadiff.Diff(ctx, a, b)

		for _, rule := range rules {
			m, err := schemamerge.Merge(ctx, stale, a, a, rule)
			require.ErrorWith(err, require.Is(schema.ErrPropertyNotFoundError), require.Has("Weight"))
			require.Nil(m, rule)
		}
	})
}

func TestMerge_Inputs(t *testing.T) {
	require := require.New(t)
	a, b := richSchema(), richSchema()
	a.Type("Widget").SetDescription("left")
	must(b.Type("Widget").AddPrimitiveProperty("Weight", schema.PrimitiveType_Double))
	noErr(b.Type("WidgetHasElement").Relationship().SetStrength(schema.Strength_Holding))

	sa, sb := a.Snapshot(), b.Snapshot()
	tree := schemadiff.Diff(context.Background(), a, b)
	render := tree.String()

	for _, rule := range rules {
		m, err := schemamerge.Merge(context.Background(), tree, a, b, rule)
		require.NoError(err, rule)
		require.NotNil(m.Type("Widget").Property("Weight"), rule)
		require.Equal("left", m.Type("Widget").Description(), rule)
	}

	require.Equal(sa, a.Snapshot(), "left schema should not be changed")
	require.Equal(sb, b.Snapshot(), "right schema should not be changed")
	require.Equal(render, tree.String(), "tree should not be changed")
	require.Nil(a.Type("Widget").Property("Weight"))
}

func TestMerge_Logging(t *testing.T) {
	require := require.New(t)

	buf := new(bytes.Buffer)
	logger.SetCtxWriters(buf, buf)
	defer logger.SetCtxWriters(os.Stdout, os.Stderr)
	defer logger.SetLogLevelWithRestore(logger.LogLevelVerbose)()

	a, b := widgetSchema(), widgetSchema()
	a.Type("Widget").SetDescription("old")
	b.Type("Widget").SetDescription("new")

	ctx := logger.WithContextAttrs(context.Background(), logger.LogAttr_Schema, "S")
	_, err := schemamerge.Merge(ctx, schemadiff.Diff(ctx, a, b), a, b, schemamerge.ConflictRule_PreferRight)
	require.NoError(err)

	out := buf.String()
	require.Contains(out, "mergeid=")
	require.Contains(out, "rule=PreferRight")
	require.Contains(out, "schema=S")
	require.Contains(out, "class «Widget» conflicts")
	require.Contains(out, "1 classes, 1 merged field by field")

	_, ok := logger.ContextAttr(ctx, logger.LogAttr_MergeID)
	require.False(ok, "caller context should not be changed")
}

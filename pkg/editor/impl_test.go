/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/voedger/idfkit/pkg/fieldconv"
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/idd/iddtest"
	"github.com/voedger/idfkit/pkg/objstore"
	"github.com/voedger/idfkit/pkg/parser"
)

func loadStore(t *testing.T, idf string) *objstore.Store {
	reg, err := idd.Load("Energy+.idd", iddtest.IDD)
	require.NoError(t, err)
	s := objstore.New(reg)
	if idf == "" {
		return s
	}
	objs, err := parser.ParseIDF("test.idf", idf)
	require.NoError(t, err)
	for _, o := range objs {
		_, err := s.Load(o.Class, o.Fields)
		require.NoError(t, err)
	}
	return s
}

func storeStrings(s *objstore.Store) [][]string {
	var all [][]string
	for _, c := range s.AllClasses() {
		for _, r := range s.RecordsOf(c) {
			all = append(all, r.Strings())
		}
	}
	return all
}

func Test_AddObject(t *testing.T) {
	s := loadStore(t, "")
	e := New(s.Registry(), s)

	t.Run("new object has declared defaults", func(t *testing.T) {
		require := require.New(t)

		obj, err := e.AddObject("ZONE", nil)
		require.NoError(err)
		want := []string{"ZONE", "", "0", "0", "0", "0", "1", "1",
			"autocalculate", "autocalculate", "autocalculate", "", "", "Yes"}
		require.Equal(want, obj.Record().Strings())
		require.Equal(s.Registry().Class("Zone").FieldCount(), obj.Len())

		raw, err := e.NewRawObject("zone")
		require.NoError(err)
		require.Len(raw, len(want))
		for i, v := range raw {
			require.Equal(want[i], v.String())
		}
	})

	t.Run("lookup by name is case insensitive", func(t *testing.T) {
		require := require.New(t)

		obj, err := e.AddObject("ZONE", map[string]fieldconv.Value{"Name": fieldconv.Text("karamba")})
		require.NoError(err)
		require.Equal("karamba", obj.Name())

		zones := s.RecordsOf("ZONE")
		require.Equal("karamba", zones[len(zones)-1].Value(1).String())

		for _, name := range []string{"KARAMBA", "karamba", "Karamba"} {
			got, ok := e.GetNamed("zone", name)
			require.True(ok, name)
			require.Same(obj.Record(), got.Record(), name)
		}

		_, ok := e.GetNamed("ZONE", "karamba2")
		require.False(ok)
		_, ok = e.GetNamed("Unknown", "karamba")
		require.False(ok)
		_, ok = e.GetNamed("Version", "8.0")
		require.False(ok)
	})

	t.Run("fields are applied in position order", func(t *testing.T) {
		require := require.New(t)

		obj, err := e.AddObject("ZoneList", map[string]fieldconv.Value{
			"Zone 3 Name": fieldconv.Text("Z3"),
			"Name":        fieldconv.Text("L1"),
			"zone_1_name": fieldconv.Text("Z1"),
		})
		require.NoError(err)
		require.Equal([]string{"ZONELIST", "L1", "Z1", "", "Z3"}, obj.Record().Strings())
	})

	t.Run("errors", func(t *testing.T) {
		require := require.New(t)

		count := s.Count()

		_, err := e.AddObject("Unknown", nil)
		require.ErrorIs(err, idd.ErrUnknownClassError)

		_, err = e.AddObject("Zone", map[string]fieldconv.Value{"Name": fieldconv.Text("Z"), "Roughness": fieldconv.Text("Rough")})
		require.ErrorIs(err, idd.ErrUnknownFieldError)

		_, err = e.AddObject("Zone", map[string]fieldconv.Value{"key": fieldconv.Text("MATERIAL")})
		require.Error(err)

		_, err = e.AddObject("Zone", map[string]fieldconv.Value{"Name": fieldconv.Text("KARAMBA")})
		require.ErrorIs(err, ErrNameUniqueViolation)

		for _, fields := range []map[string]fieldconv.Value{
			{"Name": fieldconv.Text("A"), "name": fieldconv.Text("B")},
			{"Name": fieldconv.Text("A"), "Ceiling Height": fieldconv.Real(2), "ceiling_height": fieldconv.Real(3)},
		} {
			_, err = e.AddObject("Zone", fields)
			require.ErrorIs(err, ErrFieldAssignedTwice)
		}
		_, err = e.AddObject("ZoneList", map[string]fieldconv.Value{"Zone 1 Name": fieldconv.Text("A"), "zone_1_name": fieldconv.Text("B")})
		require.ErrorIs(err, ErrFieldAssignedTwice)

		_, err = e.NewRawObject("Unknown")
		require.ErrorIs(err, idd.ErrUnknownClassError)

		require.Equal(count, s.Count())
	})

	t.Run("unique object", func(t *testing.T) {
		require := require.New(t)

		_, err := e.AddObject("Version", nil)
		require.NoError(err)
		_, err = e.AddObject("version", nil)
		require.ErrorIs(err, ErrUniqueObjectViolation)
		require.Len(s.RecordsOf("Version"), 1)
	})

	t.Run("duplicate names allowed by option", func(t *testing.T) {
		require := require.New(t)

		d := New(s.Registry(), s, AllowDuplicateNames())
		obj, err := d.AddObject("Zone", map[string]fieldconv.Value{"Name": fieldconv.Text("karamba")})
		require.NoError(err)

		first, ok := d.GetNamed("Zone", "karamba")
		require.True(ok)
		require.NotSame(obj.Record(), first.Record())
		require.Len(d.Objects("Zone"), 3)
	})
}

const renameIDF = `Material,
      G01a 19mm gypsum board,  !- Name
      MediumSmooth,            !- Roughness
      0.019,                   !- Thickness {m}
      0.16,                    !- Conductivity {W/m-K}
      800,                     !- Density {kg/m3}
      1090;                    !- Specific Heat {J/kg-K}

      Construction,
        Interior Wall,           !- Name
        G01a 19mm gypsum board,  !- Outside Layer
        F04 Wall air space resistance,  !- Layer 2
        G01a 19mm gypsum board;  !- Layer 3
`

func Test_Rename(t *testing.T) {
	t.Run("rename cascades to references", func(t *testing.T) {
		require := require.New(t)

		s := loadStore(t, renameIDF)
		e := New(s.Registry(), s)

		obj, err := e.Rename("MATERIAL", "G01a 19mm gypsum board", "peanut butter")
		require.NoError(err)
		require.Equal("peanut butter", obj.Name())

		m, ok := e.GetNamed("Material", "peanut butter")
		require.True(ok)
		require.Same(obj.Record(), m.Record())
		roughness, err := m.GetString("Roughness")
		require.NoError(err)
		require.Equal("MediumSmooth", roughness)

		c, ok := e.GetNamed("Construction", "Interior Wall")
		require.True(ok)
		for field, want := range map[string]string{
			"Outside_Layer": "peanut butter",
			"Layer_2":       "F04 Wall air space resistance",
			"Layer_3":       "peanut butter",
		} {
			got, err := c.GetString(field)
			require.NoError(err)
			require.Equal(want, got, field)
		}
		require.Equal(5, c.Len())

		_, ok = e.GetNamed("Material", "G01a 19mm gypsum board")
		require.False(ok)
	})

	t.Run("rename is case insensitive and cascades over all consumers", func(t *testing.T) {
		require := require.New(t)

		s := loadStore(t, iddtest.IDF)
		e := New(s.Registry(), s)

		_, err := e.Rename("Material", "g01a 19MM GYPSUM BOARD", "Gypsum")
		require.NoError(err)

		hh, err := e.ReferencesTo("Material", "gypsum")
		require.NoError(err)
		require.Len(hh, 3)
		for _, h := range hh {
			require.Equal("Gypsum", h.Value())
		}

		_, err = e.Rename("Zone", "Main Zone", "Core")
		require.NoError(err)
		zl, _ := e.GetNamed("ZoneList", "All Zones")
		z1, err := zl.GetString("Zone 1 Name")
		require.NoError(err)
		require.Equal("Core", z1)
		bs, _ := e.GetNamed("BuildingSurface:Detailed", "Wall 1")
		zn, err := bs.GetString("Zone Name")
		require.NoError(err)
		require.Equal("Core", zn)
	})

	t.Run("same name rename leaves store unchanged", func(t *testing.T) {
		require := require.New(t)

		s := loadStore(t, iddtest.IDF)
		e := New(s.Registry(), s)
		before := s.Snapshot()

		obj, err := e.Rename("Material", "G01a 19mm gypsum board", "G01a 19mm gypsum board")
		require.NoError(err)
		require.Equal("G01a 19mm gypsum board", obj.Name())
		require.True(s.Equal(before))
		require.Empty(cmp.Diff(storeStrings(before), storeStrings(s)))
	})

	t.Run("case only rename", func(t *testing.T) {
		require := require.New(t)

		s := loadStore(t, iddtest.IDF)
		e := New(s.Registry(), s)

		_, err := e.Rename("Material", "G01a 19mm gypsum board", "G01A 19MM GYPSUM BOARD")
		require.NoError(err)
		c, _ := e.GetNamed("Construction", "Interior Wall")
		got, _ := c.GetString("Outside Layer")
		require.Equal("G01A 19MM GYPSUM BOARD", got)
	})

	t.Run("duplicate name is refused by default", func(t *testing.T) {
		require := require.New(t)

		s := loadStore(t, iddtest.IDF)
		e := New(s.Registry(), s)
		before := s.Snapshot()

		_, err := e.Rename("Material", "G01a 19mm gypsum board", "m11 100mm lightweight concrete")
		require.ErrorIs(err, ErrNameUniqueViolation)
		require.True(s.Equal(before))
	})

	t.Run("duplicate name is allowed by option", func(t *testing.T) {
		require := require.New(t)

		s := loadStore(t, iddtest.IDF)
		e := New(s.Registry(), s, AllowDuplicateNames())

		renamed, err := e.Rename("Material", "G01a 19mm gypsum board", "M11 100mm lightweight concrete")
		require.NoError(err)

		first, ok := e.GetNamed("Material", "M11 100mm lightweight concrete")
		require.True(ok)
		require.Same(renamed.Record(), first.Record())
		require.Len(e.Objects("Material"), 2)
	})

	t.Run("rename reports rewritten references only", func(t *testing.T) {
		require := require.New(t)

		s := loadStore(t, iddtest.IDF)
		e := New(s.Registry(), s, AllowDuplicateNames())

		_, hh, err := e.RenameWithReferences("Material", "G01a 19mm gypsum board", "M11 100mm lightweight concrete")
		require.NoError(err)
		require.Len(hh, 3)
		for _, h := range hh {
			require.Equal("M11 100mm lightweight concrete", h.Value())
		}

		all, err := e.ReferencesTo("Material", "M11 100mm lightweight concrete")
		require.NoError(err)
		require.Len(all, 4)

		_, hh, err = e.RenameWithReferences("Material", "M11 100mm lightweight concrete", "M11 100mm lightweight concrete")
		require.NoError(err)
		require.Empty(hh)
	})

	t.Run("errors", func(t *testing.T) {
		require := require.New(t)

		s := loadStore(t, iddtest.IDF)
		e := New(s.Registry(), s)

		_, err := e.Rename("Material", "Nothing", "Something")
		require.ErrorIs(err, idd.ErrNotFoundError)
		require.Contains(err.Error(), "«Nothing»")

		_, err = e.Rename("Unknown", "a", "b")
		require.ErrorIs(err, idd.ErrUnknownClassError)

		_, err = e.Rename("Version", "8.0", "9.0")
		require.ErrorIs(err, ErrNoNameField)
	})
}

func Test_RemoveObject(t *testing.T) {
	require := require.New(t)

	s := loadStore(t, iddtest.IDF)
	e := New(s.Registry(), s)

	hh, err := e.ReferencesTo("Material:NoMass", "F04 Wall air space resistance")
	require.NoError(err)
	require.Len(hh, 2)
	require.Empty(e.Index().Dangling(s))

	require.NoError(e.RemoveObject("Material:NoMass", "f04 wall air space resistance"))
	require.Empty(s.RecordsOf("Material:NoMass"))

	c, _ := e.GetNamed("Construction", "Interior Wall")
	l2, _ := c.GetString("Layer 2")
	require.Equal("F04 Wall air space resistance", l2)
	require.Len(e.Index().Dangling(s), 2)

	require.ErrorIs(e.RemoveObject("Material:NoMass", "F04 Wall air space resistance"), idd.ErrNotFoundError)
	require.ErrorIs(e.RemoveObject("Unknown", "x"), idd.ErrUnknownClassError)

	_, err = e.ReferencesTo("Material:NoMass", "F04 Wall air space resistance")
	require.ErrorIs(err, idd.ErrNotFoundError)
	_, err = e.ReferencesTo("Unknown", "x")
	require.ErrorIs(err, idd.ErrUnknownClassError)
}

func Test_RemoveExtensibles(t *testing.T) {
	require := require.New(t)

	s := loadStore(t, iddtest.IDF)
	e := New(s.Registry(), s)

	obj, err := e.RemoveExtensibles("BUILDINGSURFACE:DETAILED", "Wall 1")
	require.NoError(err)
	require.Equal([]string{"BUILDINGSURFACE:DETAILED", "Wall 1", "Wall", "Interior Wall", "Main Zone",
		"Outdoors", "", "SunExposed", "WindExposed", "0.5", "5"}, obj.Record().Strings())

	m, err := e.RemoveExtensibles("Material", "G01a 19mm gypsum board")
	require.NoError(err)
	require.Equal(7, m.Len())

	_, err = e.RemoveExtensibles("BuildingSurface:Detailed", "Wall 2")
	require.ErrorIs(err, idd.ErrNotFoundError)
	_, err = e.RemoveExtensibles("Unknown", "Wall 1")
	require.ErrorIs(err, idd.ErrUnknownClassError)
}

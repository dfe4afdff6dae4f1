/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	testifyrequire "github.com/stretchr/testify/require"

	"github.com/voedger/idfkit/pkg/editor"
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/idd/iddtest"
)

type fixture struct {
	dir string
	idd string
	idf string
}

func newFixture(t *testing.T) fixture {
	color.NoColor = true
	dir := t.TempDir()
	f := fixture{
		dir: dir,
		idd: filepath.Join(dir, "Energy+.idd"),
		idf: filepath.Join(dir, "in.idf"),
	}
	require.NoError(t, os.WriteFile(f.idd, []byte(iddtest.IDD), 0o644))
	require.NoError(t, os.WriteFile(f.idf, []byte(iddtest.IDF), 0o644))
	return f
}

func (f fixture) path(name string) string { return filepath.Join(f.dir, name) }

// Runs idfkit with args and returns standard output
func run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(append([]string{"idfkit"}, args...), "0.0.1")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func readFile(t *testing.T, path string) string {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestClasses(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)

	out, _, err := run("--idd", f.idd, "classes", "material")
	require.NoError(err)
	require.Equal("Material\tSurface Construction Elements\nMaterial:NoMass\tSurface Construction Elements\n", out)

	out, _, err = run("--idd", f.idd, "classes", "--group", "schedules")
	require.NoError(err)
	require.Equal("Schedule:Compact\tSchedules\n", out)

	_, _, err = run("--idd", f.path("absent.idd"), "classes")
	require.ErrorIs(err, os.ErrNotExist)
}

func TestListAndShow(t *testing.T) {
	f := newFixture(t)

	t.Run("list all objects", func(t *testing.T) {
		require := require.New(t)

		out, _, err := run("--idd", f.idd, "list", f.idf)
		require.NoError(err)
		require.Contains(out, "Zone «Main Zone»\n")
		require.Contains(out, "Construction «Interior Wall»\nConstruction «Exterior Wall»\n")
		require.Equal(11, strings.Count(out, "\n"))
	})

	t.Run("list class objects", func(t *testing.T) {
		require := require.New(t)

		out, _, err := run("--idd", f.idd, "list", f.idf, "MATERIAL")
		require.NoError(err)
		require.Equal("Material «G01a 19mm gypsum board»\nMaterial «M11 100mm lightweight concrete»\n", out)

		_, _, err = run("--idd", f.idd, "list", f.idf, "Karamba")
		require.ErrorIs(err, idd.ErrUnknownClassError)
	})

	t.Run("show object", func(t *testing.T) {
		require := require.New(t)

		out, _, err := run("--idd", f.idd, "show", f.idf, "zone", "main zone")
		require.NoError(err)
		require.True(strings.HasPrefix(out, "Zone «Main Zone»\n"))
		require.Contains(out, "Ceiling Height {m} = autocalculate\n")

		_, _, err = run("--idd", f.idd, "show", f.idf, "Zone", "Annex")
		require.ErrorIs(err, idd.ErrNotFoundError)
	})
}

func TestRename(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)
	out := f.path("out.idf")

	_, msg, err := run("--idd", f.idd, "rename", f.idf, "Material", "G01a 19mm gypsum board", "Gypsum", "-o", out)
	require.NoError(err)
	require.Contains(msg, "3 references updated")

	res := readFile(t, out)
	require.NotContains(res, "G01a")
	require.Equal(4, strings.Count(res, "    Gypsum"))

	refs, _, err := run("--idd", f.idd, "refs", out, "Material", "gypsum")
	require.NoError(err)
	require.Equal(3, strings.Count(refs, "= «Gypsum»"))

	t.Run("duplicate name is refused", func(t *testing.T) {
		require := testifyrequire.New(t)

		_, _, err := run("--idd", f.idd, "rename", f.idf, "Material", "G01a 19mm gypsum board", "M11 100mm lightweight concrete")
		require.Error(err)

		_, msg, err := run("--idd", f.idd, "--allow-duplicate-names", "rename", f.idf, "Material", "G01a 19mm gypsum board", "M11 100mm lightweight concrete")
		require.NoError(err)
		require.Contains(msg, "3 references updated")
	})
}

func TestAddAndRemove(t *testing.T) {
	f := newFixture(t)

	t.Run("add object to standard output", func(t *testing.T) {
		require := require.New(t)

		out, msg, err := run("--idd", f.idd, "add", f.idf, "Zone", "Name=Annex", "Ceiling Height=3.5")
		require.NoError(err)
		require.Contains(msg, "Zone «Annex»")
		require.Contains(out, "    Annex,")
		require.Contains(out, "    3.5,")
	})

	t.Run("invalid assignment", func(t *testing.T) {
		require := require.New(t)

		_, _, err := run("--idd", f.idd, "add", f.idf, "Zone", "Annex")
		require.ErrorIs(err, errInvalidAssignment)

		_, _, err = run("--idd", f.idd, "add", f.idf, "Zone", "Karamba=1")
		require.ErrorIs(err, idd.ErrUnknownFieldError)

		_, _, err = run("--idd", f.idd, "add", f.idf, "ZoneList", "Name=L", "Zone 1 Name=A", "zone_1_name=B")
		require.ErrorIs(err, editor.ErrFieldAssignedTwice)
	})

	t.Run("remove leaves dangling references", func(t *testing.T) {
		require := require.New(t)

		out := f.path("removed.idf")
		_, msg, err := run("--idd", f.idd, "remove", f.idf, "Material:NoMass", "F04 Wall air space resistance", "-o", out)
		require.NoError(err)
		require.Equal(2, strings.Count(msg, "dangling"))
		require.NotContains(readFile(t, out), "Material:NoMass")

		res, _, err := run("--idd", f.idd, "dangling", out)
		require.ErrorIs(err, errDanglingReferences)
		require.Equal(2, strings.Count(res, "F04 Wall air space resistance"))
	})

	t.Run("remove extensibles", func(t *testing.T) {
		require := require.New(t)

		out, _, err := run("--idd", f.idd, "remove", "--extensibles", f.idf, "BuildingSurface:Detailed", "Wall 1")
		require.NoError(err)
		require.NotContains(out, "Vertex 5")
		require.Contains(out, "Wall 1,")
	})
}

func TestDanglingAndGeometry(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)

	out, _, err := run("--idd", f.idd, "dangling", f.idf)
	require.NoError(err)
	require.Equal("no dangling references\n", out)

	out, _, err = run("--idd", f.idd, "geometry", f.idf)
	require.NoError(err)
	require.Equal("BuildingSurface:Detailed «Wall 1»\tarea 35.00 m2\ttilt 90.0\tazimuth 180.0\n", out)
}

func TestFormat(t *testing.T) {
	require := require.New(t)
	f := newFixture(t)

	out, _, err := run("--idd", f.idd, "format", "--check-version", f.idf)
	require.NoError(err)
	require.Contains(out, "Zone,\n    Main Zone,")

	other := f.path("other.idd")
	require.NoError(os.WriteFile(other, []byte(iddtest.IDDVersion("9.1.0")), 0o644))
	_, _, err = run("--idd", other, "format", "--check-version", f.idf)
	require.Error(err)
}

func TestConfig(t *testing.T) {
	f := newFixture(t)

	t.Run("schema path and cache from config", func(t *testing.T) {
		require := require.New(t)

		cfg := f.path("idfkit.yaml")
		require.NoError(os.WriteFile(cfg, []byte("idd: "+f.idd+"\nnameCache:\n  kind: imcache\n  size: 16\nlogLevel: info\n"), 0o644))
		out, _, err := run("-c", cfg, "list", f.idf, "ZoneList")
		require.NoError(err)
		require.Equal("ZoneList «All Zones»\n", out)
	})

	t.Run("config errors", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{"unknown key", "karamba: 1\n"},
			{"unknown cache kind", "nameCache:\n  kind: redis\n"},
			{"unknown log level", "logLevel: loud\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require := require.New(t)

				cfg := f.path("bad.yaml")
				require.NoError(os.WriteFile(cfg, []byte(tt.content), 0o644))
				_, _, err := run("-c", cfg, "--idd", f.idd, "classes")
				require.Error(err)
			})
		}
	})

	t.Run("absent explicit config", func(t *testing.T) {
		require := require.New(t)

		_, _, err := run("-c", f.path("absent.yaml"), "--idd", f.idd, "classes")
		require.ErrorIs(err, os.ErrNotExist)
	})
}

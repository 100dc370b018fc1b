// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/christmastree/internal/cache"
	"github.com/staranto/christmastree/internal/fault"
	"github.com/staranto/christmastree/internal/puzzle"
)

type recorder struct {
	calls [][]string
}

func (r *recorder) Run(_ context.Context, _ string, args ...string) error {
	r.calls = append(r.calls, args)
	return nil
}

// workspace isolates the test in a temp dir holding a config file and swaps
// in a recording toolchain and a fixed clock.
func workspace(t *testing.T, cfg string) (string, *recorder) {
	t.Helper()

	dir := t.TempDir()
	for _, env := range []string{"CHRISTMASTREE_CONFIG", "CHRISTMASTREE_CACHE_DIR", "CHRISTMASTREE_YEAR", "AOC_SESSION_TOKEN"} {
		t.Setenv(env, "")
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "christmastree.yaml"), []byte(cfg), 0o600))

	rec := &recorder{}
	oldTC, oldNow := toolchain, now
	toolchain = rec
	now = func() time.Time { return time.Date(2023, time.December, 5, 6, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { toolchain, now = oldTC, oldNow })

	return dir, rec
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app, err := InitApp(context.Background(), append([]string{"christmastree"}, args...))
	require.NoError(t, err)

	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err = app.Run(context.Background(), append([]string{"christmastree"}, args...))
	return out.String(), err
}

func TestInitApp(t *testing.T) {
	workspace(t, "module: example.com/advent\n")

	app, err := InitApp(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, f := range app.Flags {
		names = append(names, f.Names()[0])
	}
	assert.Equal(t, []string{"day", "deps", "parser", "vector", "version"}, names)

	var cmds []string
	for _, c := range app.Commands {
		cmds = append(cmds, c.Name)
	}
	assert.ElementsMatch(t, []string{"cache", "input"}, cmds)
}

func TestScaffold(t *testing.T) {
	dir, rec := workspace(t, "module: example.com/advent\nscaffold:\n  vector: true\n")

	out, err := run(t, "--day", "7", "--deps", "golang.org/x/exp")
	require.NoError(t, err)

	assert.Contains(t, out, "example.com/advent/day7 created")
	require.Len(t, rec.calls, 4)
	assert.Equal(t, []string{"mod", "init", "example.com/advent/day7"}, rec.calls[0])
	assert.Equal(t, []string{"get", "github.com/alecthomas/participle/v2", "github.com/go-gl/mathgl", "golang.org/x/exp"}, rec.calls[3])
	assert.FileExists(t, filepath.Join(dir, "day7", "main.go"))
}

func TestScaffold_InverseFlags(t *testing.T) {
	_, rec := workspace(t, "scaffold:\n  vector: true\n")

	_, err := run(t, "--day", "3", "--no-parser", "--no-vector")
	require.NoError(t, err)
	require.Len(t, rec.calls, 3, "only the library to go get")
	assert.Equal(t, []string{"get", "github.com/staranto/christmastree/advent@v0.0.0"}, rec.calls[2])
}

func TestScaffold_DayFromClock(t *testing.T) {
	dir, _ := workspace(t, "module: example.com/advent\n")

	_, err := run(t)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dir, "day5"))
}

func TestScaffold_RejectsDay26(t *testing.T) {
	dir, rec := workspace(t, "module: example.com/advent\n")

	_, err := run(t, "--day", "26")
	require.Error(t, err)
	assert.Empty(t, rec.calls)
	assert.NoDirExists(t, filepath.Join(dir, "day26"))
}

func TestInput_FromCache(t *testing.T) {
	dir, _ := workspace(t, "module: example.com/advent\n")
	require.NoError(t, cache.New(filepath.Join(dir, ".cache")).Write(4, puzzle.Record{Day: 4, Input: "1\n2\n"}))

	out, err := run(t, "input", "--day", "4")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestInput_MissWithoutSession(t *testing.T) {
	workspace(t, "url: http://127.0.0.1:1\n")

	out, err := run(t, "input", "--day", "4")
	assert.ErrorIs(t, err, fault.ErrConfiguration)
	assert.Empty(t, out)
}

func TestCache_List(t *testing.T) {
	dir, _ := workspace(t, "module: example.com/advent\n")

	out, err := run(t, "cache")
	require.NoError(t, err)
	assert.Contains(t, out, "no cached input")

	store := cache.New(filepath.Join(dir, ".cache"))
	require.NoError(t, store.Write(12, puzzle.Record{Day: 12, Input: "x"}))
	require.NoError(t, store.Write(2, puzzle.Record{Day: 2, Input: "y"}))

	out, err = run(t, "cache")
	require.NoError(t, err)
	assert.Contains(t, out, "cached")
	assert.Less(t, bytes.Index([]byte(out), []byte("day2 ")), bytes.Index([]byte(out), []byte("day12")))

	out, err = run(t, "cache", "--path")
	require.NoError(t, err)
	assert.Equal(t, store.Path(2)+"\n"+store.Path(12)+"\n", out)

	out, err = run(t, "cache", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"day":"day12"`)
	assert.Contains(t, out, `"size":`)

	_, err = run(t, "cache", "-o", "xml")
	assert.Error(t, err)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, JammedFlagValidator([]string{"a", "b"}))
	assert.ErrorIs(t, JammedFlagValidator([]string{"a", "--vector"}), fault.ErrValidation)
	assert.ErrorIs(t, JammedFlagValidator("--x"), fault.ErrValidation)

	assert.NoError(t, DayValidator(25))
	assert.ErrorIs(t, DayValidator(26), fault.ErrValidation)
	assert.ErrorIs(t, DayValidator("7"), fault.ErrValidation)

	assert.NoError(t, OutputValidator("yaml"))
	assert.ErrorIs(t, OutputValidator("xml"), fault.ErrValidation)
}

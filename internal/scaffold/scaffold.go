// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/christmastree/internal/fault"
	"github.com/staranto/christmastree/internal/puzzle"
)

// Options selects what goes into a new day.
type Options struct {
	// Day is the day to scaffold. Nil means derive it from today's date.
	Day *int
	// Parser adds the parser library. On by default.
	Parser bool
	// Vector adds the vector math library.
	Vector bool
	// Extra dependencies, in the order given.
	Extra []string
}

// DefaultOptions returns Options with the parser library on.
func DefaultOptions() Options {
	return Options{Parser: true}
}

// Unit describes a generated day.
type Unit struct {
	Day          puzzle.Day
	Dir          string
	Module       string
	Dependencies []string
	EntrySource  string
	TestSource   string
}

// Generator creates new day modules inside a workspace.
type Generator struct {
	// Workspace is the directory new days are created in.
	Workspace string
	// ModulePrefix is prepended to "dayN" to form each day's module path.
	ModulePrefix string
	// LibraryDir is where the shared library module lives on disk. It is
	// wired into each day with a relative replace directive.
	LibraryDir   string
	ParserModule string
	VectorModule string
	Toolchain    Toolchain
	// Now defaults to time.Now.
	Now func() time.Time
}

// ResolveDay returns the requested day, or today's day when none was given,
// and fails if the result is outside the calendar.
func (g *Generator) ResolveDay(opts Options) (puzzle.Day, error) {
	if opts.Day != nil {
		return puzzle.NewDay(*opts.Day)
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	log.Info("no day specified, using today's date")
	return puzzle.Today(now())
}

// Dependencies is the ordered, de-duplicated list of modules a new day
// gets: the parser and vector libraries when selected, then the extras.
func (g *Generator) Dependencies(opts Options) []string {
	var deps []string
	if opts.Parser && g.ParserModule != "" {
		deps = append(deps, g.ParserModule)
	}
	if opts.Vector && g.VectorModule != "" {
		deps = append(deps, g.VectorModule)
	}
	deps = append(deps, opts.Extra...)
	return dedupe(deps)
}

// Generate scaffolds a new day. The day is validated before anything
// touches the disk. After that each step is fatal and nothing is rolled
// back, so a failed run leaves a partial day behind for inspection.
func (g *Generator) Generate(ctx context.Context, opts Options) (Unit, error) {
	day, err := g.ResolveDay(opts)
	if err != nil {
		return Unit{}, err
	}

	entry, err := EntrySource(day)
	if err != nil {
		return Unit{}, err
	}
	test, err := TestSource(day)
	if err != nil {
		return Unit{}, err
	}

	unit := Unit{
		Day:          day,
		Dir:          filepath.Join(g.Workspace, day.Name()),
		Module:       path.Join(g.ModulePrefix, day.Name()),
		Dependencies: g.Dependencies(opts),
		EntrySource:  entry,
		TestSource:   test,
	}

	// 1. A new, independently buildable module.
	if err := os.Mkdir(unit.Dir, 0o755); err != nil { //nolint:mnd
		return unit, fault.Storage("scaffold", fmt.Errorf("failed to create %s: %w", unit.Dir, err))
	}
	if err := g.toolchain().Run(ctx, unit.Dir, "mod", "init", unit.Module); err != nil {
		return unit, err
	}

	// 2. The shared library, through a replace to its checkout.
	rel, err := filepath.Rel(unit.Dir, g.libraryDir())
	if err != nil {
		return unit, fault.Configuration("scaffold", fmt.Errorf("failed to locate library: %w", err))
	}
	if err := g.toolchain().Run(ctx, unit.Dir, "mod", "edit",
		"-require="+LibraryModule+"@v0.0.0",
		"-replace="+LibraryModule+"="+filepath.ToSlash(rel),
	); err != nil {
		return unit, err
	}
	if _, err := os.Stat(filepath.Join(g.Workspace, "go.work")); err == nil {
		if err := g.toolchain().Run(ctx, g.Workspace, "work", "use", "./"+day.Name()); err != nil {
			return unit, err
		}
	}

	// The library's own requirements and go.sum entries, so the day builds
	// without a go.work.
	if err := g.toolchain().Run(ctx, unit.Dir, "get", LibraryModule+"/advent@v0.0.0"); err != nil {
		return unit, err
	}

	// 3. Default, optional and extra dependencies.
	if len(unit.Dependencies) > 0 {
		if err := g.toolchain().Run(ctx, unit.Dir, append([]string{"get"}, unit.Dependencies...)...); err != nil {
			return unit, err
		}
	}

	// 4. Boilerplate.
	if err := writeSource(filepath.Join(unit.Dir, "main.go"), unit.EntrySource); err != nil {
		return unit, err
	}
	if err := writeSource(filepath.Join(unit.Dir, "main_test.go"), unit.TestSource); err != nil {
		return unit, err
	}

	log.Infof("scaffolded %s in %s", unit.Module, unit.Dir)
	return unit, nil
}

func (g *Generator) libraryDir() string {
	if g.LibraryDir != "" {
		return g.LibraryDir
	}
	return g.Workspace
}

// writeSource refuses to overwrite an existing file.
func writeSource(p, src string) error {
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:mnd
	if err != nil {
		return fault.Storage("scaffold", fmt.Errorf("failed to create %s: %w", p, err))
	}
	if _, err := f.WriteString(src); err != nil {
		f.Close()
		return fault.Storage("scaffold", fmt.Errorf("failed to write %s: %w", p, err))
	}
	if err := f.Close(); err != nil {
		return fault.Storage("scaffold", fmt.Errorf("failed to write %s: %w", p, err))
	}
	return nil
}

// dedupe drops blanks and repeats, keeping first occurrences in order.
func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func (g *Generator) toolchain() Toolchain {
	if g.Toolchain != nil {
		return g.Toolchain
	}
	return GoToolchain{}
}

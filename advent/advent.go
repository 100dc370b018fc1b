// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package advent

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/staranto/christmastree/internal/config"
	"github.com/staranto/christmastree/internal/fault"
	"github.com/staranto/christmastree/internal/input"
	mylog "github.com/staranto/christmastree/internal/log"
	"github.com/staranto/christmastree/internal/puzzle"
)

// Solution pairs the two parts of a day. Both parts must be pure: they are
// called only for the value they return, which is printed and nothing more.
type Solution[T, U any] struct {
	Part1 func(string) T
	Part2 func(string) U
}

// New builds a Solution, inferring the result types from the functions.
func New[T, U any](part1 func(string) T, part2 func(string) U) Solution[T, U] {
	return Solution[T, U]{Part1: part1, Part2: part2}
}

// InputFunc returns the puzzle input for a day.
type InputFunc func(ctx context.Context, day int) (string, error)

type options struct {
	input  InputFunc
	stderr io.Writer
}

// Option customizes Execute.
type Option func(*options)

// WithInput replaces the cached/fetched input with f.
func WithInput(f InputFunc) Option {
	return func(o *options) { o.input = f }
}

// WithStderr sets where usage and help text go. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// Run is the entry point of a day's program. It parses os.Args, prints the
// answers to stdout and exits non-zero on any failure.
func Run[T, U any](sol Solution[T, U], day int) {
	mylog.InitLogger()

	if err := Execute(context.Background(), sol, day, os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(fault.ExitCode(err))
	}
}

// Execute is Run without the process exit. args includes the program name.
func Execute[T, U any](ctx context.Context, sol Solution[T, U], day int, args []string, stdout io.Writer, opts ...Option) error {
	d, err := puzzle.NewDay(day)
	if err != nil {
		return err
	}

	o := options{stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	if o.input == nil {
		o.input = cachedInput()
	}

	return newCommand(d, o, func(ctx context.Context, sel Selection) error {
		return dispatch(ctx, sol, d, sel, o.input, stdout)
	}).run(ctx, args)
}

// dispatch runs the selected parts in order, fetching input for each.
func dispatch[T, U any](ctx context.Context, sol Solution[T, U], day puzzle.Day, sel Selection, in InputFunc, w io.Writer) error {
	styled := isTerminal(w)

	for _, part := range sel.Parts() {
		text, err := in(ctx, int(day))
		if err != nil {
			return err
		}

		var value any
		switch part {
		case Part1:
			value = sol.Part1(text)
		case Part2:
			value = sol.Part2(text)
		}

		if sel == Both {
			fmt.Fprintf(w, "%s %v\n", label(part, styled), value)
		} else {
			fmt.Fprintf(w, "%v\n", value)
		}
	}
	return nil
}

// cachedInput resolves configuration and goes through the cache. The source
// is opened on first use and reused for the second part.
func cachedInput() InputFunc {
	var src *input.Source
	return func(ctx context.Context, day int) (string, error) {
		if src == nil {
			settings, err := config.Resolve()
			if err != nil {
				return "", err
			}
			src = input.Open(settings)
		}
		rec, err := src.Get(ctx, puzzle.Day(day))
		if err != nil {
			return "", err
		}
		return rec.Input, nil
	}
}

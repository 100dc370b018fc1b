// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package advent

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/christmastree/internal/fault"
	"github.com/staranto/christmastree/internal/puzzle"
)

// Selection is which parts of a day to run.
type Selection int

const (
	Both Selection = iota
	Part1
	Part2
)

// ParseSelection maps the --part flag onto a Selection. An unset flag means
// both parts. Anything other than 1 or 2 is rejected.
func ParseSelection(part int, set bool) (Selection, error) {
	if !set {
		return Both, nil
	}
	switch part {
	case 1:
		return Part1, nil
	case 2: //nolint:mnd
		return Part2, nil
	}
	return Both, fault.Validation("part", fmt.Errorf("must be 1 or 2, got %d", part))
}

// Parts lists the individual parts in the order they run.
func (s Selection) Parts() []Selection {
	switch s {
	case Part1:
		return []Selection{Part1}
	case Part2:
		return []Selection{Part2}
	}
	return []Selection{Part1, Part2}
}

func (s Selection) String() string {
	switch s {
	case Part1:
		return "Part 1"
	case Part2:
		return "Part 2"
	}
	return "Both"
}

var labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

// label is the "Part n:" prefix, colored when writing to a terminal.
func label(part Selection, styled bool) string {
	s := part.String() + ":"
	if styled {
		return labelStyle.Render(s)
	}
	return s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// dayCommand wraps the cli.Command for a day's program and remembers why it
// failed, so callers get the typed error rather than the cli's rendering.
type dayCommand struct {
	cmd     *cli.Command
	invalid error
	failed  error
}

func newCommand(day puzzle.Day, o options, solve func(context.Context, Selection) error) *dayCommand {
	dc := &dayCommand{}

	dc.cmd = &cli.Command{
		Name:      day.Name(),
		Usage:     fmt.Sprintf("solve %s", day.Name()),
		UsageText: day.Name() + " [--part 1|2]",
		Writer:    o.stderr,
		ErrWriter: o.stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "part",
				Aliases: []string{"p"},
				Usage:   "run only part 1 or part 2",
				Validator: func(v int) error {
					if _, err := ParseSelection(v, true); err != nil {
						dc.invalid = err
						return err
					}
					return nil
				},
			},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sel, err := ParseSelection(cmd.Int("part"), cmd.IsSet("part"))
			if err != nil {
				dc.invalid = err
				return err
			}
			dc.failed = solve(ctx, sel)
			return dc.failed
		},
	}

	return dc
}

func (dc *dayCommand) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{dc.cmd.Name}
	}

	err := dc.cmd.Run(ctx, args)
	switch {
	case dc.invalid != nil:
		return dc.invalid
	case dc.failed != nil:
		return dc.failed
	case err != nil:
		return fault.Validation("arguments", err)
	}
	return nil
}

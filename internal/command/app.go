// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/staranto/christmastree/internal/config"
	"github.com/staranto/christmastree/internal/fault"
	"github.com/staranto/christmastree/internal/puzzle"
	"github.com/staranto/christmastree/internal/scaffold"
)

var (
	// toolchain runs the go command for the scaffold action.
	toolchain scaffold.Toolchain = scaffold.GoToolchain{}

	now = time.Now
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	settings, err := config.Resolve()
	if err != nil {
		return nil, err
	}

	app := &cli.Command{
		Name:      "christmastree",
		Usage:     "Advent of Code workspace",
		UsageText: "christmastree [--day N] [--parser|--no-parser] [--vector|--no-vector] [--deps a,b]",
		Flags:     append([]cli.Flag{versionFlag}, NewScaffoldFlags(settings)...),
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return fault.Validation("arguments", err)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return ScaffoldCommandAction(ctx, cmd, settings)
		},
	}

	app.Commands = append(app.Commands,
		CacheCommandBuilder(app, settings),
		InputCommandBuilder(app, settings),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// dayArg returns --day when given, otherwise today's day.
func dayArg(cmd *cli.Command) (puzzle.Day, error) {
	if cmd.IsSet("day") {
		return puzzle.NewDay(cmd.Int("day"))
	}
	return puzzle.Today(now())
}

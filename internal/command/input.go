// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/christmastree/internal/config"
	"github.com/staranto/christmastree/internal/input"
)

// InputCommandAction prints a day's input, fetching and caching it on first
// use.
func InputCommandAction(ctx context.Context, cmd *cli.Command, settings config.Settings) error {
	day, err := dayArg(cmd)
	if err != nil {
		return err
	}

	rec, err := input.Open(settings).Get(ctx, day)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.Root().Writer, rec.Input)
	return nil
}

// InputCommandBuilder constructs the cli.Command for "input".
func InputCommandBuilder(cmd *cli.Command, settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "input",
		Usage:     "print a day's puzzle input",
		UsageText: `christmastree input [--day N]`,
		Flags: []cli.Flag{
			NewDayFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return InputCommandAction(ctx, c, settings)
		},
	}
}

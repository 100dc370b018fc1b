// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/christmastree/internal/config"
	"github.com/staranto/christmastree/internal/scaffold"
)

// ScaffoldCommandAction creates a new day in the workspace.
func ScaffoldCommandAction(ctx context.Context, cmd *cli.Command, settings config.Settings) error {
	opts := scaffold.Options{
		Parser: cmd.Bool("parser"),
		Vector: cmd.Bool("vector"),
		Extra:  cmd.StringSlice("deps"),
	}
	if cmd.IsSet("day") {
		day := cmd.Int("day")
		opts.Day = &day
	}

	gen := &scaffold.Generator{
		Workspace:    settings.Workspace,
		ModulePrefix: settings.Module,
		ParserModule: settings.Scaffold.ParserModule,
		VectorModule: settings.Scaffold.VectorModule,
		Toolchain:    toolchain,
		Now:          now,
	}

	unit, err := gen.Generate(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Root().Writer, "%s created in %s\n", unit.Module, unit.Dir)
	return nil
}

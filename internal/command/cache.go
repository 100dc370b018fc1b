// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/christmastree/internal/cache"
	"github.com/staranto/christmastree/internal/config"
	"github.com/staranto/christmastree/internal/output"
)

// CacheCommandAction lists the cached days. It never modifies the cache.
func CacheCommandAction(_ context.Context, cmd *cli.Command, settings config.Settings) error {
	store := cache.New(settings.CacheDir)

	entries, err := store.List()
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	format := cmd.String("output")

	if cmd.Bool("path") {
		for _, e := range entries {
			fmt.Fprintln(w, e.Path)
		}
		return nil
	}

	if len(entries) == 0 && format == "text" {
		fmt.Fprintf(w, "no cached input in %s\n", store.Root())
		return nil
	}

	// Text is for people, so sizes and ages are humanized there only.
	rows := make([]output.Row, 0, len(entries))
	for _, e := range entries {
		row := output.Row{"day": e.Day.Name(), "path": e.Path}
		if format == "text" {
			row["size"] = humanize.Bytes(uint64(e.Size)) //nolint:gosec
			row["cached"] = humanize.Time(e.ModTime)
		} else {
			row["size"] = e.Size
			row["cached"] = e.ModTime.UTC().Format(time.RFC3339)
		}
		rows = append(rows, row)
	}

	columns := []string{"day", "size", "cached"}
	if format != "text" {
		columns = append(columns, "path")
	}

	return output.Write(rows, columns, output.Options{
		Format:  format,
		Color:   cmd.Bool("color"),
		Titles:  cmd.Bool("titles"),
		Padding: 2, //nolint:mnd
	}, w)
}

// CacheCommandBuilder constructs the cli.Command for "cache".
func CacheCommandBuilder(cmd *cli.Command, settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:      "cache",
		Usage:     "list cached puzzle input",
		UsageText: `christmastree cache [--path] [--output text|json|yaml]`,
		Flags: []cli.Flag{
			&cli.BoolWithInverseFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored text output",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("cache.color", altsrc.StringSourcer(settings.Source)),
					yaml.YAML("color", altsrc.StringSourcer(settings.Source)),
				),
				Value: false,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("cache.output", altsrc.StringSourcer(settings.Source)),
				),
				Value: "text",
				Validator: func(value string) error {
					return FlagValidators(value, OutputValidator)
				},
			},
			&cli.BoolFlag{
				Name:        "path",
				Usage:       "print only the cache file paths",
				HideDefault: true,
			},
			&cli.BoolWithInverseFlag{
				Name:    "titles",
				Aliases: []string{"t"},
				Usage:   "show titles with text output",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("cache.titles", altsrc.StringSourcer(settings.Source)),
				),
				Value: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return CacheCommandAction(ctx, c, settings)
		},
	}
}

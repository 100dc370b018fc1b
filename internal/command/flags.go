// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/christmastree/internal/config"
)

var versionFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "version",
	Aliases:     []string{"v"},
	Usage:       "christmastree version info",
	HideDefault: true,
}

// NewDayFlag constructs the --day flag. Left unset, commands fall back to
// today's date.
func NewDayFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "day",
		Aliases: []string{"d"},
		Usage:   "puzzle day, 1-25. Defaults to today during December",
		Validator: func(value int) error {
			return FlagValidators(value, DayValidator)
		},
	}
}

// NewScaffoldFlags constructs the flags of the root scaffold action. The
// parser and vector defaults may be set under "scaffold." in the config file.
func NewScaffoldFlags(settings config.Settings) (flags []cli.Flag) {
	flags = []cli.Flag{
		NewDayFlag(),
		&cli.BoolWithInverseFlag{
			Name:  "parser",
			Usage: "add the parser library (" + settings.Scaffold.ParserModule + ")",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("scaffold.parser", altsrc.StringSourcer(settings.Source)),
			),
			Value: true,
		},
		&cli.BoolWithInverseFlag{
			Name:  "vector",
			Usage: "add the vector math library (" + settings.Scaffold.VectorModule + ")",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("scaffold.vector", altsrc.StringSourcer(settings.Source)),
			),
			Value: false,
		},
		&cli.StringSliceFlag{
			Name:  "deps",
			Usage: "comma-separated list of extra modules to go get",
			Value: settings.Scaffold.Deps,
			Validator: func(value []string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
	}

	return
}

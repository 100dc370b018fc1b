// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/apex/log"
)

// Toolchain runs the go command in a directory.
type Toolchain interface {
	Run(ctx context.Context, dir string, args ...string) error
}

// GoToolchain shells out to the go binary on PATH.
type GoToolchain struct {
	// Binary defaults to "go".
	Binary string
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Toolchain.
func (g GoToolchain) Run(ctx context.Context, dir string, args ...string) error {
	bin := g.Binary
	if bin == "" {
		bin = "go"
	}

	log.Debugf("%s %s (in %s)", bin, strings.Join(args, " "), dir)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = g.Stdout
	cmd.Stderr = g.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stderr
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", bin, strings.Join(args, " "), err)
	}
	return nil
}

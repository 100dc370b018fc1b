// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for christmastree. The root
// command scaffolds a new day; "input" and "cache" work with puzzle input.
package command

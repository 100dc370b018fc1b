// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

/*
Package advent is the library every generated day program imports.

A day's main is a single call:

	advent.Run(advent.New(part1, part2), 7)

Run reads the day's input through the local cache, fetching it once from the
puzzle site on a miss, and prints the answers. With no flags both parts run
and each answer is labelled:

	Part 1: 142
	Part 2: 281

With --part 1 or --part 2 only that answer is printed, unlabelled, so it can
be piped. Any other part number is rejected before any input is read.

Failures are written to stderr and the process exits non-zero.

CheckExamples and Dedent support the example tests written beside main.go.
*/
package advent

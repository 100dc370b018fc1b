// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// christmastree is the workspace tool for Advent of Code solutions. It
// scaffolds a module per day wired to the advent library, and prints or
// lists the cached puzzle input those days read.
package main

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package scaffold creates a new day: its own Go module under the
// workspace, wired to the shared library through a replace directive, with
// the requested dependencies added and a boilerplate main.go and
// main_test.go written from fixed templates.
package scaffold

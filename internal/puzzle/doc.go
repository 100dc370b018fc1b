// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package puzzle holds the day identifier and the input record shared by the
// cache, the remote fetcher and the scaffold generator.
package puzzle

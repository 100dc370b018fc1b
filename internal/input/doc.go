// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package input is the single entry point for puzzle input. It reads the
// on-disk cache first and only on a miss fetches from the puzzle site,
// persisting the result before returning it. Cached input is trusted
// forever; nothing is revalidated.
package input

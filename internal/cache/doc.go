// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package cache is the on-disk store for puzzle input. Each day is kept in
// its own YAML file, day<N>.yaml, holding a single `input` key. Entries are
// only ever created or read; there is no update or delete, and a file that
// exists but does not decode is reported as corruption rather than a miss.
package cache

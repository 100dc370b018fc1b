// Copyright (c) 2025 Steve Taranto staranto@gmail.com.
// SPDX-License-Identifier: Apache-2.0

// Package remote fetches puzzle input from the puzzle site using the
// session cookie of a logged-in user.
package remote

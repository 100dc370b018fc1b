// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output emits listings as a text table, JSON or YAML.
package output

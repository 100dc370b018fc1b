// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package fault defines the small, fixed set of error kinds (configuration,
// corruption, storage, network and validation) returned by the input
// acquisition and scaffolding code, and maps them to process exit codes.
package fault

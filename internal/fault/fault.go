// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Every error produced by the acquisition and scaffold code
// carries exactly one of these so callers can branch with errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrCorruption    = errors.New("cache corruption")
	ErrStorage       = errors.New("storage error")
	ErrNetwork       = errors.New("network error")
	ErrValidation    = errors.New("validation error")
)

// Error ties an underlying error to its kind and the operation that failed.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Configuration reports missing or malformed settings, including a missing
// session token.
func Configuration(op string, err error) error { return newError(ErrConfiguration, op, err) }

// Corruption reports a cache entry that exists but cannot be decoded.
func Corruption(op string, err error) error { return newError(ErrCorruption, op, err) }

// Storage reports a failed filesystem read, write or create.
func Storage(op string, err error) error { return newError(ErrStorage, op, err) }

// Network reports a transport failure or a non-2xx response.
func Network(op string, err error) error { return newError(ErrNetwork, op, err) }

// Validation reports bad user input such as a day outside 1..25.
func Validation(op string, err error) error { return newError(ErrValidation, op, err) }

// Exit codes handed to os.Exit at the process boundary.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitValidation    = 2
	ExitConfiguration = 3
	ExitNetwork       = 4
	ExitStorage       = 5
)

// ExitCode maps an error to a process exit code by kind. A nil error is
// ExitOK; an error of no known kind is ExitFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrValidation):
		return ExitValidation
	case errors.Is(err, ErrConfiguration):
		return ExitConfiguration
	case errors.Is(err, ErrNetwork):
		return ExitNetwork
	case errors.Is(err, ErrStorage), errors.Is(err, ErrCorruption):
		return ExitStorage
	default:
		return ExitFailure
	}
}

// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package advent

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
)

// Example is a worked example from a puzzle description.
type Example[T any] struct {
	// Name labels the example in failures. Defaults to its position.
	Name  string
	Input string
	Want  T
}

// CheckExamples runs part on each example's dedented input and reports every
// mismatch, not just the first.
func CheckExamples[T any](t assert.TestingT, part func(string) T, examples ...Example[T]) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	for i, ex := range examples {
		name := ex.Name
		if name == "" {
			name = fmt.Sprintf("example %d", i+1)
		}
		assert.Equal(t, ex.Want, part(Dedent(ex.Input)), name)
	}
}

// Dedent strips the common leading indentation from s and the newline that
// follows an opening backquote, so examples can be indented with the code.
func Dedent(s string) string {
	return strings.TrimLeft(dedent.Dedent(s), "\n")
}

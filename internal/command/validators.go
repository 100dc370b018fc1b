// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/staranto/christmastree/internal/fault"
	"github.com/staranto/christmastree/internal/output"
	"github.com/staranto/christmastree/internal/puzzle"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	var values []string
	switch v := value.(type) {
	case string:
		values = []string{v}
	case []string:
		values = v
	}
	for _, s := range values {
		if strings.HasPrefix(s, "--") {
			return fault.Validation("flag", errors.New("must not begin with '--'"))
		}
	}
	return nil
}

// DayValidator accepts 1 through 25.
func DayValidator(value any) error {
	n, ok := value.(int)
	if !ok {
		return fault.Validation("day", fmt.Errorf("not a number: %v", value))
	}
	_, err := puzzle.NewDay(n)
	return err
}

func OutputValidator(value any) error {
	valid := false
	for _, v := range output.Formats {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fault.Validation("output", fmt.Errorf("must be one of %v", output.Formats))
	}
	return nil
}

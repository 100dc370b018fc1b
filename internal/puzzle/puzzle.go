// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package puzzle

import (
	"fmt"
	"time"

	"github.com/staranto/christmastree/internal/fault"
)

// The calendar runs from the first through the twenty-fifth of December.
const (
	FirstDay Day = 1
	LastDay  Day = 25
)

// Day identifies a puzzle. It is both the cache key and the scaffold
// identifier.
type Day int

// Name is the deterministic name used for cache files and scaffolded
// modules, e.g. "day7".
func (d Day) Name() string {
	return fmt.Sprintf("day%d", int(d))
}

// Valid reports whether d is within [FirstDay, LastDay].
func (d Day) Valid() bool {
	return d >= FirstDay && d <= LastDay
}

// Check returns a validation error if d is outside the calendar.
func (d Day) Check() error {
	if !d.Valid() {
		return fault.Validation("day",
			fmt.Errorf("%d is outside the advent calendar range [%d, %d]", int(d), FirstDay, LastDay))
	}
	return nil
}

// NewDay converts n to a Day, rejecting anything outside the calendar.
func NewDay(n int) (Day, error) {
	d := Day(n)
	if err := d.Check(); err != nil {
		return 0, err
	}
	return d, nil
}

// Today derives the day from a calendar date. Only dates between December 1
// and December 25 map to a day; anything else is a validation error.
func Today(now time.Time) (Day, error) {
	if now.Month() != time.December {
		return 0, fault.Validation("day",
			fmt.Errorf("%s is not in December, specify a day explicitly", now.Format("2006-01-02")))
	}
	return NewDay(now.Day())
}

// Record is the raw puzzle input for one day. It is never modified once
// created.
type Record struct {
	Day   Day
	Input string
}

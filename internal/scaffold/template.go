// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/staranto/christmastree/internal/config"
	"github.com/staranto/christmastree/internal/puzzle"
)

// LibraryModule is the module path of the shared support library that every
// generated day depends on.
const LibraryModule = config.LibraryModule

// entryTemplate is the boilerplate main.go. The day is its only parameter
// and appears exactly once.
const entryTemplate = `package main

import (
	"{{ .Library }}/advent"
)

func main() {
	advent.Run(advent.New(part1, part2), {{ .Day }})
}

func part1(input string) int {
	return 0
}

func part2(input string) int {
	return 0
}
`

// testTemplate is the example-test skeleton written beside main.go.
const testTemplate = `package main

import (
	"testing"

	"{{ .Library }}/advent"
)

const example = ` + "`" + `
	paste the example from the puzzle here
` + "`" + `

func TestPart1(t *testing.T) {
	advent.CheckExamples(t, part1,
		advent.Example[int]{Input: example, Want: 0},
	)
}

func TestPart2(t *testing.T) {
	advent.CheckExamples(t, part2,
		advent.Example[int]{Input: example, Want: 0},
	)
}
`

var (
	entryTmpl = template.Must(template.New("main.go").Parse(entryTemplate))
	testTmpl  = template.Must(template.New("main_test.go").Parse(testTemplate))
)

type templateData struct {
	Library string
	Day     int
}

// EntrySource renders main.go for day.
func EntrySource(day puzzle.Day) (string, error) {
	return render(entryTmpl, day)
}

// TestSource renders main_test.go for day.
func TestSource(day puzzle.Day) (string, error) {
	return render(testTmpl, day)
}

func render(t *template.Template, day puzzle.Day) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, templateData{Library: LibraryModule, Day: int(day)}); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v2"

	"github.com/staranto/christmastree/internal/fault"
)

// Formats accepted by Write.
var Formats = []string{"text", "json", "yaml"}

// Row is one record of a listing. Keys are emitted in Columns order.
type Row map[string]interface{}

// Options controls how a listing is emitted.
type Options struct {
	// Format is one of Formats. Empty means text.
	Format string
	// Color and Titles only apply to text.
	Color  bool
	Titles bool
	// Padding between text columns.
	Padding int
}

// Palette colors, header then alternating rows.
const (
	HeaderColor = "#f6be00"
	EvenColor   = "#ffffff"
	OddColor    = "#00c8f0"
)

// Write emits rows to w. columns selects and orders the keys of each row.
func Write(rows []Row, columns []string, opts Options, w io.Writer) error {
	switch opts.Format {
	case "json":
		out := make([]Row, 0, len(rows))
		for _, r := range rows {
			out = append(out, pick(r, columns))
		}
		b, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		// MapSlice keeps the column order, which a map would not.
		out := make([]yaml.MapSlice, 0, len(rows))
		for _, r := range rows {
			var ms yaml.MapSlice
			for _, c := range columns {
				ms = append(ms, yaml.MapItem{Key: c, Value: r[c]})
			}
			out = append(out, ms)
		}
		b, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "", "text":
		TableWriter(rows, columns, opts, w)
		return nil
	}
	return fault.Validation("output", fmt.Errorf("must be one of %v", Formats))
}

func pick(r Row, columns []string) Row {
	out := make(Row, len(columns))
	for _, c := range columns {
		out[c] = r[c]
	}
	return out
}

// TableWriter renders rows in a tabular form honoring color, titles and
// padding options.
func TableWriter(rows []Row, columns []string, opts Options, w io.Writer) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerStyle = headerStyle.Foreground(lipgloss.Color(HeaderColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(EvenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(OddColor))
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, InterfaceToString(r[c], "-"))
		}
		cells = append(cells, row)
	}

	log.Debugf("padding: %v", opts.Padding)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(opts.Padding)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	case fmt.Stringer:
		return value.String()
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

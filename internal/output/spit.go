// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/tblsort/internal/columns"
	"github.com/tfctl/tblsort/internal/config"
	"github.com/tfctl/tblsort/internal/dataset"
)

// Formats lists the accepted values of Options.Format.
var Formats = []string{"text", "json", "yaml", "csv"}

// Options shapes rendering.
type Options struct {
	Format  string
	Titles  bool
	Color   bool
	Padding int
	// Count appends a "N rows" footer to text output.
	Count bool
}

// Render writes the visible columns of t to w in opts.Format. Transforms are
// applied here, after sorting, so they never change the order.
func Render(t *dataset.Table, cols columns.List, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}
	visible := cols.Visible()
	cells := displayCells(t, visible)

	switch opts.Format {
	case "json":
		return writeJSON(cells, visible, w)
	case "yaml":
		return writeYAML(cells, visible, w)
	case "csv":
		return writeCSV(cells, visible, w)
	case "", "text":
		TableWriter(cells, visible, opts, w)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

// displayCells returns the transformed cell strings, one slice per row.
func displayCells(t *dataset.Table, visible columns.List) [][]string {
	cells := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		line := make([]string, 0, len(visible))
		for i := range visible {
			line = append(line, visible[i].Transform(row[visible[i].Key]))
		}
		cells = append(cells, line)
	}
	return cells
}

// orderedRow marshals as a JSON object whose keys keep column order.
type orderedRow struct {
	keys   []string
	values []string
}

func (r orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(cells [][]string, visible columns.List, w io.Writer) error {
	keys := visible.Titles()
	rows := make([]orderedRow, 0, len(cells))
	for _, line := range cells {
		rows = append(rows, orderedRow{keys: keys, values: line})
	}

	out, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeYAML uses yaml.v2 MapSlice so that keys keep column order.
func writeYAML(cells [][]string, visible columns.List, w io.Writer) error {
	keys := visible.Titles()
	rows := make([]yaml.MapSlice, 0, len(cells))
	for _, line := range cells {
		row := make(yaml.MapSlice, 0, len(keys))
		for i, k := range keys {
			row = append(row, yaml.MapItem{Key: k, Value: line[i]})
		}
		rows = append(rows, row)
	}

	out, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func writeCSV(cells [][]string, visible columns.List, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(visible.Titles()); err != nil {
		return err
	}
	if err := cw.WriteAll(cells); err != nil {
		return fmt.Errorf("csv write: %w", err)
	}
	return nil
}

// TableWriter renders rows as an aligned table honoring color, titles and
// padding options.
func TableWriter(cells [][]string, visible columns.List, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(cells) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")
		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	pad := opts.Padding
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
				style = style.PaddingLeft(pad)
			}
			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(visible.Titles()...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	if opts.Count {
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s rows", humanize.Comma(int64(len(cells))))))
	}
}

// getColors returns configured color values for table rendering, falling back
// to defaults picked for the terminal background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if colorCfg, err := config.GetString(key); err == nil {
			return lipgloss.Color(colorCfg)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")
	return
}

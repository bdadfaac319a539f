// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tfctl/tblsort/internal/columns"
	"github.com/tfctl/tblsort/internal/comparator"
	"github.com/tfctl/tblsort/internal/dataset"
	"github.com/tfctl/tblsort/internal/output"
)

const maxColumnWidth = 40

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Run shows data in an interactive table until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Model is a table whose sort column and direction follow key presses. Every
// re-sort goes through the comparator bound to the column.
type Model struct {
	table    table.Model
	data     *dataset.Table
	input    []dataset.Row
	visible  columns.List
	bindings columns.Bindings
	// sortIdx indexes visible; -1 means input order.
	sortIdx int
	order   comparator.SortOrder
	status  string
	failed  bool
}

// New builds a Model. initial is a --sort spec and may be empty.
func New(data *dataset.Table, cols columns.List, bindings columns.Bindings, initial string, height int) (Model, error) {
	m := Model{
		data:     data,
		input:    append([]dataset.Row(nil), data.Rows...),
		visible:  cols.Visible(),
		bindings: bindings,
		sortIdx:  -1,
		order:    comparator.Ascending,
	}

	spec, ok, err := output.ParseSortSpec(initial)
	if err != nil {
		return Model{}, err
	}
	if ok {
		for i, c := range m.visible {
			if c.Key == spec.Key {
				m.sortIdx = i
			}
		}
		if m.sortIdx < 0 {
			return Model{}, fmt.Errorf("sort column %q is not a visible column", spec.Key)
		}
		m.order = spec.Order
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)

	m.table = table.New(
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithStyles(styles),
	)

	if err := m.resort(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 4)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.step(-1)
			return m, nil
		case "right", "l":
			m.step(1)
			return m, nil
		case "s":
			if m.sortIdx >= 0 {
				m.order = m.order.Reverse()
				m.apply()
			}
			return m, nil
		case "0":
			m.sortIdx = -1
			m.apply()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	status := statusStyle.Render(m.status)
	if m.failed {
		status = errorStyle.Render(m.status)
	}
	return m.table.View() + "\n" + status + "\n" +
		statusStyle.Render("←/→ column  s direction  0 input order  q quit") + "\n"
}

// SortKey reports the current sort column key ("" for input order) and
// direction.
func (m Model) SortKey() (string, comparator.SortOrder) {
	if m.sortIdx < 0 {
		return "", m.order
	}
	return m.visible[m.sortIdx].Key, m.order
}

// Rows returns the rows in their current order.
func (m Model) Rows() []dataset.Row {
	return m.data.Rows
}

// step moves the sort column by dir, skipping columns without a binding.
func (m *Model) step(dir int) {
	n := len(m.visible)
	if n == 0 {
		return
	}

	idx := m.sortIdx
	if idx < 0 && dir < 0 {
		idx = 0
	}
	for range n {
		idx = (idx + dir + n) % n
		if _, err := m.bindings.Strategy(m.visible[idx].Key); err == nil {
			m.sortIdx = idx
			m.order = comparator.Ascending
			m.apply()
			return
		}
	}
	m.status, m.failed = "no sortable columns", true
}

// apply re-sorts and records any failure in the status line.
func (m *Model) apply() {
	if err := m.resort(); err != nil {
		m.status, m.failed = err.Error(), true
	}
}

// resort orders the rows and refreshes the table widget.
func (m *Model) resort() error {
	m.failed = false
	m.status = fmt.Sprintf("%d rows", len(m.data.Rows))

	if m.sortIdx >= 0 {
		key := m.visible[m.sortIdx].Key
		strategy, err := m.bindings.Strategy(key)
		if err != nil {
			return err
		}
		output.SortRows(m.data.Rows, key, strategy, m.order)
		m.status = fmt.Sprintf("%d rows sorted by %s %s", len(m.data.Rows), m.visible[m.sortIdx].Title, m.order)
	} else {
		copy(m.data.Rows, m.input)
	}

	m.table.SetColumns(m.tableColumns())
	m.table.SetRows(m.tableRows())
	return nil
}

// tableColumns sizes each column to its widest cell and marks the sort
// column with an arrow.
func (m *Model) tableColumns() []table.Column {
	cols := make([]table.Column, 0, len(m.visible))
	for i, c := range m.visible {
		title := c.Title
		if i == m.sortIdx {
			if m.order == comparator.Descending {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}

		width := lipgloss.Width(title)
		for _, cell := range m.data.Column(c.Key) {
			if w := lipgloss.Width(c.Transform(cell)); w > width {
				width = w
			}
		}
		cols = append(cols, table.Column{Title: title, Width: min(width, maxColumnWidth)})
	}
	return cols
}

func (m *Model) tableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.data.Rows))
	for _, row := range m.data.Rows {
		cells := make(table.Row, 0, len(m.visible))
		for i := range m.visible {
			cells = append(cells, strings.ReplaceAll(m.visible[i].Transform(row[m.visible[i].Key]), "\n", " "))
		}
		rows = append(rows, cells)
	}
	return rows
}

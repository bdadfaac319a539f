// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/tblsort/internal/columns"
	"github.com/tfctl/tblsort/internal/comparator"
	"github.com/tfctl/tblsort/internal/dataset"
)

func newModel(t *testing.T, initial string) Model {
	t.Helper()
	data := &dataset.Table{
		Columns: []string{"Notes", "Team", "Points"},
		Rows: []dataset.Row{
			{"Notes": "x", "Team": "Team 11", "Points": "2"},
			{"Notes": "y", "Team": "Team 2", "Points": "-"},
			{"Notes": "z", "Team": "Team 1", "Points": "7"},
		},
	}
	bindings := columns.Bindings{
		"Team":   comparator.SortTeamName,
		"Points": comparator.SortMCQWeight,
	}
	m, err := New(data, columns.All(data.Columns), bindings, initial, 10)
	require.NoError(t, err)
	return m
}

func press(m Model, key tea.KeyMsg) Model {
	next, _ := m.Update(key)
	return next.(Model)
}

var (
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	flip  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}
	reset = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")}
)

func teams(m Model) []string {
	var out []string
	for _, r := range m.Rows() {
		out = append(out, r["Team"])
	}
	return out
}

func TestInitialSort(t *testing.T) {
	m := newModel(t, "-Team")
	key, order := m.SortKey()
	assert.Equal(t, "Team", key)
	assert.Equal(t, comparator.Descending, order)
	assert.Equal(t, []string{"Team 11", "Team 2", "Team 1"}, teams(m))
}

func TestStepSkipsUnboundColumns(t *testing.T) {
	m := newModel(t, "")
	assert.Equal(t, []string{"Team 11", "Team 2", "Team 1"}, teams(m))

	// Notes has no binding, so the first step lands on Team.
	m = press(m, right)
	key, order := m.SortKey()
	assert.Equal(t, "Team", key)
	assert.Equal(t, comparator.Ascending, order)
	assert.Equal(t, []string{"Team 1", "Team 2", "Team 11"}, teams(m))

	m = press(m, right)
	key, _ = m.SortKey()
	assert.Equal(t, "Points", key)
	assert.Equal(t, []string{"Team 11", "Team 1", "Team 2"}, teams(m))

	// Wraps past Notes back to Team.
	m = press(m, right)
	key, _ = m.SortKey()
	assert.Equal(t, "Team", key)

	m = press(m, left)
	key, _ = m.SortKey()
	assert.Equal(t, "Points", key)
}

func TestFlipKeepsInvalidLast(t *testing.T) {
	m := newModel(t, "Points")
	assert.Equal(t, []string{"Team 11", "Team 1", "Team 2"}, teams(m))

	m = press(m, flip)
	_, order := m.SortKey()
	assert.Equal(t, comparator.Descending, order)
	assert.Equal(t, []string{"Team 1", "Team 11", "Team 2"}, teams(m))
	assert.Contains(t, m.View(), "Points ▼")
}

func TestResetRestoresInputOrder(t *testing.T) {
	m := newModel(t, "Team")
	m = press(m, reset)
	key, _ := m.SortKey()
	assert.Equal(t, "", key)
	assert.Equal(t, []string{"Team 11", "Team 2", "Team 1"}, teams(m))
}

func TestQuit(t *testing.T) {
	m := newModel(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestNewErrors(t *testing.T) {
	data := &dataset.Table{Columns: []string{"Team"}}
	_, err := New(data, columns.All(data.Columns), columns.Bindings{}, "Other", 5)
	assert.Error(t, err)

	_, err = New(data, columns.All(data.Columns), columns.Bindings{}, "Team", 5)
	assert.ErrorIs(t, err, columns.ErrUnbound)
}

func TestStepLeftFromInputOrder(t *testing.T) {
	m := newModel(t, "")
	m = press(m, left)
	key, _ := m.SortKey()
	assert.Equal(t, "Points", key)
}

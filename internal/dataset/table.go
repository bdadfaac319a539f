// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dataset

// Row maps a column key to the cell as it is displayed.
type Row map[string]string

// Table is an ordered set of column keys and the rows that carry them. A row
// may lack a key, which reads as an empty cell.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether key is one of t's columns.
func (t *Table) HasColumn(key string) bool {
	for _, c := range t.Columns {
		if c == key {
			return true
		}
	}
	return false
}

// Column returns every cell of key, in row order.
func (t *Table) Column(key string) []string {
	cells := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = row[key]
	}
	return cells
}

// addColumn appends key once.
func (t *Table) addColumn(key string) {
	if !t.HasColumn(key) {
		t.Columns = append(t.Columns, key)
	}
}

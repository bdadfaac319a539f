// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsort/internal/columns"
	"github.com/tfctl/tblsort/internal/comparator"
	"github.com/tfctl/tblsort/internal/dataset"
	"github.com/tfctl/tblsort/internal/output"
)

// sortByTable lists every SortBy with the name of its strategy.
func sortByTable() *dataset.Table {
	t := &dataset.Table{Columns: []string{"sort_by", "strategy"}}
	for _, c := range comparator.Columns() {
		kind, _ := comparator.KindOf(c)
		t.Rows = append(t.Rows, dataset.Row{
			"sort_by":  string(c),
			"strategy": kind.String(),
		})
	}
	return t
}

func columnsCommandAction(ctx context.Context, cmd *cli.Command) error {
	t := sortByTable()
	return output.Render(t, columns.All(t.Columns), OutputOptions(cmd), cmd.Root().Writer)
}

func columnsCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "columns",
		Usage:     "list the sortable columns and their strategies",
		UsageText: "tblsort columns [options]",
		Flags:     NewOutputFlags("columns"),
		Action:    columnsCommandAction,
	}
}

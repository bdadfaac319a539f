// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsort/internal/output"
)

func sortCommandAction(ctx context.Context, cmd *cli.Command) error {
	l, err := LoadTable(ctx, cmd)
	if err != nil {
		return err
	}

	if err := output.SortTable(l.Table, cmd.String("sort"), l.Bindings); err != nil {
		return err
	}

	return output.Render(l.Table, l.Columns, OutputOptions(cmd), cmd.Root().Writer)
}

func sortCommandBuilder() *cli.Command {
	return (&TableCommandBuilder{
		Name:      "sort",
		Usage:     "sort a table and print it",
		UsageText: "tblsort sort [SOURCE] [options]",
		Flags:     NewOutputFlags("sort"),
		Action:    sortCommandAction,
	}).Build()
}

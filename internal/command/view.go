// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/tblsort/internal/tui"
)

const defaultViewHeight = 20

// ErrViewStdin is returned when view is asked to read its table from stdin,
// which the interactive table needs for key presses.
var ErrViewStdin = errors.New("view needs a file or s3:// source, not stdin")

func viewCommandAction(ctx context.Context, cmd *cli.Command) error {
	if src := cmd.Args().First(); src == "" || src == "-" {
		return ErrViewStdin
	}

	l, err := LoadTable(ctx, cmd)
	if err != nil {
		return err
	}

	m, err := tui.New(l.Table, l.Columns, l.Bindings, cmd.String("sort"), viewHeight(cmd.Int("height")))
	if err != nil {
		return err
	}
	return tui.Run(m)
}

// viewHeight returns height when set, else fits the terminal leaving room for
// the header and status lines.
func viewHeight(height int) int {
	if height > 0 {
		return height
	}
	if _, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && rows > 4 {
		return rows - 4
	}
	return defaultViewHeight
}

func viewCommandBuilder() *cli.Command {
	return (&TableCommandBuilder{
		Name:      "view",
		Usage:     "browse a table and re-sort it interactively",
		UsageText: "tblsort view SOURCE [options]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "height",
				Usage: "visible rows, fits the terminal when 0",
			},
		},
		Action: viewCommandAction,
	}).Build()
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsort/internal/comparator"
	"github.com/tfctl/tblsort/internal/log"
)

func compareCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("compare takes exactly two values, got %d", cmd.Args().Len())
	}

	column, err := comparator.ParseSortBy(cmd.String("by"))
	if err != nil {
		return err
	}
	order, err := comparator.ParseSortOrder(cmd.String("order"))
	if err != nil {
		return err
	}

	a, b := cmd.Args().Get(0), cmd.Args().Get(1)
	result, err := comparator.Compare(column, order, a, b)
	if err != nil {
		return err
	}
	log.Debugf("compare: by=%s, order=%s, a=%q, b=%q, result=%d", column, order, a, b, result)

	fmt.Fprintln(cmd.Root().Writer, result)
	return nil
}

func compareCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "compare two cell values the way a column sorts them",
		UsageText: "tblsort compare --by SORT_BY [--order asc|desc] A B",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "by",
				Usage:    "SortBy column that selects the strategy",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "asc or desc",
				Value: "asc",
				Validator: func(value string) error {
					return FlagValidators(value, OrderValidator)
				},
			},
		},
		Action: compareCommandAction,
	}
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"
)

// TableCommandBuilder constructs a cli.Command for the subcommands that load
// a table (sort, view) using a consistent pattern. The builder appends the
// global flags and wires the validator.
type TableCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
}

// Build returns a configured cli.Command from the builder.
func (tcb *TableCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      tcb.Name,
		Usage:     tcb.Usage,
		UsageText: tcb.UsageText,
		Flags:     append(tcb.Flags, NewGlobalFlags(tcb.Name)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: tcb.Action,
	}
}

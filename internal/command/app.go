// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsort/internal/config"
	"github.com/tfctl/tblsort/internal/log"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the tblsort
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	config.Config.Namespace = ns
	if _, err := config.Load(); err != nil {
		log.Debugf("no config loaded: err=%v", err)
	}

	app := &cli.Command{
		Name:  "tblsort",
		Usage: "Sort, filter and compare table rows",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "tblsort version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		sortCommandBuilder(),
		viewCommandBuilder(),
		compareCommandBuilder(),
		columnsCommandBuilder(),
		completionCommandBuilder(),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"slices"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsort/internal/config"
)

// NewGlobalFlags returns the flags shared by every command that loads a table.
// ns is the subcommand and namespaces config file lookups, so sort.output wins
// over output.
func NewGlobalFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "by",
			Usage: "bind a column to a sort strategy, as key=SORT_BY",
		},
		&cli.StringFlag{
			Name:    "columns",
			Aliases: []string{"c"},
			Usage:   "comma-separated list of columns as key[:title[:transform]]",
			Sources: configChain(ns, "columns"),
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to rows",
			Sources: configChain(ns, "filter"),
		},
		&cli.StringFlag{
			Name:    "format",
			Usage:   "input format, detected from the source when empty",
			Sources: configChain(ns, "format"),
			Validator: func(value string) error {
				return FlagValidators(value, FormatValidator)
			},
		},
		&cli.StringFlag{
			Name:    "parent",
			Usage:   "path to the row array in JSON input",
			Sources: configChain(ns, "parent"),
		},
		&cli.StringFlag{
			Name:    "sheet",
			Usage:   "spreadsheet tab to read",
			Sources: configChain(ns, "sheet"),
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "column to sort by, prefixed with - for descending",
			Sources: configChain(ns, "sort"),
			Validator: func(value string) error {
				return FlagValidators(value, SortValidator)
			},
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "S3 endpoint override",
			Sources: configChain(ns, "s3-endpoint", "TBLSORT_S3_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:    "s3-profile",
			Usage:   "AWS profile for s3:// sources",
			Sources: configChain(ns, "s3-profile", "AWS_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Usage:   "AWS region for s3:// sources",
			Sources: configChain(ns, "s3-region", "AWS_REGION"),
		},
	}

	return
}

// NewOutputFlags returns the flags that shape rendered output.
func NewOutputFlags(ns string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Usage:   "enable colored text output",
			Value:   false,
			Sources: configChain(ns, "color"),
		},
		&cli.BoolFlag{
			Name:    "count",
			Usage:   "show the row count with text output",
			Value:   false,
			Sources: configChain(ns, "count"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Sources: configChain(ns, "output"),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:    "padding",
			Usage:   "spaces between text columns",
			Value:   2,
			Sources: configChain(ns, "padding"),
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
			Sources: configChain(ns, "titles"),
		},
	}
}

// commandNames are config namespaces, so a flag of the same name is only read
// from its namespaced key.
var commandNames = []string{"sort", "view", "compare", "columns", "completion"}

// configChain builds a value source chain from the given environment
// variables followed by the namespaced and global keys of the config file.
func configChain(ns string, name string, envs ...string) cli.ValueSourceChain {
	var chain []cli.ValueSource
	for _, e := range envs {
		chain = append(chain, cli.EnvVar(e))
	}

	if path := config.Config.Source; path != "" {
		if ns != "" {
			chain = append(chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
		}
		if !slices.Contains(commandNames, name) {
			chain = append(chain, yaml.YAML(name, altsrc.StringSourcer(path)))
		}
	}

	return cli.NewValueSourceChain(chain...)
}

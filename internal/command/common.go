// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsort/internal/columns"
	"github.com/tfctl/tblsort/internal/config"
	"github.com/tfctl/tblsort/internal/dataset"
	"github.com/tfctl/tblsort/internal/filters"
	"github.com/tfctl/tblsort/internal/log"
	"github.com/tfctl/tblsort/internal/output"
)

// Loaded is a filtered table plus what is needed to sort and show it.
type Loaded struct {
	Table    *dataset.Table
	Columns  columns.List
	Bindings columns.Bindings
}

// LoadTable reads the source named by the first positional argument (stdin
// when absent), resolves columns and bindings, and applies --filter.
func LoadTable(ctx context.Context, cmd *cli.Command) (*Loaded, error) {
	source := cmd.Args().First()
	log.Debugf("loading table: source=%q", source)

	t, err := dataset.Load(ctx, source, InputOptions(cmd))
	if err != nil {
		return nil, err
	}

	bindings, err := BuildBindings(cmd)
	if err != nil {
		return nil, err
	}

	cols, err := columns.Parse(cmd.String("columns"), t.Columns)
	if err != nil {
		return nil, fmt.Errorf("invalid --columns: %w", err)
	}

	t, err = filters.FilterTable(t, cmd.String("filter"), bindings)
	if err != nil {
		return nil, err
	}

	return &Loaded{Table: t, Columns: cols, Bindings: bindings}, nil
}

// InputOptions maps the input flags onto dataset.Options.
func InputOptions(cmd *cli.Command) dataset.Options {
	return dataset.Options{
		Format: cmd.String("format"),
		Parent: cmd.String("parent"),
		Sheet:  cmd.String("sheet"),
		S3Options: dataset.S3Options{
			Profile:  cmd.String("s3-profile"),
			Region:   cmd.String("s3-region"),
			Endpoint: cmd.String("s3-endpoint"),
		},
	}
}

// BuildBindings merges --by with the bindings map of the config file.
func BuildBindings(cmd *cli.Command) (columns.Bindings, error) {
	cfg, err := config.GetStringMap("bindings")
	if err != nil {
		log.Tracef("no configured bindings: err=%v", err)
		cfg = nil
	}
	return columns.NewBindings(cmd.StringSlice("by"), cfg)
}

// OutputOptions maps the output flags onto output.Options.
func OutputOptions(cmd *cli.Command) output.Options {
	return output.Options{
		Format:  cmd.String("output"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Padding: cmd.Int("padding"),
		Count:   cmd.Bool("count"),
	}
}

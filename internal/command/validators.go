// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsort/internal/columns"
	"github.com/tfctl/tblsort/internal/comparator"
	"github.com/tfctl/tblsort/internal/dataset"
	"github.com/tfctl/tblsort/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks the flags whose validity depends on more than
// one value. --by bindings are parsed here so a typo fails before any input
// is read.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if _, err := columns.NewBindings(c.StringSlice("by"), nil); err != nil {
		return fmt.Errorf("invalid --by: %w", err)
	}
	return nil
}

func OutputValidator(value any) error {
	return oneOf(value, output.Formats)
}

func FormatValidator(value any) error {
	if value == "" {
		return nil
	}
	return oneOf(value, dataset.Formats)
}

func SortValidator(value any) error {
	s, _ := value.(string)
	_, _, err := output.ParseSortSpec(s)
	return err
}

func OrderValidator(value any) error {
	s, _ := value.(string)
	_, err := comparator.ParseSortOrder(s)
	return err
}

func oneOf(value any, valid []string) error {
	s, _ := value.(string)
	if !slices.Contains(valid, s) {
		return fmt.Errorf("must be one of %v", valid)
	}
	return nil
}

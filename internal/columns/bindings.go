// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package columns

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tfctl/tblsort/internal/comparator"
)

// ErrUnbound is returned when a data column cannot be tied to a SortBy.
var ErrUnbound = errors.New("column has no sort binding")

// Bindings ties data column keys to SortBy values.
type Bindings map[string]comparator.SortBy

// NewBindings merges bindings from the config file with key=SORT_BY pairs
// from flags. Flags win. Any SortBy that is not recognized is an error.
func NewBindings(flags []string, cfg map[string]string) (Bindings, error) {
	b := Bindings{}
	for key, value := range cfg {
		sortBy, err := comparator.ParseSortBy(value)
		if err != nil {
			return nil, fmt.Errorf("config bindings.%s: %w", key, err)
		}
		b[key] = sortBy
	}

	for _, pair := range flags {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid binding %q: want column=SORT_BY", pair)
		}
		sortBy, err := comparator.ParseSortBy(value)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", pair, err)
		}
		b[key] = sortBy
	}
	return b, nil
}

// Resolve returns the SortBy for a data column. Explicit bindings come first;
// failing that, a column whose key names a SortBy (e.g. "section_name") sorts
// as that SortBy.
func (b Bindings) Resolve(key string) (comparator.SortBy, error) {
	if sortBy, ok := b[key]; ok {
		return sortBy, nil
	}
	if sortBy, err := comparator.ParseSortBy(key); err == nil {
		return sortBy, nil
	}
	return "", fmt.Errorf("%w: %q (bind it with --by %s=SORT_BY)", ErrUnbound, key, key)
}

// Strategy resolves key all the way to its comparison strategy.
func (b Bindings) Strategy(key string) (comparator.Strategy, error) {
	sortBy, err := b.Resolve(key)
	if err != nil {
		return nil, err
	}
	return comparator.StrategyFor(sortBy)
}

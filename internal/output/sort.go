// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tfctl/tblsort/internal/columns"
	"github.com/tfctl/tblsort/internal/comparator"
	"github.com/tfctl/tblsort/internal/dataset"
	"github.com/tfctl/tblsort/internal/log"
)

// ErrMultiColumn is returned for a sort spec naming more than one column.
var ErrMultiColumn = errors.New("only one sort column is supported")

// SortSpec is a parsed --sort value.
type SortSpec struct {
	Key   string
	Order comparator.SortOrder
}

// ParseSortSpec reads "key", "+key" or "-key". The second return is false
// when spec is empty, meaning keep input order.
func ParseSortSpec(spec string) (SortSpec, bool, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return SortSpec{}, false, nil
	}
	if strings.Contains(spec, ",") {
		return SortSpec{}, false, fmt.Errorf("%w: %q", ErrMultiColumn, spec)
	}

	s := SortSpec{Key: spec, Order: comparator.Ascending}
	switch {
	case strings.HasPrefix(spec, "-"):
		s.Key, s.Order = spec[1:], comparator.Descending
	case strings.HasPrefix(spec, "+"):
		s.Key = spec[1:]
	}
	if s.Key == "" {
		return SortSpec{}, false, fmt.Errorf("invalid sort spec %q", spec)
	}
	return s, true, nil
}

// SortTable orders t's rows in place by the single column named in spec.
func SortTable(t *dataset.Table, spec string, bindings columns.Bindings) error {
	s, ok, err := ParseSortSpec(spec)
	if err != nil || !ok {
		return err
	}
	if !t.HasColumn(s.Key) {
		return fmt.Errorf("sort column %q not in table", s.Key)
	}

	strategy, err := bindings.Strategy(s.Key)
	if err != nil {
		return err
	}

	SortRows(t.Rows, s.Key, strategy, s.Order)
	log.Debugf("sorted: key=%s, order=%s, rows=%d", s.Key, s.Order, len(t.Rows))
	return nil
}

// SortRows is a stable sort of rows on key. Rows the strategy calls equal keep
// their input order.
func SortRows(rows []dataset.Row, key string, strategy comparator.Strategy, order comparator.SortOrder) {
	sort.SliceStable(rows, func(i, j int) bool {
		return strategy(rows[i][key], rows[j][key], order) < 0
	})
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comparator

import (
	"fmt"
	"strings"
)

// SortOrder is the direction of a sort. Values other than Ascending and
// Descending mean "no preference" and make every strategy return 0.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("SortOrder(%d)", int(o))
	}
}

// Valid reports whether o is Ascending or Descending.
func (o SortOrder) Valid() bool {
	return o == Ascending || o == Descending
}

// Reverse returns the opposite direction. Invalid orders are returned as is.
func (o SortOrder) Reverse() SortOrder {
	switch o {
	case Ascending:
		return Descending
	case Descending:
		return Ascending
	default:
		return o
	}
}

// apply turns an ascending result into one for o.
func (o SortOrder) apply(result int) int {
	switch o {
	case Ascending:
		return result
	case Descending:
		return -result
	default:
		return 0
	}
}

// ParseSortOrder accepts asc, ascending, desc and descending in any case.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return SortOrder(-1), fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

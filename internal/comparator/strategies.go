// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comparator

import (
	"cmp"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/maruel/natural"
)

// Strategy compares two cells for a given order and returns -1, 0 or 1.
type Strategy func(a, b string, order SortOrder) int

// numberPrefix matches the leading decimal of a cell, the same way a browser
// parseFloat reads "50%" as 50 and "3.5 / 5" as 3.5.
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// CompareLexicographically orders by byte value, so "Team 2" sorts after
// "Team 11".
func CompareLexicographically(a, b string, order SortOrder) int {
	return order.apply(strings.Compare(a, b))
}

// CompareNaturally orders digit runs by their numeric value and everything
// else by byte value, so "Team 2" sorts before "Team 11".
func CompareNaturally(a, b string, order SortOrder) int {
	switch {
	case natural.Less(a, b):
		return order.apply(-1)
	case natural.Less(b, a):
		return order.apply(1)
	default:
		return 0
	}
}

// CompareNumbers orders cells by their decimal value. A cell that is not a
// number ("-", "NaN", blank) is greater than every number in both directions,
// and two such cells compare as 1.
func CompareNumbers(a, b string, order SortOrder) int {
	if !order.Valid() {
		return 0
	}

	x, okA := ParseNumber(a)
	y, okB := ParseNumber(b)
	switch {
	case !okA:
		return 1
	case !okB:
		return -1
	}

	return order.apply(cmp.Compare(x, y))
}

// CompareChronologically orders cells as dates, earlier first. A cell that is
// not a date is greater than every date in both directions, and two such cells
// compare as 1.
func CompareChronologically(a, b string, order SortOrder) int {
	if !order.Valid() {
		return 0
	}

	x, okA := ParseDate(a)
	y, okB := ParseDate(b)
	switch {
	case !okA:
		return 1
	case !okB:
		return -1
	}

	return order.apply(x.Compare(y))
}

// CompareRoles orders permission roles by rank, lowest first when ascending.
func CompareRoles(a, b string, order SortOrder) int {
	return order.apply(cmp.Compare(ParseRole(a), ParseRole(b)))
}

// compareNothing backs SortNone.
func compareNothing(_, _ string, _ SortOrder) int {
	return 0
}

// ParseNumber reads the leading decimal number of s. It reports false when s
// does not start with one.
func ParseNumber(s string) (float64, bool) {
	m := numberPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ParseDate reads s as a calendar date or timestamp in any of the common
// layouts. It reports false when s is not one.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

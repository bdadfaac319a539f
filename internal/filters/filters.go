// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tfctl/tblsort/internal/columns"
	"github.com/tfctl/tblsort/internal/comparator"
	"github.com/tfctl/tblsort/internal/dataset"
	"github.com/tfctl/tblsort/internal/log"
)

// filterRegex splits a filter expression into key, operator and target.
// Operators are one of = ~ ^ @ / < >, optionally prefixed with '!'. A bare key
// keeps rows where that cell is not empty. Examples: "Team", "Team=Team 2",
// "Points>10", "Email!@example.com".
var filterRegex = regexp.MustCompile(`^([^!=~^@/<>]*)(!?[=~^@/<>])?(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Malformed entries are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var filters []Filter

	if strings.TrimSpace(spec) == "" {
		return filters
	}

	// Allow an override for values that contain commas.
	delim := ","
	if d, ok := os.LookupEnv("TBLSORT_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		key := strings.TrimSpace(parts[1])
		if key == "" {
			log.Errorf("invalid filter: empty key in %s", filterSpec)
			continue
		}

		operand := parts[2]
		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: operand,
			Value:   parts[3],
		})
	}

	return filters
}

// FilterTable returns a copy of t holding only the rows that pass every filter
// in spec. Filters on columns the table does not have are reported on stderr
// and skipped. The ordering operators compare through the column's bound
// strategy, so "Points>10" is numeric when Points is bound to a numeric
// SortBy.
func FilterTable(t *dataset.Table, spec string, bindings columns.Bindings) (*dataset.Table, error) {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return t, nil
	}

	var active []compiled
	for _, f := range filters {
		if !t.HasColumn(f.Key) {
			msg := fmt.Sprintf("filter key not found: %s", f.Key)
			log.Errorf("%s", msg)
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
			continue
		}
		c, err := compile(f, bindings)
		if err != nil {
			return nil, err
		}
		active = append(active, c)
	}

	out := &dataset.Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if applyFilters(row, active) {
			out.Rows = append(out.Rows, row)
		}
	}
	log.Debugf("filtered: in=%d, out=%d", len(t.Rows), len(out.Rows))
	return out, nil
}

// compiled is a Filter with its regex and strategy resolved once.
type compiled struct {
	Filter
	re       *regexp.Regexp
	strategy comparator.Strategy
}

func compile(f Filter, bindings columns.Bindings) (compiled, error) {
	c := compiled{Filter: f}
	switch f.Operand {
	case "/":
		re, err := regexp.Compile(f.Value)
		if err != nil {
			return c, fmt.Errorf("invalid regex in filter %q: %w", f.Key, err)
		}
		c.re = re
	case "<", ">":
		strategy, err := bindings.Strategy(f.Key)
		if err != nil {
			log.Debugf("filter %s falls back to lexicographic: %v", f.Key, err)
			strategy = comparator.CompareLexicographically
		}
		c.strategy = strategy
	}
	return c, nil
}

// applyFilters returns true if row passes every filter.
func applyFilters(row dataset.Row, filters []compiled) bool {
	for _, f := range filters {
		if !check(row[f.Key], f) {
			return false
		}
	}
	return true
}

// check evaluates one filter against a cell.
func check(value string, f compiled) bool {
	var match bool
	switch f.Operand {
	case "":
		match = value != ""
	case "=":
		match = value == f.Value
	case "~":
		match = strings.EqualFold(value, f.Value)
	case "^":
		match = strings.HasPrefix(value, f.Value)
	case "@":
		match = strings.Contains(value, f.Value)
	case "/":
		match = f.re.MatchString(value)
	case "<":
		match = f.strategy(value, f.Value, comparator.Ascending) < 0
	case ">":
		match = f.strategy(value, f.Value, comparator.Ascending) > 0
	default:
		log.Errorf("unsupported filtering operand: %s", f.Operand)
		return false
	}
	return match != f.Negate
}

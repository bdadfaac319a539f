// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"tblsort", "sort"},
			expected: []string{"tblsort", "sort"},
		},
		{
			name:     "no duplicates",
			args:     []string{"tblsort", "sort", "--output", "text", "--titles"},
			expected: []string{"tblsort", "sort", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"tblsort", "sort", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"tblsort", "sort", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"tblsort", "sort", "--titles", "--count", "--titles"},
			expected: []string{"tblsort", "sort", "--count", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"tblsort", "sort", "--output=json", "--titles", "--output=text"},
			expected: []string{"tblsort", "sort", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"tblsort", "sort", "--output=json", "--output", "text"},
			expected: []string{"tblsort", "sort", "--output", "text"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"tblsort", "sort", "data.csv", "--output", "json", "--output", "text"},
			expected: []string{"tblsort", "sort", "data.csv", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"tblsort", "sort", "-o", "json", "-o", "text"},
			expected: []string{"tblsort", "sort", "-o", "text"},
		},
		{
			name:     "repeatable flag kept",
			args:     []string{"tblsort", "sort", "--by", "Team=TEAM_NAME", "--by", "Points=MCQ_WEIGHT"},
			expected: []string{"tblsort", "sort", "--by", "Team=TEAM_NAME", "--by", "Points=MCQ_WEIGHT"},
		},
		{
			name:     "args after double dash untouched",
			args:     []string{"tblsort", "compare", "--by", "MCQ_WEIGHT", "--", "-5", "-5"},
			expected: []string{"tblsort", "compare", "--by", "MCQ_WEIGHT", "--", "-5", "-5"},
		},
		{
			name:     "stdin dash is positional",
			args:     []string{"tblsort", "sort", "-", "--titles", "--titles"},
			expected: []string{"tblsort", "sort", "-", "--titles"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"tblsort", "sort", "--output", "a", "--output", "b", "--output", "c"},
			expected: []string{"tblsort", "sort", "--output", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	// Ensure non-duplicate flags maintain their relative order.
	args := []string{"tblsort", "sort", "--alpha", "--beta", "--gamma"}
	result := deduplicateFlags(args)
	expected := []string{"tblsort", "sort", "--alpha", "--beta", "--gamma"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Order not preserved: got %v, want %v", result, expected)
	}
}

func TestExpandSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		configKey string
		configVal []string
		expected  []string
	}{
		{
			name:      "empty config returns args unchanged",
			args:      []string{"tblsort", "sort", "--titles"},
			configKey: "sort.defaults",
			expected:  []string{"tblsort", "sort", "--titles"},
		},
		{
			name:      "defaults injected after command",
			args:      []string{"tblsort", "sort", "--titles"},
			configKey: "sort.defaults",
			configVal: []string{"--count"},
			expected:  []string{"tblsort", "sort", "--count", "--titles"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"tblsort", "sort", "--titles"},
			configKey: "sort.defaults",
			configVal: []string{"--output csv"},
			expected:  []string{"tblsort", "sort", "--output", "csv", "--titles"},
		},
		{
			name:      "named set replaces marker",
			args:      []string{"tblsort", "sort", "data.csv", "@wide", "--titles"},
			configKey: "sort.wide",
			configVal: []string{"--columns *", "--padding 4"},
			expected:  []string{"tblsort", "sort", "data.csv", "--columns", "*", "--padding", "4", "--titles"},
		},
		{
			name:      "unknown set only drops marker",
			args:      []string{"tblsort", "view", "data.csv", "@missing"},
			configKey: "view.missing",
			expected:  []string{"tblsort", "view", "data.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var asked string
			lookup := func(key string) []string {
				asked = key
				return tt.configVal
			}
			result := expandSet(tt.args, lookup)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expandSet() = %v, want %v", result, tt.expected)
			}
			if asked != tt.configKey {
				t.Errorf("expandSet() looked up %q, want %q", asked, tt.configKey)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	if got := handleNakedCommand([]string{"tblsort"}); !reflect.DeepEqual(got, []string{"tblsort", "--help"}) {
		t.Errorf("handleNakedCommand() = %v", got)
	}
	if got := handleNakedCommand([]string{"tblsort", "columns"}); !reflect.DeepEqual(got, []string{"tblsort", "columns"}) {
		t.Errorf("handleNakedCommand() = %v", got)
	}
}

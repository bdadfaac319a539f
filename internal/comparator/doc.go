// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package comparator orders table cells. Each SortBy column is bound to one of
// five strategies (lexicographic, natural, numeric, chronological and role
// ordinal) and Compare dispatches to it. All functions are pure and safe for
// concurrent use.
//
// Numbers and dates that cannot be parsed sort after every valid value in both
// directions. That rule is applied before the sort order is, so flipping the
// order never moves a placeholder such as "-" to the top of a table.
package comparator

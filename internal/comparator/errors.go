// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comparator

import "errors"

var (
	// ErrUnknownColumn is returned when a SortBy has no strategy bound to it.
	ErrUnknownColumn = errors.New("sort column not recognized")

	// ErrUnknownOrder is returned by ParseSortOrder.
	ErrUnknownOrder = errors.New("sort order not recognized")
)

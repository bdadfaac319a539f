// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package columns shapes table output from the --columns spec and resolves
// which SortBy each data column sorts as.
package columns

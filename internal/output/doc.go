// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output sorts tables through the comparator and emits them as text,
// JSON, YAML or CSV.
package output

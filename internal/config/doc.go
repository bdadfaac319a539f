// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the optional tblsort.yaml file and offers dotted-key
// getters. Lookups try "<namespace>.<key>" first so that a subcommand can
// override a global value.
package config

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package dataset loads a table of displayed cell strings from CSV, JSON, YAML
// or XLSX. Sources are local files, stdin ("-") or s3:// URLs.
package dataset

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws builds S3 clients (AWS SDK v2) for tables stored as S3 objects
// and parses s3:// source URLs.
package aws

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := map[string]log.Level{
		"trace":   log.DebugLevel,
		"debug":   log.DebugLevel,
		"info":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
		"garbage": log.ErrorLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, levelFor(name), name)
	}
}

func TestLineHandler(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry *log.Entry
		want  string
	}{
		{
			name:  "debug",
			entry: &log.Entry{Level: log.DebugLevel, Message: "loaded 3 rows", Timestamp: ts},
			want:  "2024-03-01 09:30:00 D loaded 3 rows\n",
		},
		{
			name:  "trace prefix",
			entry: &log.Entry{Level: log.DebugLevel, Message: "TRACE: cell", Timestamp: ts},
			want:  "2024-03-01 09:30:00 T cell\n",
		},
		{
			name: "error field",
			entry: &log.Entry{
				Level:     log.WarnLevel,
				Message:   "cache write",
				Timestamp: ts,
				Fields:    log.Fields{"error": errors.New("disk full")},
			},
			want: "2024-03-01 09:30:00 W cache write: disk full\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &LineHandler{Writer: &buf}
			require.NoError(t, h.HandleLog(tt.entry))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

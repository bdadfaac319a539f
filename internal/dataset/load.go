// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/tfctl/tblsort/internal/aws"
	"github.com/tfctl/tblsort/internal/log"
)

var (
	// ErrUnsupportedFormat is returned for a format name or extension that has
	// no decoder.
	ErrUnsupportedFormat = errors.New("unsupported table format")

	// ErrNoInput is returned when stdin is requested but is a terminal.
	ErrNoInput = errors.New("no input: stdin is a terminal")
)

// Formats lists the accepted values of Options.Format.
var Formats = []string{"csv", "json", "yaml", "xlsx"}

// Options controls how a source is read and decoded.
type Options struct {
	// Format overrides detection from the file extension.
	Format string
	// Parent is a gjson path to the row array inside a JSON document.
	Parent string
	// Sheet names the spreadsheet tab; the first one is used when empty.
	Sheet string
	// S3 is used for s3:// sources. When nil a client is built from the
	// default AWS config chain.
	S3 ObjectGetter
	// S3Options are passed along when the S3 client is built.
	S3Options S3Options

	// stdin is swapped in tests.
	stdin *os.File
}

// Load reads source and decodes it into a Table.
func Load(ctx context.Context, source string, opts Options) (*Table, error) {
	data, name, err := read(ctx, source, opts)
	if err != nil {
		return nil, err
	}
	log.Debugf("read source: name=%s, bytes=%d", name, len(data))

	format, err := detectFormat(opts.Format, name, data)
	if err != nil {
		return nil, err
	}
	log.Debugf("format detected: format=%s", format)

	var t *Table
	switch format {
	case "csv":
		t, err = decodeCSV(data)
	case "json":
		t, err = decodeJSON(data, opts.Parent)
	case "yaml":
		t, err = decodeYAML(data)
	case "xlsx":
		t, err = decodeXLSX(data, opts.Sheet)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	log.Debugf("table loaded: columns=%v, rows=%d", t.Columns, len(t.Rows))
	return t, nil
}

// read returns the raw bytes of source and a name used for format detection.
func read(ctx context.Context, source string, opts Options) ([]byte, string, error) {
	switch {
	case source == "" || source == "-":
		in := opts.stdin
		if in == nil {
			in = os.Stdin
		}
		if term.IsTerminal(int(in.Fd())) {
			return nil, "", ErrNoInput
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, "stdin", nil
	case aws.IsS3URL(source):
		data, err := fetchS3(ctx, source, opts)
		return data, source, err
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read table: %w", err)
		}
		return data, source, nil
	}
}

// detectFormat honors an explicit format, then the extension of name, then
// sniffs the content: JSON starts with [ or {, spreadsheets are zip files and
// everything else is read as CSV.
func detectFormat(format, name string, data []byte) (string, error) {
	if format != "" {
		return normalizeFormat(format)
	}

	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), "."); ext != "" {
		if f, err := normalizeFormat(ext); err == nil {
			return f, nil
		}
	}

	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return "xlsx", nil
	case bytes.HasPrefix(trimmed, []byte("[")), bytes.HasPrefix(trimmed, []byte("{")):
		return "json", nil
	default:
		return "csv", nil
	}
}

func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "csv":
		return "csv", nil
	case "json":
		return "json", nil
	case "yaml", "yml":
		return "yaml", nil
	case "xlsx":
		return "xlsx", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

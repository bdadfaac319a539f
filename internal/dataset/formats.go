// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// decodeCSV reads a header row and then one row per record. Short records
// leave the trailing cells empty.
func decodeCSV(data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	t := &Table{}
	for _, h := range header {
		t.addColumn(strings.TrimSpace(h))
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		t.Rows = append(t.Rows, rowFromCells(header, record))
	}
	return t, nil
}

// decodeJSON reads an array of objects, optionally found under the gjson
// path parent. Column order follows first appearance.
func decodeJSON(data []byte, parent string) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON document")
	}

	doc := gjson.ParseBytes(data)
	if parent != "" {
		doc = doc.Get(parent)
		if !doc.Exists() {
			return nil, fmt.Errorf("path %q not found in JSON document", parent)
		}
	}
	if !doc.IsArray() {
		return nil, errors.New("expected a JSON array of objects")
	}

	t := &Table{}
	for i, item := range doc.Array() {
		if !item.IsObject() {
			return nil, fmt.Errorf("JSON row %d is not an object", i)
		}
		row := Row{}
		item.ForEach(func(k, v gjson.Result) bool {
			key := k.String()
			t.addColumn(key)
			row[key] = jsonCell(v)
			return true
		})
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// jsonCell renders a JSON value the way a table shows it. Numbers keep the
// text they were written with.
func jsonCell(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	default:
		return v.String()
	}
}

// decodeYAML reads a sequence of mappings. A yaml.Node is used instead of a
// map so that column order follows the document.
func decodeYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML document: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Table{}, nil
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, errors.New("expected a YAML sequence of mappings")
	}

	t := &Table{}
	for i, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("YAML row %d is not a mapping", i)
		}
		row := Row{}
		for j := 0; j+1 < len(item.Content); j += 2 {
			key := item.Content[j].Value
			t.addColumn(key)
			cell, err := yamlCell(item.Content[j+1])
			if err != nil {
				return nil, fmt.Errorf("YAML row %d, %s: %w", i, key, err)
			}
			row[key] = cell
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func yamlCell(n *yaml.Node) (string, error) {
	if n.Kind == yaml.ScalarNode {
		if n.Tag == "!!null" {
			return "", nil
		}
		return n.Value, nil
	}

	out, err := yaml.Marshal(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// decodeXLSX reads sheet (the first one when empty). The first row is the
// header.
func decodeXLSX(data []byte, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return &Table{}, nil
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	header := records[0]
	t := &Table{}
	for _, h := range header {
		t.addColumn(strings.TrimSpace(h))
	}
	for _, record := range records[1:] {
		t.Rows = append(t.Rows, rowFromCells(header, record))
	}
	return t, nil
}

func rowFromCells(header, cells []string) Row {
	row := make(Row, len(header))
	for i, h := range header {
		if i < len(cells) {
			row[strings.TrimSpace(h)] = cells[i]
		} else {
			row[strings.TrimSpace(h)] = ""
		}
	}
	return row
}

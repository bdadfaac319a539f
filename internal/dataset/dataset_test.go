// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package dataset

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "teams.csv", "Section,Team,Points\nS1,Team 2,30.5\nS2,Team 11\n")

	tbl, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Section", "Team", "Points"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, Row{"Section": "S1", "Team": "Team 2", "Points": "30.5"}, tbl.Rows[0])
	assert.Equal(t, "", tbl.Rows[1]["Points"])
	assert.Equal(t, []string{"Team 2", "Team 11"}, tbl.Column("Team"))
}

func TestLoadCSVEmpty(t *testing.T) {
	tbl, err := Load(context.Background(), writeFile(t, "empty.csv", ""), Options{})
	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
	assert.Empty(t, tbl.Rows)
}

func TestLoadJSON(t *testing.T) {
	doc := `{"data": [
		{"name": "Alice", "score": 1.50, "active": true, "note": null},
		{"name": "Bob", "score": 7, "tags": ["a", "b"]}
	]}`
	path := writeFile(t, "rows.json", doc)

	tbl, err := Load(context.Background(), path, Options{Parent: "data"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "score", "active", "note", "tags"}, tbl.Columns)
	assert.Equal(t, Row{"name": "Alice", "score": "1.50", "active": "true", "note": ""}, tbl.Rows[0])
	assert.Equal(t, `["a", "b"]`, tbl.Rows[1]["tags"])
	assert.Equal(t, "", tbl.Rows[1]["active"])
}

func TestLoadJSONErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, writeFile(t, "bad.json", `[{"a":`), Options{})
	assert.Error(t, err)

	_, err = Load(ctx, writeFile(t, "obj.json", `{"a": 1}`), Options{})
	assert.ErrorContains(t, err, "array")

	_, err = Load(ctx, writeFile(t, "scalar.json", `[1, 2]`), Options{})
	assert.ErrorContains(t, err, "row 0")

	_, err = Load(ctx, writeFile(t, "p.json", `{"x": []}`), Options{Parent: "data"})
	assert.ErrorContains(t, err, "not found")
}

func TestLoadYAML(t *testing.T) {
	doc := "- role: Co-owner\n  name: Zed\n- name: Amy\n  role: Tutor\n  courses: [cs101, cs102]\n  email: ~\n"
	path := writeFile(t, "staff.yml", doc)

	tbl, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"role", "name", "courses", "email"}, tbl.Columns)
	assert.Equal(t, "Co-owner", tbl.Rows[0]["role"])
	assert.Equal(t, "[cs101, cs102]", tbl.Rows[1]["courses"])
	assert.Equal(t, "", tbl.Rows[1]["email"])

	_, err = Load(context.Background(), writeFile(t, "map.yaml", "a: 1\n"), Options{})
	assert.ErrorContains(t, err, "sequence")
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Course", "Created"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"CS101", "2020-01-01"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"CS102"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	path := filepath.Join(t.TempDir(), "courses.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	tbl, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Course", "Created"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, Row{"Course": "CS101", "Created": "2020-01-01"}, tbl.Rows[0])
	assert.Equal(t, Row{"Course": "CS102", "Created": ""}, tbl.Rows[1])

	_, err = Load(context.Background(), path, Options{Sheet: "Missing"})
	assert.Error(t, err)
}

func TestLoadStdin(t *testing.T) {
	path := writeFile(t, "in", "[{\"a\": \"1\"}]")
	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	tbl, err := Load(context.Background(), "-", Options{stdin: in})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tbl.Columns)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		file    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "explicit wins", format: "CSV", file: "x.json", want: "csv"},
		{name: "yml alias", format: "yml", want: "yaml"},
		{name: "explicit unknown", format: "parquet", wantErr: true},
		{name: "extension", file: "a/b/c.XLSX", want: "xlsx"},
		{name: "unknown extension sniffs json", file: "data.txt", data: "  [{}]", want: "json"},
		{name: "sniff zip", file: "stdin", data: "PK\x03\x04...", want: "xlsx"},
		{name: "sniff csv", file: "stdin", data: "a,b\n1,2\n", want: "csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectFormat(tt.format, tt.file, []byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// fakeS3 serves a single object and counts downloads.
type fakeS3 struct {
	etag string
	body string
	gets int
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3v2.HeadObjectInput, _ ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error) {
	return &s3v2.HeadObjectOutput{ETag: awsv2.String(f.etag)}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.gets++
	return &s3v2.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte(f.body)))}, nil
}

func TestLoadS3Cached(t *testing.T) {
	t.Setenv("TBLSORT_CACHE_DIR", t.TempDir())
	t.Setenv("TBLSORT_CACHE", "")

	fake := &fakeS3{etag: `"v1"`, body: "Name,Score\nAmy,3\n"}
	opts := Options{S3: fake}

	tbl, err := Load(context.Background(), "s3://grades/cs101/scores.csv", opts)
	require.NoError(t, err)
	assert.Equal(t, "Amy", tbl.Rows[0]["Name"])
	assert.Equal(t, 1, fake.gets)

	_, err = Load(context.Background(), "s3://grades/cs101/scores.csv", opts)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.gets, "unchanged ETag is served from cache")

	fake.etag = `"v2"`
	fake.body = "Name,Score\nBen,4\n"
	tbl, err = Load(context.Background(), "s3://grades/cs101/scores.csv", opts)
	require.NoError(t, err)
	assert.Equal(t, "Ben", tbl.Rows[0]["Name"])
	assert.Equal(t, 2, fake.gets)
}

func TestLoadS3BadURL(t *testing.T) {
	_, err := Load(context.Background(), "s3://bucket-only", Options{S3: &fakeS3{}})
	assert.Error(t, err)
}

func TestS3OptionsAWSOptions(t *testing.T) {
	assert.Empty(t, S3Options{}.awsOptions())
	assert.Len(t, S3Options{Profile: "p", Region: "r", Endpoint: "e"}.awsOptions(), 3)
}

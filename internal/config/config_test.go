// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points TBLSORT_CFG_FILE at a testdata file, resets the global
// Config and runs fn.
func withConfig(t *testing.T, testFile string, namespace string, fn func(t *testing.T)) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testFile))
	require.NoError(t, err)
	t.Setenv("TBLSORT_CFG_FILE", absPath)

	Config = Type{Namespace: namespace}
	t.Cleanup(func() { Config = Type{} })

	fn(t)
}

func TestLoad(t *testing.T) {
	withConfig(t, "full.yaml", "", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(cfg.Source))
		assert.Equal(t, "text", cfg.Data["output"])
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("TBLSORT_CFG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDirectory(t *testing.T) {
	t.Setenv("TBLSORT_CFG_FILE", t.TempDir())
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [unclosed"), 0o600))
	t.Setenv("TBLSORT_CFG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString(t *testing.T) {
	withConfig(t, "full.yaml", "", func(t *testing.T) {
		v, err := GetString("output")
		require.NoError(t, err)
		assert.Equal(t, "text", v)

		v, err = GetString("colors.title")
		require.NoError(t, err)
		assert.Equal(t, "#ff8800", v)

		v, err = GetString("colors.even", "#ffffff")
		require.NoError(t, err)
		assert.Equal(t, "#ffffff", v)

		_, err = GetString("colors.odd")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = GetString("padding")
		assert.Error(t, err)
	})
}

func TestNamespaceWins(t *testing.T) {
	withConfig(t, "full.yaml", "sort", func(t *testing.T) {
		v, err := GetString("output")
		require.NoError(t, err)
		assert.Equal(t, "json", v)

		// Falls back to the bare key.
		n, err := GetInt("padding")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestGetInt(t *testing.T) {
	withConfig(t, "full.yaml", "", func(t *testing.T) {
		n, err := GetInt("cache.clean")
		require.NoError(t, err)
		assert.Equal(t, 24, n)

		n, err = GetInt("cache.missing", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, n)

		_, err = GetInt("output")
		assert.Error(t, err)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "full.yaml", "sort", func(t *testing.T) {
		v, err := GetStringSlice("hidden")
		require.NoError(t, err)
		assert.Equal(t, []string{"email", "notes"}, v)

		v, err = GetStringSlice("nothing", []string{"x"})
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, v)

		_, err = GetStringSlice("output")
		assert.Error(t, err)
	})
}

func TestGetStringMap(t *testing.T) {
	withConfig(t, "full.yaml", "", func(t *testing.T) {
		m, err := GetStringMap("bindings")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"Section": "SECTION_NAME",
			"Name":    "RESPONDENT_NAME",
			"Points":  "CONSTSUM_OPTIONS_POINTS",
		}, m)

		_, err = GetStringMap("output")
		assert.Error(t, err)
	})
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nbexport/internal/export"
	"github.com/pdiddy/nbexport/internal/notebook"
	"github.com/pdiddy/nbexport/pkg/types"
)

func TestReportEarlyExit(t *testing.T) {
	cfg := types.ExportConfig{}.WithDefaults()
	boom := errors.New("interpreter crashed")

	tests := []struct {
		name    string
		err     error
		wantErr error
		wantOut string
	}{
		{"missing root", fmt.Errorf("%w: docs", notebook.ErrRootNotFound), nil, "source directory does not exist: docs"},
		{"not a directory", fmt.Errorf("%w: docs", notebook.ErrNotDirectory), nil, "docs is not a directory"},
		{"no notebooks", fmt.Errorf("%w in docs", export.ErrNoNotebooks), nil, "no .ipynb files found in docs"},
		{"other error propagates", boom, boom, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := reportEarlyExit(&out, cfg, "docs", tt.err)
			assert.Equal(t, tt.wantErr, err)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestFormatHistoryOutput(t *testing.T) {
	records := []types.ExportRecord{
		{Notebook: "/nb/b.ipynb", Status: types.ExportFailed, Diagnostic: "line one\nline two", ExportedAt: time.Now()},
		{Notebook: "/nb/a.ipynb", Status: types.ExportDone, Duration: 2 * time.Second, ExportedAt: time.Now()},
	}

	t.Run("table", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, formatHistoryOutput(&out, records, false))
		assert.Contains(t, out.String(), "/nb/a.ipynb")
		assert.Contains(t, out.String(), "line one line two")
		assert.Contains(t, out.String(), "2 attempts")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, formatHistoryOutput(&out, records, true))
		var got []types.ExportRecord
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, formatHistoryOutput(&out, nil, false))
		assert.Contains(t, out.String(), "No export attempts recorded.")
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short ascii unchanged", "boom", 10, "boom"},
		{"long ascii cut", "abcdefghij", 8, "abcde..."},
		{"multibyte cut on rune boundary", "导出失败：找不到文件", 6, "导出失..."},
		{"multibyte exactly at limit", "导出失败", 4, "导出失败"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

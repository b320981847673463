package ids_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idchunk/pkg/ids"
)

// 🧪 writeFile writes a test input file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// 🧪 testContext returns a context carrying a test logger.
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 TestLoadText tests plain text identifier files.
func TestLoadText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "one_per_line",
			content: "4059\n4239\n4900\n",
			want:    []string{"4059", "4239", "4900"},
		},
		{
			name:    "trims_and_skips_blank_lines",
			content: "  4059  \n\n\t4239\n   \n",
			want:    []string{"4059", "4239"},
		},
		{
			name:    "dedupes_preserving_first_seen_order",
			content: "b\na\nb\nc\na\n",
			want:    []string{"b", "a", "c"},
		},
		{
			name:    "no_trailing_newline",
			content: "4059\n4239",
			want:    []string{"4059", "4239"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "ids.txt", tt.content)
			got, err := ids.Load(testContext(t), path, ids.Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 🧪 TestLoadCSV tests CSV identifier files.
func TestLoadCSV(t *testing.T) {
	tests := []struct {
		name    string
		content string
		column  string
		want    []string
	}{
		{
			name:    "first_column_by_default",
			content: "id,name\n4059,alpha\n4239,beta\n",
			want:    []string{"4059", "4239"},
		},
		{
			name:    "named_column",
			content: "name,id\nalpha,4059\nbeta,4239\n",
			column:  "id",
			want:    []string{"4059", "4239"},
		},
		{
			name:    "unknown_column_falls_back_to_first",
			content: "id,name\n4059,alpha\n",
			column:  "nope",
			want:    []string{"4059"},
		},
		{
			name:    "skips_short_and_blank_rows",
			content: "a,id\nx,4059\ny\nz,\nw,4239\n",
			column:  "id",
			want:    []string{"4059", "4239"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "ids.csv", tt.content)
			got, err := ids.Load(testContext(t), path, ids.Options{CSVColumn: tt.column})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 🧪 TestLoadErrors tests the failure modes.
func TestLoadErrors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := ids.Load(testContext(t), filepath.Join(t.TempDir(), "nope.txt"), ids.Options{})
		require.Error(t, err)
	})

	t.Run("empty_after_filtering", func(t *testing.T) {
		path := writeFile(t, "ids.txt", "\n   \n\t\n")
		_, err := ids.Load(testContext(t), path, ids.Options{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ids.ErrEmptyInput)
	})

	t.Run("csv_with_only_header", func(t *testing.T) {
		path := writeFile(t, "ids.csv", "id,name\n")
		_, err := ids.Load(testContext(t), path, ids.Options{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ids.ErrEmptyInput)
	})
}

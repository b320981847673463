package status_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idchunk/pkg/chunk"
	"idchunk/pkg/mapper"
	"idchunk/pkg/status"
)

func init() {
	// Deterministic output regardless of the test terminal
	color.NoColor = true
}

// 🧪 TestSummary tests the totals block.
func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	r := status.NewReporter(&buf)

	r.Summary(3, 2, 1)

	out := buf.String()
	assert.Contains(t, out, "Total IDs provided: 3")
	assert.Contains(t, out, "Found folders:      2")
	assert.Contains(t, out, "Missing folders:    1")
}

// 🧪 TestMissingCap tests that at most 50 missing identifiers are shown.
func TestMissingCap(t *testing.T) {
	var buf bytes.Buffer
	r := status.NewReporter(&buf)

	ids := make([]string, 60)
	for i := range ids {
		ids[i] = fmt.Sprintf("id%02d", i)
	}
	r.Missing(ids)

	out := buf.String()
	assert.Contains(t, out, "Missing IDs (first 50 shown):")
	assert.Contains(t, out, "id49")
	assert.NotContains(t, out, "id50")
}

// 🧪 TestMissingEmpty tests that nothing is printed without missing IDs.
func TestMissingEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := status.NewReporter(&buf)

	r.Missing(nil)
	assert.Empty(t, buf.String())
}

// 🧪 TestMappingSampleCap tests the 20-item sample cap.
func TestMappingSampleCap(t *testing.T) {
	var buf bytes.Buffer
	r := status.NewReporter(&buf)

	items := make([]mapper.Mapping, 25)
	counts := make([]int, 25)
	for i := range items {
		items[i] = mapper.Mapping{ID: fmt.Sprintf("id%02d", i), Path: "/src"}
		counts[i] = i
	}
	r.MappingSample(items, counts)

	out := buf.String()
	assert.Contains(t, out, "Sample mapping + file counts (first 20):")
	assert.Contains(t, out, "id19")
	assert.NotContains(t, out, "id20")
	assert.Contains(t, out, "(files: 19)")
}

// 🧪 TestChunkSummary tests the per-chunk lines.
func TestChunkSummary(t *testing.T) {
	var buf bytes.Buffer
	r := status.NewReporter(&buf)

	items := []mapper.Mapping{
		{ID: "4059", Path: "/src/4059"},
		{ID: "4239", Path: "/src/4239"},
		{ID: "5000", Path: "/src/5000"},
	}
	chunks, err := chunk.Split(items, 2)
	require.NoError(t, err)

	r.ChunkSummary(chunks, 2)

	out := buf.String()
	assert.Contains(t, out, "Total chunks: 2 (chunk size: 2)")
	assert.Contains(t, out, "Chunk 1: 2 items (4059 ... 4239)")
	assert.Contains(t, out, "Chunk 2: 1 items (5000 ... 5000)")
}

// 🧪 TestFailureSummary tests the end-of-run totals.
func TestFailureSummary(t *testing.T) {
	t.Run("all_ok", func(t *testing.T) {
		var buf bytes.Buffer
		r := status.NewReporter(&buf)
		r.FailureSummary(0, 5)
		assert.Contains(t, buf.String(), "processed 5 folders")
	})

	t.Run("some_failed", func(t *testing.T) {
		var buf bytes.Buffer
		r := status.NewReporter(&buf)
		r.Failure("4059", assert.AnError)
		r.FailureSummary(1, 5)
		out := buf.String()
		assert.Contains(t, out, "4059")
		assert.Contains(t, out, "1 of 5 folders failed")
	})
}

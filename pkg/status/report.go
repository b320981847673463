// Package status renders the human-readable run report and per-item
// feedback for folder operations.
package status

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"idchunk/pkg/chunk"
	"idchunk/pkg/mapper"
)

// 🎨 Display configuration
const (
	entryIndent   = 2  // spaces to indent list entries
	idWidth       = 24 // base width for identifiers
	missingSample = 50 // missing identifiers shown at most
	mappingSample = 20 // sample mappings shown at most
)

// 📊 Reporter writes the run report to the console.
type Reporter struct {
	mu      sync.Mutex
	console io.Writer
}

// 🏭 NewReporter creates a reporter writing to console.
func NewReporter(console io.Writer) *Reporter {
	return &Reporter{console: console}
}

// 📝 Header prints the tool banner with a short message.
func (r *Reporter) Header(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("idchunk")
	fmt.Fprintf(r.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
}

// 📝 Summary prints the provided/found/missing totals.
func (r *Reporter) Summary(provided, found, missing int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "Total IDs provided: %d\n", provided)
	fmt.Fprintf(r.console, "Found folders:      %s\n", color.New(color.FgGreen).Sprintf("%d", found))
	fmt.Fprintf(r.console, "Missing folders:    %s\n", color.New(color.FgYellow).Sprintf("%d", missing))
}

// 📝 Missing prints up to missingSample missing identifiers.
func (r *Reporter) Missing(ids []string) {
	if len(ids) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	shown := ids
	if len(shown) > missingSample {
		shown = shown[:missingSample]
	}
	fmt.Fprintf(r.console, "Missing IDs (first %d shown):\n", len(shown))
	for _, id := range shown {
		fmt.Fprintf(r.console, "%*s%s %s\n", entryIndent, "",
			color.New(color.FgYellow).Sprint("-"), id)
	}
}

// 📝 MappingSample prints up to mappingSample found mappings with their
// file counts. counts runs parallel to items.
func (r *Reporter) MappingSample(items []mapper.Mapping, counts []int) {
	if len(items) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(items)
	if n > mappingSample {
		n = mappingSample
	}
	fmt.Fprintf(r.console, "\nSample mapping + file counts (first %d):\n", n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(r.console, "%*s%s %s %s %s\n", entryIndent, "",
			color.New(color.FgGreen).Sprint("✓"),
			fmt.Sprintf("%-*s", idWidth, items[i].ID),
			color.New(color.Faint).Sprint(items[i].Path),
			color.New(color.FgCyan).Sprintf("(files: %d)", counts[i]))
	}
}

// 📝 ChunkSummary prints one line per chunk with its bounds.
func (r *Reporter) ChunkSummary(chunks []chunk.Chunk, size int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.console, "\nTotal chunks: %d (chunk size: %d)\n", len(chunks), size)
	for _, c := range chunks {
		first := c.Items[0].ID
		last := c.Items[len(c.Items)-1].ID
		fmt.Fprintf(r.console, "%*s%s Chunk %d: %d items (%s ... %s)\n", entryIndent, "",
			color.New(color.FgMagenta).Sprint("◆"), c.Seq, len(c.Items), first, last)
	}
}

// 📝 SavedFile reports a written output file.
func (r *Reporter) SavedFile(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "💾 Saved %s\n", color.New(color.FgCyan).Sprint(path))
}

// 📝 Failure reports one failed folder operation.
func (r *Reporter) Failure(id string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "%*s%s %s: %v\n", entryIndent, "",
		color.New(color.FgRed).Sprint("✗"), id, err)
}

// 📝 FailureSummary reports the per-item failure total after a run.
func (r *Reporter) FailureSummary(failed, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if failed == 0 {
		fmt.Fprintf(r.console, "✅ %s\n", color.New(color.FgGreen).Sprintf("processed %d folders", total))
		return
	}
	fmt.Fprintf(r.console, "⚠️  %s\n", color.New(color.FgYellow).Sprintf("%d of %d folders failed", failed, total))
}

// 📝 Success prints a success message.
func (r *Reporter) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
}

// 📝 Warning prints a warning message.
func (r *Reporter) Warning(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
}

// 📝 Newline prints a blank line.
func (r *Reporter) Newline() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.console)
}

// Package ids loads identifier lists from delimited text files.
package ids

import (
	"bufio"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🚫 ErrEmptyInput is returned when a source file yields no identifiers
// after trimming and filtering.
var ErrEmptyInput = errors.New("no identifiers found in input")

// 🔧 Options configures identifier loading.
type Options struct {
	// CSVColumn selects a named column when the source is a CSV file.
	// Empty means the first column.
	CSVColumn string
}

// 📥 Load reads an identifier list from path. The format is determined by
// the file extension: .csv is parsed as CSV (header-aware), everything
// else as one identifier per line. Identifiers are trimmed, empty entries
// dropped, and duplicates removed preserving first-seen order.
func Load(ctx context.Context, path string, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading identifiers")

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening identifier file: %w", err)
	}
	defer f.Close()

	var ids []string
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		ids, err = readCSV(f, opts.CSVColumn)
	} else {
		ids, err = readLines(f)
	}
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", path, err)
	}

	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, errors.Errorf("%w: %s", ErrEmptyInput, path)
	}

	logger.Debug().Int("count", len(ids)).Msg("identifiers loaded")
	return ids, nil
}

// 📄 readLines parses one identifier per line.
func readLines(r io.Reader) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			ids = append(ids, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("scanning lines: %w", err)
	}
	return ids, nil
}

// 📊 readCSV parses identifiers from a CSV file. The first row is always
// treated as a header; column selects a named header field, falling back
// to the first field when the name is absent.
func readCSV(r io.Reader, column string) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := 0
	if column != "" {
		for i, name := range records[0] {
			if strings.TrimSpace(name) == column {
				idx = i
				break
			}
		}
	}

	var ids []string
	for _, row := range records[1:] {
		if idx >= len(row) {
			continue
		}
		if s := strings.TrimSpace(row[idx]); s != "" {
			ids = append(ids, s)
		}
	}
	return ids, nil
}

// 🧹 dedupe removes duplicates preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

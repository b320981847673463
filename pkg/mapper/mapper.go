// Package mapper resolves identifiers to same-named subfolders of a
// source directory and inspects their contents.
package mapper

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🚫 ErrNotADirectory is returned when the source path does not exist or
// is not a directory.
var ErrNotADirectory = errors.New("source is not a directory")

// 🗂️ Mapping associates one identifier with the folder it names.
type Mapping struct {
	ID   string // Identifier as read from the source list
	Path string // Absolute path of the matching folder
}

// 📊 Result holds the outcome of mapping an identifier list. Both slices
// preserve the order of the input list.
type Result struct {
	Found   []Mapping // Identifiers with an existing folder
	Missing []string  // Identifiers with no folder
}

// 🎯 Map checks, for every identifier, whether source/<id> exists and is a
// directory. The found and missing lists partition the input exactly.
func Map(ctx context.Context, source string, ids []string) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return nil, errors.Errorf("%w: %s", ErrNotADirectory, source)
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		return nil, errors.Errorf("resolving source path: %w", err)
	}

	res := &Result{}
	for _, id := range ids {
		candidate := filepath.Join(abs, id)
		info, err := os.Stat(candidate)
		if err != nil || !info.IsDir() {
			res.Missing = append(res.Missing, id)
			continue
		}
		res.Found = append(res.Found, Mapping{ID: id, Path: candidate})
	}

	logger.Debug().
		Str("source", abs).
		Int("provided", len(ids)).
		Int("found", len(res.Found)).
		Int("missing", len(res.Missing)).
		Msg("mapped identifiers to folders")

	return res, nil
}

// 🔍 IDs returns the identifiers of the found mappings in order.
func (r *Result) IDs() []string {
	out := make([]string, len(r.Found))
	for i, m := range r.Found {
		out[i] = m.ID
	}
	return out
}

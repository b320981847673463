package mapper

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔧 ListOptions configures folder content listing.
type ListOptions struct {
	// Recursive walks the full subtree; otherwise only direct children
	// that are files are listed.
	Recursive bool
	// IgnoreGlobs excludes files whose slash-separated relative path
	// matches any of the patterns.
	IgnoreGlobs []string
}

// 📋 ListFiles returns the sorted relative paths of the files under dir.
func ListFiles(ctx context.Context, dir string, opts ListOptions) ([]string, error) {
	var files []string

	if opts.Recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, errors.Errorf("walking %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", dir, err)
		}
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, e.Name())
			}
		}
	}

	if len(opts.IgnoreGlobs) > 0 {
		files = filterIgnored(files, opts.IgnoreGlobs)
	}

	sort.Strings(files)
	return files, nil
}

// 🔢 CountFiles returns the number of files under dir.
func CountFiles(ctx context.Context, dir string, opts ListOptions) (int, error) {
	files, err := ListFiles(ctx, dir, opts)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

// 🙈 filterIgnored drops paths matching any of the glob patterns. Invalid
// patterns never match.
func filterIgnored(files []string, globs []string) []string {
	out := files[:0]
	for _, f := range files {
		ignored := false
		for _, g := range globs {
			matched, err := doublestar.Match(g, f)
			if err != nil {
				continue
			}
			if matched {
				ignored = true
				break
			}
		}
		if !ignored {
			out = append(out, f)
		}
	}
	return out
}

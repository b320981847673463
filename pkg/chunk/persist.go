package chunk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🚫 ErrUnknownFormat is returned when no persister handles the requested
// format.
var ErrUnknownFormat = errors.New("unknown chunk format")

// 📝 Record is a chunk's persisted representation.
type Record struct {
	Seq   int      `json:"seq" yaml:"seq"`
	Size  int      `json:"size" yaml:"size"`
	IDs   []string `json:"ids" yaml:"ids"`
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// 🔌 Persister serializes one chunk to a writer.
type Persister interface {
	// Format returns the name this persister is registered under. It is
	// also used as the file extension.
	Format() string

	// Persist writes the chunk.
	Persist(w io.Writer, rec Record) error
}

// 🗺️ persisters is the list of available persisters.
var persisters []Persister

// 📝 Register registers a persister.
func Register(p Persister) {
	persisters = append(persisters, p)
}

// 🎯 GetPersister returns the persister for the given format.
func GetPersister(format string) Persister {
	for _, p := range persisters {
		if p.Format() == format {
			return p
		}
	}
	return nil
}

// 🔧 SaveOptions configures chunk persistence.
type SaveOptions struct {
	Dir       string // Directory chunk files are written into
	Prefix    string // File name prefix, e.g. "chunk_"
	Format    string // One of the registered formats: json, yaml, text
	WithPaths bool   // Include resolved folder paths in the records
}

// 💾 Save writes one file per chunk, named <prefix><seq>.<format>, and
// returns the written paths. Existing files are overwritten.
func Save(ctx context.Context, chunks []Chunk, opts SaveOptions) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	p := GetPersister(opts.Format)
	if p == nil {
		return nil, errors.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, errors.Errorf("creating chunks directory: %w", err)
	}

	written := make([]string, 0, len(chunks))
	for _, c := range chunks {
		path := filepath.Join(opts.Dir, fmt.Sprintf("%s%d.%s", opts.Prefix, c.Seq, p.Format()))
		if err := writeChunk(p, c, path, opts.WithPaths); err != nil {
			return nil, errors.Errorf("saving chunk %d: %w", c.Seq, err)
		}
		logger.Debug().Str("path", path).Int("seq", c.Seq).Msg("chunk file written")
		written = append(written, path)
	}
	return written, nil
}

func writeChunk(p Persister, c Chunk, path string, withPaths bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	rec := Record{Seq: c.Seq, Size: len(c.Items), IDs: c.IDs()}
	if withPaths {
		rec.Paths = make([]string, len(c.Items))
		for i, m := range c.Items {
			rec.Paths[i] = m.Path
		}
	}

	if err := p.Persist(f, rec); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// 📇 SaveManifest writes a combined manifest.json indexing all chunks next
// to the per-chunk files.
func SaveManifest(ctx context.Context, chunks []Chunk, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Errorf("creating chunks directory: %w", err)
	}

	recs := make([]Record, len(chunks))
	for i, c := range chunks {
		recs[i] = Record{Seq: c.Seq, Size: len(c.Items), IDs: c.IDs()}
	}

	path := filepath.Join(dir, "manifest.json")
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return "", errors.Errorf("writing manifest: %w", err)
	}
	return path, nil
}

// 🗃️ SaveMapping writes the full identifier-to-files mapping as a single
// all_mapping.json. Used when saving is requested without chunking.
func SaveMapping(ctx context.Context, dir string, files map[string][]string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, "all_mapping.json")
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(files); err != nil {
		return "", errors.Errorf("writing mapping: %w", err)
	}
	return path, nil
}

// 🔧 JSONPersister writes chunk records as indented JSON.
type JSONPersister struct{}

func init() {
	Register(&JSONPersister{})
}

func (p *JSONPersister) Format() string { return "json" }

func (p *JSONPersister) Persist(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return errors.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// 🔧 YAMLPersister writes chunk records as YAML.
type YAMLPersister struct{}

func init() {
	Register(&YAMLPersister{})
}

func (p *YAMLPersister) Format() string { return "yaml" }

func (p *YAMLPersister) Persist(w io.Writer, rec Record) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(rec); err != nil {
		return errors.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// 🔧 TextPersister writes one identifier per line.
type TextPersister struct{}

func init() {
	Register(&TextPersister{})
}

func (p *TextPersister) Format() string { return "text" }

func (p *TextPersister) Persist(w io.Writer, rec Record) error {
	if len(rec.IDs) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, strings.Join(rec.IDs, "\n")+"\n"); err != nil {
		return errors.Errorf("writing identifiers: %w", err)
	}
	return nil
}

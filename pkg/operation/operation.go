// Package operation wires the idchunk pipeline: load identifiers, map
// them to folders, chunk, persist, and materialize.
package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"idchunk/pkg/chunk"
	"idchunk/pkg/config"
	"idchunk/pkg/ids"
	"idchunk/pkg/mapper"
	"idchunk/pkg/status"
)

// 🎯 Operator defines the pipeline stages of an idchunk run.
type Operator interface {
	// LoadIDs reads the configured identifier file.
	LoadIDs(ctx context.Context) ([]string, error)
	// Map resolves identifiers to folders under the configured source.
	Map(ctx context.Context, list []string) (*mapper.Result, error)
	// ListFiles lists the files of one mapped folder.
	ListFiles(ctx context.Context, m mapper.Mapping) ([]string, error)
	// Chunk partitions the found mappings by the configured chunk size.
	Chunk(ctx context.Context, found []mapper.Mapping) ([]chunk.Chunk, error)
	// Save persists chunk files and the combined manifest.
	Save(ctx context.Context, chunks []chunk.Chunk) ([]string, error)
	// Materialize copies or moves chunk folders into the destination.
	Materialize(ctx context.Context, chunks []chunk.Chunk) (*MaterializeResult, error)
}

// 🔧 Options contains configuration for the operator.
type Options struct {
	// Config is the validated run configuration.
	Config *config.Config
	// UserLogger reports per-folder feedback during materialization.
	UserLogger *status.UserLogger
}

// 🏭 New creates a new operator with the given options.
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.UserLogger == nil {
		return nil, errors.Errorf("user logger is required")
	}
	return &operator{
		cfg:  opts.Config,
		ulog: opts.UserLogger,
	}, nil
}

// 🎮 operator implements the Operator interface.
type operator struct {
	cfg  *config.Config
	ulog *status.UserLogger
}

func (o *operator) LoadIDs(ctx context.Context) ([]string, error) {
	list, err := ids.Load(ctx, o.cfg.IDsFile, ids.Options{CSVColumn: o.cfg.CSVColumn})
	if err != nil {
		return nil, errors.Errorf("loading identifiers: %w", err)
	}
	return list, nil
}

func (o *operator) Map(ctx context.Context, list []string) (*mapper.Result, error) {
	res, err := mapper.Map(ctx, o.cfg.Source, list)
	if err != nil {
		return nil, errors.Errorf("mapping identifiers: %w", err)
	}
	return res, nil
}

func (o *operator) ListFiles(ctx context.Context, m mapper.Mapping) ([]string, error) {
	files, err := mapper.ListFiles(ctx, m.Path, mapper.ListOptions{
		Recursive:   o.cfg.Recursive,
		IgnoreGlobs: o.cfg.IgnoreGlobs,
	})
	if err != nil {
		return nil, errors.Errorf("listing files for %s: %w", m.ID, err)
	}
	return files, nil
}

func (o *operator) Chunk(ctx context.Context, found []mapper.Mapping) ([]chunk.Chunk, error) {
	chunks, err := chunk.Split(found, o.cfg.ChunkSize)
	if err != nil {
		return nil, errors.Errorf("splitting into chunks: %w", err)
	}
	return chunks, nil
}

func (o *operator) Save(ctx context.Context, chunks []chunk.Chunk) ([]string, error) {
	written, err := chunk.Save(ctx, chunks, chunk.SaveOptions{
		Dir:    o.cfg.ChunksDir,
		Prefix: o.cfg.ChunkPrefix,
		Format: o.cfg.Format,
	})
	if err != nil {
		return nil, errors.Errorf("saving chunk files: %w", err)
	}

	manifest, err := chunk.SaveManifest(ctx, chunks, o.cfg.ChunksDir)
	if err != nil {
		return nil, errors.Errorf("saving manifest: %w", err)
	}
	return append(written, manifest), nil
}

// Materialize is implemented in materialize.go.

// Package config defines the idchunk run configuration and loads it from
// JSON, YAML, or HCL files with environment variable overrides.
package config

import (
	"fmt"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 🚫 Validation errors.
var (
	ErrMissingSource      = errors.New("source directory is required")
	ErrMissingIDs         = errors.New("identifier file is required")
	ErrInvalidChunkSize   = errors.New("chunk size must not be negative")
	ErrInvalidFormat      = errors.New("chunk format must be one of json, yaml, text")
	ErrInvalidMode        = errors.New("process mode must be one of none, copy, move")
	ErrMissingDestination = errors.New("destination is required when processing chunks")
)

// 🚚 Mode selects how chunk folders are materialized.
type Mode string

const (
	ModeNone Mode = "none" // Report only, no folder operations
	ModeCopy Mode = "copy" // Copy folders into the destination
	ModeMove Mode = "move" // Move folders into the destination
)

// 📚 Config is the complete run configuration.
type Config struct {
	Source      string   `json:"source" yaml:"source" hcl:"source,optional" env:"IDCHUNK_SOURCE"`
	IDsFile     string   `json:"ids" yaml:"ids" hcl:"ids,optional" env:"IDCHUNK_IDS"`
	CSVColumn   string   `json:"csv_column,omitempty" yaml:"csv_column,omitempty" hcl:"csv_column,optional" env:"IDCHUNK_CSV_COLUMN"`
	Recursive   bool     `json:"recursive,omitempty" yaml:"recursive,omitempty" hcl:"recursive,optional" env:"IDCHUNK_RECURSIVE"`
	IgnoreGlobs []string `json:"ignore_globs,omitempty" yaml:"ignore_globs,omitempty" hcl:"ignore_globs,optional" env:"IDCHUNK_IGNORE_GLOBS" envSeparator:","`
	ChunkSize   int      `json:"chunk_size,omitempty" yaml:"chunk_size,omitempty" hcl:"chunk_size,optional" env:"IDCHUNK_CHUNK_SIZE"`
	Save        bool     `json:"save,omitempty" yaml:"save,omitempty" hcl:"save,optional" env:"IDCHUNK_SAVE"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty" hcl:"format,optional" env:"IDCHUNK_FORMAT"`
	ChunkPrefix string   `json:"chunk_prefix,omitempty" yaml:"chunk_prefix,omitempty" hcl:"chunk_prefix,optional" env:"IDCHUNK_CHUNK_PREFIX"`
	ChunksDir   string   `json:"chunks_dir,omitempty" yaml:"chunks_dir,omitempty" hcl:"chunks_dir,optional" env:"IDCHUNK_CHUNKS_DIR"`
	Mode        Mode     `json:"mode,omitempty" yaml:"mode,omitempty" hcl:"mode,optional" env:"IDCHUNK_MODE"`
	Destination string   `json:"destination,omitempty" yaml:"destination,omitempty" hcl:"destination,optional" env:"IDCHUNK_DESTINATION"`
	PrintOnly   bool     `json:"print_only,omitempty" yaml:"print_only,omitempty" hcl:"print_only,optional" env:"IDCHUNK_PRINT_ONLY"`
}

// 🏭 Default returns a config populated with defaults. File, env, and flag
// values are layered on top of it.
func Default() *Config {
	return &Config{
		Recursive:   true,
		Format:      "json",
		ChunkPrefix: "chunk_",
		ChunksDir:   "chunks",
		Mode:        ModeNone,
	}
}

// 🔍 Validate checks the configuration and normalizes paths.
func (cfg *Config) Validate() error {
	if cfg.Source == "" {
		return ErrMissingSource
	}
	if cfg.IDsFile == "" {
		return ErrMissingIDs
	}
	if cfg.ChunkSize < 0 {
		return errors.Errorf("%w: %d", ErrInvalidChunkSize, cfg.ChunkSize)
	}

	switch cfg.Format {
	case "json", "yaml", "text":
	default:
		return errors.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	switch cfg.Mode {
	case ModeNone, ModeCopy, ModeMove:
	default:
		return errors.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
	}
	if cfg.Mode != ModeNone && cfg.Destination == "" {
		return ErrMissingDestination
	}

	cfg.Source = filepath.Clean(cfg.Source)
	cfg.ChunksDir = filepath.Clean(cfg.ChunksDir)
	if cfg.Destination != "" {
		cfg.Destination = filepath.Clean(cfg.Destination)
	}

	return nil
}

// 📝 String returns a short description of the run.
func (cfg *Config) String() string {
	return fmt.Sprintf("%s x %s (chunk size %d, mode %s)", cfg.Source, cfg.IDsFile, cfg.ChunkSize, cfg.Mode)
}

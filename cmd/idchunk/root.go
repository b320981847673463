package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"idchunk/cmd/idchunk/opts"
	"idchunk/pkg/config"
	"idchunk/pkg/status"
)

var (
	// Flags
	configFile  string
	source      string
	idsFile     string
	csvColumn   string
	recursive   bool
	ignoreGlobs []string
	chunkSize   int
	save        bool
	format      string
	chunkPrefix string
	chunksDir   string
	printOnly   bool
	debug       bool
)

// addRootFlags adds shared flags to the root command.
func addRootFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&configFile, "config", "c", "", "config file path (.json, .yaml, .hcl)")
	f.StringVarP(&source, "source", "s", "", "directory containing ID-named subfolders")
	f.StringVarP(&idsFile, "ids", "i", "", "identifier file (.txt or .csv)")
	f.StringVar(&csvColumn, "csv-column", "", "column to read when the identifier file is CSV")
	f.BoolVar(&recursive, "recursive", true, "recursively list files inside matched folders")
	f.StringSliceVar(&ignoreGlobs, "ignore", nil, "glob patterns for files to exclude from listings")
	f.IntVarP(&chunkSize, "chunk-size", "n", 0, "split matched IDs into chunks of this size (0 disables chunking)")
	f.BoolVar(&save, "save", false, "write chunk files to disk")
	f.StringVar(&format, "format", "json", "chunk file format: json, yaml, or text")
	f.StringVar(&chunkPrefix, "chunk-prefix", "chunk_", "prefix for chunk files and folders")
	f.StringVar(&chunksDir, "chunks-dir", "chunks", "directory for chunk files")
	f.BoolVar(&printOnly, "print-only", false, "report only; do not write or process anything")
	f.BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags.
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// initRootOpts layers the config (defaults < file < env < flags) and
// builds the shared dependencies. Validation happens per command, after
// command-local flags are applied.
func initRootOpts(cmd *cobra.Command, ro *opts.RootOpts) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	applyFlagOverrides(cmd, cfg)

	ro.Config = cfg
	ro.Reporter = status.NewReporter(os.Stdout)
	ro.UserLogger = status.NewUserLogger(ctx)
	return nil
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("source") {
		cfg.Source = source
	}
	if f.Changed("ids") {
		cfg.IDsFile = idsFile
	}
	if f.Changed("csv-column") {
		cfg.CSVColumn = csvColumn
	}
	if f.Changed("recursive") {
		cfg.Recursive = recursive
	}
	if f.Changed("ignore") {
		cfg.IgnoreGlobs = ignoreGlobs
	}
	if f.Changed("chunk-size") {
		cfg.ChunkSize = chunkSize
	}
	if f.Changed("save") {
		cfg.Save = save
	}
	if f.Changed("format") {
		cfg.Format = format
	}
	if f.Changed("chunk-prefix") {
		cfg.ChunkPrefix = chunkPrefix
	}
	if f.Changed("chunks-dir") {
		cfg.ChunksDir = chunksDir
	}
	if f.Changed("print-only") {
		cfg.PrintOnly = printOnly
	}
}

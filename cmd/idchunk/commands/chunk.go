package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"idchunk/cmd/idchunk/opts"
	"idchunk/pkg/chunk"
	"idchunk/pkg/operation"
)

// NewChunkCmd creates a new chunk command.
func NewChunkCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunk",
		Short: "Split matched identifiers into fixed-size chunks",
		Long: `Chunk maps the identifier list to folders and splits the matched
identifiers into chunks of --chunk-size. With --save, one file per chunk
(<chunk-prefix><n>.<format>) plus a combined manifest.json is written into
--chunks-dir. With --save but no --chunk-size, the full identifier-to-files
mapping is written as all_mapping.json instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := ro.Config

			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			op, err := operation.New(operation.Options{
				Config:     cfg,
				UserLogger: ro.UserLogger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			ro.Reporter.Header("chunking identifier folders")
			m, err := runMapping(ctx, ro, op)
			if err != nil {
				return err
			}

			if cfg.ChunkSize <= 0 {
				if cfg.Save && !cfg.PrintOnly {
					path, err := chunk.SaveMapping(ctx, cfg.ChunksDir, m.files)
					if err != nil {
						return errors.Errorf("saving full mapping: %w", err)
					}
					ro.Reporter.SavedFile(path)
					return nil
				}
				ro.Reporter.Warning("chunking not requested (chunk-size <= 0)")
				return nil
			}

			chunks, err := op.Chunk(ctx, m.result.Found)
			if err != nil {
				return err
			}
			ro.Reporter.ChunkSummary(chunks, cfg.ChunkSize)

			if cfg.Save && !cfg.PrintOnly {
				written, err := op.Save(ctx, chunks)
				if err != nil {
					return err
				}
				for _, path := range written {
					ro.Reporter.SavedFile(path)
				}
			}

			return nil
		},
	}

	return cmd
}

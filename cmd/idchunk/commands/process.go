package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"idchunk/cmd/idchunk/opts"
	"idchunk/pkg/config"
	"idchunk/pkg/operation"
)

// NewProcessCmd creates a new process command.
func NewProcessCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		mode string
		dest string
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Copy or move chunk folders into a destination directory",
		Long: `Process maps the identifier list to folders, splits the matched
identifiers into chunks of --chunk-size, and copies or moves each chunk's
folders into <dest>/<chunk-prefix><n>/<id>. Existing targets are replaced.
A folder that fails to copy or move is reported and skipped; the run
continues with the remaining folders and still exits successfully when the
mapping and chunking stages completed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := ro.Config

			if cmd.Flags().Changed("mode") || cfg.Mode == config.ModeNone {
				cfg.Mode = config.Mode(mode)
			}
			if cmd.Flags().Changed("dest") {
				cfg.Destination = dest
			}

			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}
			if cfg.ChunkSize <= 0 {
				return errors.Errorf("%w: chunk size is required for processing", config.ErrInvalidChunkSize)
			}

			op, err := operation.New(operation.Options{
				Config:     cfg,
				UserLogger: ro.UserLogger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			ro.Reporter.Header(fmt.Sprintf("processing chunks (%s)", cfg.Mode))
			m, err := runMapping(ctx, ro, op)
			if err != nil {
				return err
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

			if cfg.PrintOnly {
				ro.Reporter.Warning("print-only: no folders processed")
				return nil
			}

			res, err := op.Materialize(ctx, chunks)
			if err != nil {
				return err
			}

			ro.Reporter.Newline()
			for _, f := range res.Failures {
				ro.Reporter.Failure(f.ID, f.Err)
			}
			ro.Reporter.FailureSummary(len(res.Failures), res.Processed+len(res.Failures))

			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "copy", "process mode: copy or move")
	cmd.Flags().StringVar(&dest, "dest", "", "destination root directory")

	return cmd
}

// TODO(dr.methodical): 🧪 Add tests for mode/dest flag handling
// TODO(dr.methodical): 📝 Add examples of copy vs move usage

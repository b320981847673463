package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"idchunk/cmd/idchunk/opts"
	"idchunk/pkg/operation"
)

// NewMapCmd creates a new map command.
func NewMapCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map identifiers to folders and report the result",
		Long: `Map reads the identifier list, checks which identifiers have a same-named
subfolder under the source directory, and reports:
1. Totals of provided, found, and missing identifiers
2. The missing identifiers (first 50)
3. A sample of the found mappings with their file counts (first 20)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := ro.Config.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			op, err := operation.New(operation.Options{
				Config:     ro.Config,
				UserLogger: ro.UserLogger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			ro.Reporter.Header("mapping identifier folders")
			if _, err := runMapping(ctx, ro, op); err != nil {
				return err
			}
			return nil
		},
	}

	return cmd
}

// TODO(dr.methodical): 🧪 Add tests for map command flag overrides
// TODO(dr.methodical): 📝 Add examples of map usage

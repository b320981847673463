// Package commands implements the idchunk subcommands.
package commands

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"idchunk/cmd/idchunk/opts"
	"idchunk/pkg/mapper"
	"idchunk/pkg/operation"
)

// 📊 mapped bundles the shared pipeline results of the mapping stages.
type mapped struct {
	provided []string            // Deduplicated identifiers as read
	result   *mapper.Result      // Found/missing partition
	counts   []int               // File counts, parallel to result.Found
	files    map[string][]string // Listed files per found identifier
}

// 🏃 runMapping executes the shared front of every command: load the
// identifier list, map it to folders, list the folder contents, and print
// the report totals.
func runMapping(ctx context.Context, ro *opts.RootOpts, op operation.Operator) (*mapped, error) {
	m := &mapped{}
	runner := operation.NewRunner(zerolog.Ctx(ctx))

	err := runner.Run(ctx,
		operation.Stage{Name: "loading identifiers", Run: func(ctx context.Context) error {
			var err error
			m.provided, err = op.LoadIDs(ctx)
			return err
		}},
		operation.Stage{Name: "mapping folders", Run: func(ctx context.Context) error {
			var err error
			m.result, err = op.Map(ctx, m.provided)
			return err
		}},
		operation.Stage{Name: "listing folder contents", Run: func(ctx context.Context) error {
			m.files = make(map[string][]string, len(m.result.Found))
			m.counts = make([]int, len(m.result.Found))
			for i, item := range m.result.Found {
				files, err := op.ListFiles(ctx, item)
				if err != nil {
					return err
				}
				m.files[item.ID] = files
				m.counts[i] = len(files)
			}
			return nil
		}},
	)
	if err != nil {
		return nil, errors.Errorf("running mapping stages: %w", err)
	}

	ro.Reporter.Summary(len(m.provided), len(m.result.Found), len(m.result.Missing))
	ro.Reporter.Missing(m.result.Missing)
	ro.Reporter.MappingSample(m.result.Found, m.counts)

	return m, nil
}

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Stage is one named step of a run.
type Stage struct {
	Name string
	Run  func(ctx context.Context) error
}

// 🏃 Runner executes stages sequentially. The pipeline is strictly
// synchronous; a failed stage aborts the run.
type Runner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner.
func NewRunner(logger *zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// 🏃 Run executes the stages in order.
func (r *Runner) Run(ctx context.Context, stages ...Stage) error {
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("run cancelled: %w", err)
		}
		r.logger.Debug().Str("stage", s.Name).Msg("starting stage")
		if err := s.Run(ctx); err != nil {
			return errors.Errorf("%s: %w", s.Name, err)
		}
		r.logger.Debug().Str("stage", s.Name).Msg("stage complete")
	}
	return nil
}

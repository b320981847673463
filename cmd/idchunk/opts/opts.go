// Package opts carries the shared dependencies of the idchunk commands.
package opts

import (
	"idchunk/pkg/config"
	"idchunk/pkg/status"
)

// 🔧 RootOpts bundles the dependencies shared by all commands. It is
// populated by the root command's persistent pre-run, after flags are
// parsed.
type RootOpts struct {
	// Config is the layered run configuration (defaults < file < env <
	// flags), not yet validated.
	Config *config.Config
	// Reporter renders the run report.
	Reporter *status.Reporter
	// UserLogger reports per-folder feedback.
	UserLogger *status.UserLogger
}

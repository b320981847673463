package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about folder operations,
// mirrored into zerolog for debugging.
type UserLogger struct {
	log zerolog.Logger
}

// 🎨 FolderChangeType represents the kind of change made to a folder.
type FolderChangeType int

const (
	FolderCopied FolderChangeType = iota
	FolderMoved
	FolderSkipped
	FolderFailed
)

// 🖼️ FolderChange represents one materialized folder.
type FolderChange struct {
	Type   FolderChangeType
	ID     string
	Target string
	Err    error
}

// 🎯 NewUserLogger creates a new user logger from the context logger.
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFolderChange logs a folder change with appropriate prefix.
func (u *UserLogger) LogFolderChange(change FolderChange) {
	var action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FolderCopied:
		action = "Copied"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "📂"})
	case FolderMoved:
		action = "Moved"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "🚚"})
	case FolderSkipped:
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case FolderFailed:
		action = "Failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	}

	msg := fmt.Sprintf("%s %s", action, change.ID)
	if change.Target != "" {
		msg += fmt.Sprintf(" -> %s", change.Target)
	}

	if change.Err != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Err)
		u.log.Error().Err(change.Err).Str("id", change.ID).Msg(msg)
	} else {
		printer.Println(msg)
		u.log.Info().Str("id", change.ID).Msg(msg)
	}
}

// 📊 LogStageChange logs a change of pipeline stage.
func (u *UserLogger) LogStageChange(description string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results.
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		u.log.Warn().Msg(description)
	}
}

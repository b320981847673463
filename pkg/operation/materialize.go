package operation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"idchunk/pkg/chunk"
	"idchunk/pkg/config"
	"idchunk/pkg/status"
)

// ❗ ItemError records one failed folder copy or move.
type ItemError struct {
	ID     string // Identifier of the folder
	Source string // Source path
	Target string // Intended target path
	Err    error  // Underlying failure
}

func (e ItemError) Error() string {
	return fmt.Sprintf("%s: %v", e.ID, e.Err)
}

// 📊 MaterializeResult summarizes a materialization run.
type MaterializeResult struct {
	Processed int         // Folders materialized successfully
	Failures  []ItemError // Folders that failed
}

// 🚚 Materialize copies or moves each chunk's folders into
// destination/<prefix><seq>/<id>. Existing targets are replaced. Per-item
// failures are collected and the remaining items keep processing; a
// partially written target is not rolled back.
func (o *operator) Materialize(ctx context.Context, chunks []chunk.Chunk) (*MaterializeResult, error) {
	logger := zerolog.Ctx(ctx)

	if o.cfg.Mode != config.ModeCopy && o.cfg.Mode != config.ModeMove {
		return nil, errors.Errorf("%w: %q", config.ErrInvalidMode, o.cfg.Mode)
	}
	if err := os.MkdirAll(o.cfg.Destination, 0755); err != nil {
		return nil, errors.Errorf("creating destination root: %w", err)
	}

	res := &MaterializeResult{}
	for _, c := range chunks {
		name := fmt.Sprintf("%s%d", o.cfg.ChunkPrefix, c.Seq)
		chunkDest := filepath.Join(o.cfg.Destination, name)
		if err := os.MkdirAll(chunkDest, 0755); err != nil {
			return nil, errors.Errorf("creating chunk directory %s: %w", name, err)
		}

		o.ulog.LogStageChange(fmt.Sprintf("Processing chunk %d -> %s (%d folders)", c.Seq, name, len(c.Items)))

		for _, item := range c.Items {
			target := filepath.Join(chunkDest, item.ID)
			if err := o.materializeOne(item.Path, target); err != nil {
				logger.Error().Err(err).Str("id", item.ID).Msg("materializing folder")
				o.ulog.LogFolderChange(status.FolderChange{
					Type: status.FolderFailed,
					ID:   item.ID,
					Err:  err,
				})
				res.Failures = append(res.Failures, ItemError{
					ID:     item.ID,
					Source: item.Path,
					Target: target,
					Err:    err,
				})
				continue
			}

			changeType := status.FolderCopied
			if o.cfg.Mode == config.ModeMove {
				changeType = status.FolderMoved
			}
			o.ulog.LogFolderChange(status.FolderChange{
				Type:   changeType,
				ID:     item.ID,
				Target: target,
			})
			res.Processed++
		}
	}

	logger.Info().
		Int("processed", res.Processed).
		Int("failed", len(res.Failures)).
		Msg("materialization finished")

	return res, nil
}

// 📂 materializeOne replaces target with the source folder, copying or
// moving according to the configured mode.
func (o *operator) materializeOne(source, target string) error {
	if err := removeExisting(target); err != nil {
		return errors.Errorf("removing existing target: %w", err)
	}
	if o.cfg.Mode == config.ModeMove {
		return moveTree(source, target)
	}
	return copyTree(source, target)
}

// 🧹 removeExisting removes a pre-existing target path of either kind.
func removeExisting(target string) error {
	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Errorf("checking target: %w", err)
	}
	if info.IsDir() {
		return os.RemoveAll(target)
	}
	return os.Remove(target)
}

// 📋 copyTree copies the whole folder subtree from src to dst.
func copyTree(src, dst string) error {
	if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
		return errors.Errorf("copying tree: %w", err)
	}
	return nil
}

// 🚚 moveTree renames src to dst, falling back to copy-and-delete when
// rename fails (e.g. across devices).
func moveTree(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyTree(src, dst); err != nil {
		return err
	}
	if err := os.RemoveAll(src); err != nil {
		return errors.Errorf("removing source after copy: %w", err)
	}
	return nil
}

package workflow

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ixmatch/internal/logging"
	"ixmatch/internal/mover"
	"ixmatch/internal/scan"
)

// RevertSummary reports how many files were moved back per channel.
type RevertSummary struct {
	RGB int `json:"rgb"`
	NIR int `json:"nir"`
}

// Revert moves every capture file found under the unmatched and empty
// subdirectories of each channel back into the channel directory, undoing a
// previous run. Missing subdirectories contribute zero files. Honors
// opts.DryRun and opts.Extension.
func (r *Runner) Revert(ctx context.Context, rgbDir, nirDir string, opts Options) (RevertSummary, error) {
	var summary RevertSummary

	count, err := r.revertChannel("rgb", rgbDir, opts)
	if err != nil {
		return RevertSummary{}, err
	}
	summary.RGB = count

	if err := ctx.Err(); err != nil {
		return RevertSummary{}, err
	}

	count, err = r.revertChannel("nir", nirDir, opts)
	if err != nil {
		return RevertSummary{}, err
	}
	summary.NIR = count

	return summary, nil
}

func (r *Runner) revertChannel(channel, dir string, opts Options) (int, error) {
	reverted := 0
	for _, sub := range []string{UnmatchedDirName, EmptyDirName} {
		subdir := filepath.Join(dir, sub)
		if _, err := os.Stat(subdir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return 0, fmt.Errorf("inspect %s: %w", subdir, err)
		}

		paths, err := scan.Files(subdir, opts.Extension)
		if err != nil {
			return 0, fmt.Errorf("discover %s files to revert: %w", channel, err)
		}
		for _, path := range paths {
			r.logger.Debug("moving file back",
				logging.Args(
					logging.String(logging.FieldChannel, channel),
					logging.String("from", path),
					logging.String("to", filepath.Join(dir, filepath.Base(path))),
					logging.Bool("dry_run", opts.DryRun),
				)...)
		}
		if !opts.DryRun {
			if err := mover.Move(paths, dir); err != nil {
				return 0, err
			}
		}
		reverted += len(paths)
	}
	return reverted, nil
}

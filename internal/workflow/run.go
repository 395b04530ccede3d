package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"ixmatch/internal/capture"
	"ixmatch/internal/logging"
	"ixmatch/internal/matching"
	"ixmatch/internal/mover"
	"ixmatch/internal/scan"
)

// Subdirectory names for files a run sets aside. Discovery skips both so a
// second run does not re-ingest already sorted files.
const (
	UnmatchedDirName = "unmatched"
	EmptyDirName     = "empty"
)

// Options configures a matching run.
type Options struct {
	// Threshold is the maximum timestamp delta for a pair to count as matched.
	Threshold time.Duration
	// Extension selects the capture files to consider, without the dot.
	Extension string
	// KeepEmpty leaves zero-byte files in the match instead of setting them aside.
	KeepEmpty bool
	// DryRun computes the full summary without touching the filesystem.
	DryRun bool
}

// Summary reports the outcome of a matching run. RGB and NIR count the
// frames that entered the match (after empty-file filtering); Matched counts
// the pairs within threshold.
type Summary struct {
	RGB      int `json:"rgb"`
	NIR      int `json:"nir"`
	Matched  int `json:"matched"`
	EmptyRGB int `json:"empty_rgb"`
	EmptyNIR int `json:"empty_nir"`
}

// Runner executes matching and revert runs.
type Runner struct {
	logger *slog.Logger
}

// NewRunner constructs a runner logging through the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logging.WithComponent(logger, "workflow")}
}

// Run matches the capture files of the two channel directories and, unless
// opts.DryRun is set, moves unmatched frames into <channel>/unmatched and
// empty frames into <channel>/empty.
func (r *Runner) Run(ctx context.Context, rgbDir, nirDir string, opts Options) (Summary, error) {
	rgb, err := r.loadChannel(rgbDir, opts.Extension, "rgb")
	if err != nil {
		return Summary{}, err
	}
	nir, err := r.loadChannel(nirDir, opts.Extension, "nir")
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	emptyRGB, emptyNIR := capture.Collection{}, capture.Collection{}
	if !opts.KeepEmpty {
		emptyRGB, rgb = rgb.Partition(capture.Frame.Empty)
		emptyNIR, nir = nir.Partition(capture.Frame.Empty)
		summary.EmptyRGB = emptyRGB.Len()
		summary.EmptyNIR = emptyNIR.Len()
	}
	summary.RGB = rgb.Len()
	summary.NIR = nir.Len()

	pairs, err := matching.Join(rgb, nir)
	if err != nil {
		return Summary{}, fmt.Errorf("join channels: %w", err)
	}

	matchedRGB, _ := matching.Matched(pairs, rgb, nir, opts.Threshold)
	unmatchedRGB, unmatchedNIR := matching.Unmatched(pairs, rgb, nir, opts.Threshold)
	summary.Matched = len(matchedRGB)

	r.logger.Info("channels joined",
		logging.Args(
			logging.Int("rgb_frames", summary.RGB),
			logging.Int("nir_frames", summary.NIR),
			logging.Int("matched", summary.Matched),
			logging.Int("unmatched_rgb", len(unmatchedRGB)),
			logging.Int("unmatched_nir", len(unmatchedNIR)),
			logging.Duration("threshold", opts.Threshold),
			logging.Bool("dry_run", opts.DryRun),
		)...)

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	batches := []struct {
		channel string
		frames  []capture.Frame
		dest    string
	}{
		{"rgb", unmatchedRGB, filepath.Join(rgbDir, UnmatchedDirName)},
		{"nir", unmatchedNIR, filepath.Join(nirDir, UnmatchedDirName)},
		{"rgb", frames(emptyRGB), filepath.Join(rgbDir, EmptyDirName)},
		{"nir", frames(emptyNIR), filepath.Join(nirDir, EmptyDirName)},
	}
	for _, batch := range batches {
		if err := r.moveAside(batch.channel, batch.frames, batch.dest, opts.DryRun); err != nil {
			return Summary{}, err
		}
	}

	return summary, nil
}

func (r *Runner) loadChannel(dir, ext, channel string) (capture.Collection, error) {
	paths, err := scan.Files(dir, ext, UnmatchedDirName, EmptyDirName)
	if err != nil {
		return capture.Collection{}, fmt.Errorf("discover %s files: %w", channel, err)
	}
	col, err := capture.Build(paths)
	if err != nil {
		return capture.Collection{}, fmt.Errorf("build %s collection: %w", channel, err)
	}
	r.logger.Debug("channel loaded",
		logging.Args(
			logging.String(logging.FieldChannel, channel),
			logging.String("dir", dir),
			logging.Int("files", col.Len()),
		)...)
	return col, nil
}

func (r *Runner) moveAside(channel string, batch []capture.Frame, dest string, dryRun bool) error {
	if len(batch) == 0 {
		return nil
	}
	paths := make([]string, len(batch))
	for i, frame := range batch {
		paths[i] = frame.Path
		r.logger.Debug("moving file",
			logging.Args(
				logging.String(logging.FieldChannel, channel),
				logging.String("from", frame.Path),
				logging.String("to", filepath.Join(dest, frame.Name)),
				logging.Bool("dry_run", dryRun),
			)...)
	}
	if dryRun {
		return nil
	}
	return mover.Move(paths, dest)
}

func frames(c capture.Collection) []capture.Frame {
	out := make([]capture.Frame, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		out = append(out, c.Frame(i))
	}
	return out
}

package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ixmatch/internal/config"
	"ixmatch/internal/logging"
	"ixmatch/internal/runlock"
	"ixmatch/internal/workflow"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var flags channelFlags
	var threshMillis int
	var dryRun bool
	var keepEmpty bool
	var verbose bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "match [capture-dir]",
		Short: "Pair capture files by timestamp and set aside unmatched and empty ones",
		Long: `Match pairs the RGB and NIR capture files found under the capture
directory by the timestamp encoded in each filename. Files whose closest
partner lies outside the threshold move to <channel>/unmatched, and
zero-byte files move to <channel>/empty unless --keep-empty is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			baseDir := "."
			if len(args) == 1 {
				baseDir = args[0]
			}
			baseDir, err = config.ExpandPath(baseDir)
			if err != nil {
				return err
			}

			rgbPattern, nirPattern, extension, caseSensitive := flags.resolve(cmd, cfg)

			threshold := cfg.Threshold()
			if cmd.Flags().Changed("thresh") {
				if threshMillis <= 0 {
					return fmt.Errorf("threshold must be positive, got %d", threshMillis)
				}
				threshold = time.Duration(threshMillis) * time.Millisecond
			}
			keep := cfg.Matching.KeepEmpty
			if cmd.Flags().Changed("keep-empty") {
				keep = keepEmpty
			}

			logger, err := ctx.newLogger(verbose)
			if err != nil {
				return err
			}
			logger = logger.With(logging.Args(logging.String(logging.FieldRunID, uuid.NewString()))...)

			rgbDir, nirDir, err := resolveChannelDirs(baseDir, rgbPattern, nirPattern, caseSensitive)
			if err != nil {
				return err
			}

			if !dryRun {
				lock, err := runlock.Acquire(baseDir)
				if err != nil {
					return err
				}
				defer func() { _ = lock.Release() }()
			}

			runner := workflow.NewRunner(logger)
			summary, err := runner.Run(cmd.Context(), rgbDir, nirDir, workflow.Options{
				Threshold: threshold,
				Extension: extension,
				KeepEmpty: keep,
				DryRun:    dryRun,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, summary)
			}
			printMatchSummary(cmd, summary, dryRun)
			return nil
		},
	}

	addChannelFlags(cmd, &flags)
	cmd.Flags().IntVarP(&threshMillis, "thresh", "t", 500, "Matching threshold in milliseconds")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Compute the summary without moving files")
	cmd.Flags().BoolVar(&keepEmpty, "keep-empty", false, "Keep zero-byte files in the match")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every file move")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the summary as JSON")

	return cmd
}

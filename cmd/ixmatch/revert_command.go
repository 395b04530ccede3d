package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ixmatch/internal/config"
	"ixmatch/internal/logging"
	"ixmatch/internal/runlock"
	"ixmatch/internal/workflow"
)

func newRevertCommand(ctx *commandContext) *cobra.Command {
	var flags channelFlags
	var dryRun bool
	var verbose bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "revert [capture-dir]",
		Short: "Move previously set-aside files back into their channel directories",
		Args:  cobra.MaximumNArgs(1),
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
			summary, err := runner.Revert(cmd.Context(), rgbDir, nirDir, workflow.Options{
				Extension: extension,
				DryRun:    dryRun,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, summary)
			}
			printRevertSummary(cmd, summary, dryRun)
			return nil
		},
	}

	addChannelFlags(cmd, &flags)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Report what would move without moving")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every file move")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the summary as JSON")

	return cmd
}

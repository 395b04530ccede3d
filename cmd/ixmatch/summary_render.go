package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ixmatch/internal/workflow"
)

// printMatchSummary renders the run summary, as a table on a terminal and
// as plain lines otherwise.
func printMatchSummary(cmd *cobra.Command, summary workflow.Summary, dryRun bool) {
	out := cmd.OutOrStdout()
	if isTerminal(out) {
		rows := [][]string{
			{"RGB", strconv.Itoa(summary.RGB), strconv.Itoa(summary.Matched), strconv.Itoa(summary.EmptyRGB)},
			{"NIR", strconv.Itoa(summary.NIR), strconv.Itoa(summary.Matched), strconv.Itoa(summary.EmptyNIR)},
		}
		fmt.Fprintln(out, renderSummaryTable([]string{"Channel", "Files", "Matched", "Empty"}, rows))
	} else {
		fmt.Fprintf(out, "RGB: %d, NIR: %d (%d match)\n", summary.RGB, summary.NIR, summary.Matched)
		fmt.Fprintf(out, "Empty files: RGB %d, NIR %d\n", summary.EmptyRGB, summary.EmptyNIR)
	}
	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run: no files were moved")
	}
}

func printRevertSummary(cmd *cobra.Command, summary workflow.RevertSummary, dryRun bool) {
	out := cmd.OutOrStdout()
	if isTerminal(out) {
		rows := [][]string{
			{"RGB", strconv.Itoa(summary.RGB)},
			{"NIR", strconv.Itoa(summary.NIR)},
		}
		fmt.Fprintln(out, renderSummaryTable([]string{"Channel", "Reverted"}, rows))
	} else {
		fmt.Fprintf(out, "RGB: %d, NIR: %d files reverted\n", summary.RGB, summary.NIR)
	}
	if dryRun {
		fmt.Fprintln(out, "Dry run: no files were moved")
	}
}

func isTerminal(out any) bool {
	file, ok := out.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}

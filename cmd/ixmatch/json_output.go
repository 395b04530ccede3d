package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON encodes a run or revert summary as indented JSON on the
// command's stdout, for scripts consuming --json output.
func writeJSON(cmd *cobra.Command, summary any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

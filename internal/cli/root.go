// Package cli implements the tarotd commands.
package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "tarotd",
	Short: "Deterministic tarot reading service",
	Long: `tarotd serves reproducible tarot readings: the question text seeds the
draw, an LLM writes the deep reading, and a formatter clamps it to
locale-specific length bounds.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(drawCmd)
	RootCmd.AddCommand(purgeCmd)
}

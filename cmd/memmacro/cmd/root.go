// Package cmd provides the command-line interface of the memory-macro
// models.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "memmacro",
	Short: "memmacro simulates configurable memory macros, such as " +
		"single-port RAMs, ROMs, and dual-port distributed RAMs.",
	Long: `memmacro simulates configurable memory macros. It builds a macro ` +
		`from command-line parameters, optionally preloads it from a hex ` +
		`image, and clocks it with a stimulus script, reporting the output ` +
		`after every edge.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// Missing .env files are fine; the flags carry defaults.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lessonhub-cli",
	Short: "Lessonhub CLI tool",
	Long: `Lessonhub CLI inspects and extends the Lessonhub screen flow.

Available commands:
  routes        Print the named route table
  modules       Print the selectable learning modules
  reset-code    Generate password reset codes
  new-module    Scaffold a new application module

Use "lessonhub-cli [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/nfrund/lessonhub/internal/flow"
	"github.com/spf13/cobra"
)

var resetCodeCount int

var resetCodeCmd = &cobra.Command{
	Use:   "reset-code",
	Short: "Generate password reset codes",
	Long: `Print fresh six digit reset codes, drawn the same way the
forgot-password overlay draws them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if resetCodeCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", resetCodeCount)
		}
		for range resetCodeCount {
			fmt.Fprintln(cmd.OutOrStdout(), flow.NewResetCode(nil))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCodeCmd)
	resetCodeCmd.Flags().IntVarP(&resetCodeCount, "count", "c", 1, "Number of codes to print")
}

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/lessonhub/internal/domain"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Print the selectable learning modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "LABEL\tSLUG")
		for _, opt := range domain.ModuleOptions() {
			fmt.Fprintf(w, "%s\t%s\n", opt.Label, opt.Slug)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/lessonhub/internal/navigator"
	"github.com/spf13/cobra"
)

var routesFormat string

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the named route table",
	Long: `Print every navigable route with the HTTP path that renders it.
The initial route is marked with an asterisk.

Examples:
  lessonhub-cli routes
  lessonhub-cli routes --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := navigator.Table()
		out := cmd.OutOrStdout()

		switch routesFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(table)
		case "table":
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ROUTE\tPATH")
			for _, e := range table {
				name := string(e.Name)
				if e.Name == navigator.Initial {
					name += " *"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, e.Path)
			}
			return w.Flush()
		default:
			return fmt.Errorf("unsupported output format %q, use table or json", routesFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
	routesCmd.Flags().StringVarP(&routesFormat, "format", "f", "table", "Output format (table, json)")
}

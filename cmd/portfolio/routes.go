package main

import (
	"fmt"
	"text/tabwriter"

	"portfolio-site/internal/routing"

	"github.com/spf13/cobra"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the page route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATTERN\tVIEW\tTITLE\tNAV")
			for _, r := range routing.Routes() {
				nav := ""
				if r.InNav {
					nav = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Pattern, r.View, r.Title, nav)
			}
			return w.Flush()
		},
	}
}

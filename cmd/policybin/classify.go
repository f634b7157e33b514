package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/viant/policybin/classifier"
)

func newClassifyCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE_NAME...",
		Short: "Preview the evidence indicator each file name would be filed into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tINDICATOR\tTIER")
			for _, match := range classifier.Default().ClassifyAll(args...) {
				indicator, tier := match.Indicator, string(match.Tier)
				if !match.Matched {
					indicator, tier = "-", "unmatched"
				}
				fmt.Fprintf(w, "%v\t%v\t%v\n", match.FileName, indicator, tier)
			}
			return w.Flush()
		},
	}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/padezh/internal/irregular"
)

func newIrregularCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "irregular",
		Short: "List the curated irregular nouns",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, w := range irregular.Words() {
				fmt.Fprintf(tw, "%s\t%s\n", w, irregular.Note(w))
			}
			return tw.Flush()
		},
	}
}

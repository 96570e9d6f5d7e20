package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Shimizu-Technology/resume-ai/internal/prompts"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the available analysis modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := prompts.Load()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODE\tBUTTON\tRESULT HEADING")
			for _, t := range catalog.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Mode, t.Button, t.Label)
			}
			return w.Flush()
		},
	}
}

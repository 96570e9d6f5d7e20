package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pdfservice "github.com/Shimizu-Technology/resume-ai/internal/services/pdf"
)

func newExtractCmd() *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "extract <resume.pdf>",
		Short: "Print the text that would be sent to the model",
		Long: `Print the text extracted from a resume PDF, exactly as the analysis
pipeline would forward it. Never contacts the network.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}

			result, err := pdfservice.Extract(data)
			if err != nil {
				return &cliError{err: err}
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			if stats {
				fmt.Fprintf(cmd.ErrOrStderr(), "📄 %d pages, %d words\n", result.PageCount, result.WordCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "Also print page and word counts to stderr")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shimizu-Technology/resume-ai/internal/models"
	"github.com/Shimizu-Technology/resume-ai/internal/prompts"
	"github.com/Shimizu-Technology/resume-ai/internal/services/analysis"
)

type analyzeOptions struct {
	resumePath         string
	jobDescription     string
	jobDescriptionFile string
	mode               string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run one analysis and print the result",
		Long: `Run one analysis of a resume PDF against a job description.

Modes:
  analyze          Resume review from an HR manager's point of view
  ats_score        Match percentage, missing keywords and assessment
  cover_letter     Three-paragraph cover letter
  tailored_resume  Resume rewritten for the role

Example:
  resumectl analyze --resume cv.pdf --job-description-file jd.txt --mode ats_score`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resumePath, "resume", "r", "", "Path to the resume PDF")
	cmd.Flags().StringVarP(&opts.jobDescription, "job-description", "j", "", "Job description text")
	cmd.Flags().StringVarP(&opts.jobDescriptionFile, "job-description-file", "f", "", "Read the job description from a file")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", string(models.ModeAnalyze), "One of: analyze, ats_score, cover_letter, tailored_resume")
	cmd.MarkFlagsMutuallyExclusive("job-description", "job-description-file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, a *app, opts analyzeOptions) error {
	jd := opts.jobDescription
	if opts.jobDescriptionFile != "" {
		data, err := os.ReadFile(opts.jobDescriptionFile)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		jd = string(data)
	}

	var doc []byte
	if opts.resumePath != "" {
		data, err := os.ReadFile(opts.resumePath)
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		doc = data
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dispatcher, err := a.newDispatcher(ctx)
	if err != nil {
		return err
	}

	catalog, err := prompts.Load()
	if err != nil {
		return err
	}

	mode := models.Mode(strings.ToLower(strings.TrimSpace(opts.mode)))
	if tmpl, err := catalog.Get(mode); err == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "⏳ "+tmpl.Progress)
	}

	res, err := analysis.New(dispatcher, catalog).Run(ctx, analysis.Input{
		JobDescription: jd,
		Document:       doc,
		Mode:           mode,
	})
	if err != nil {
		return &cliError{err: err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "## %s\n\n%s\n", res.Label, strings.TrimRight(res.Text, "\n"))
	return nil
}

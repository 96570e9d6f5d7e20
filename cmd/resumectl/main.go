// Package main is the resumectl command-line client. It runs the same
// analysis pipeline as the server, against a local PDF, without HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
	"github.com/Shimizu-Technology/resume-ai/internal/config"
	"github.com/Shimizu-Technology/resume-ai/internal/services/analysis"
	"github.com/Shimizu-Technology/resume-ai/internal/services/provider"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// app holds what commands need from the outside world, so tests can swap
// the generation backend for a mock.
type app struct {
	newDispatcher func(ctx context.Context) (analysis.Dispatcher, error)
}

func main() {
	_ = godotenv.Load()

	a := &app{newDispatcher: dispatcherFromEnv}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dispatcherFromEnv builds the configured generation service. Only commands
// that talk to the model call it, so `extract` and `modes` work without keys.
func dispatcherFromEnv(ctx context.Context) (analysis.Dispatcher, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return provider.NewService(ctx, cfg)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Compare a resume PDF against a job description",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error once, without cobra's "Error:" prefix
	}

	root.AddCommand(
		newAnalyzeCmd(a),
		newExtractCmd(),
		newModesCmd(),
	)
	return root
}

// cliError presents a pipeline failure the way the form does: warnings and
// errors get the same user-facing sentence. The cause stays reachable through
// errors.Is.
type cliError struct {
	err error
}

func (e *cliError) Error() string {
	if apperrors.IsWarning(e.err) {
		return "⚠️  " + apperrors.UserMessage(e.err)
	}
	return "❌ " + apperrors.UserMessage(e.err)
}

func (e *cliError) Unwrap() error { return e.err }

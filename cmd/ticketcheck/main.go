package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ticketcheck/ticketcheck/pkg/actions"
	"github.com/ticketcheck/ticketcheck/pkg/log"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "ticketcheck",
	Short: "Enforce ticket references in pull request titles",
	Long: `ticketcheck verifies that a pull request title references a tracking
ticket. When it does not, the title is rewritten from a ticket found in the
branch name, the PR body, or a ticket URL in the body, optionally with an
explanation comment and a link to the ticket.

It is designed to run as a GitHub Action step but also works as a plain CLI
against any pull request.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logLevel
		// The runner sets RUNNER_DEBUG=1 when a workflow is re-run with
		// debug logging; honor it unless a level was given explicitly.
		if level == "" && os.Getenv("RUNNER_DEBUG") == "1" {
			level = "debug"
		}
		log.Init(log.ParseLevel(level))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func main() {
	defer func() { _ = log.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		// Surface the failure on the workflow run as well as stderr.
		actions.ErrorAnnotation(os.Stdout, err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ticketcheck/ticketcheck/pkg/actions"
	"github.com/ticketcheck/ticketcheck/pkg/check"
	"github.com/ticketcheck/ticketcheck/pkg/config"
	"github.com/ticketcheck/ticketcheck/pkg/event"
	"github.com/ticketcheck/ticketcheck/pkg/github"
	"github.com/ticketcheck/ticketcheck/pkg/log"
)

var (
	prRef     string
	eventPath string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check (and fix) the title of a pull request",
	Long: `Check that a pull request title references a ticket, rewriting it
when a ticket can be derived from the branch name or body.

Inside a workflow the pull request comes from the triggering event payload.
For ad-hoc runs, pass --pr owner/repo#123 to fetch it from the API instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Local development convenience; inside a runner there is no .env.
		_ = godotenv.Load()

		cfg, err := config.Load(".")
		if err != nil {
			return err
		}

		patterns, err := cfg.CompilePatterns()
		if err != nil {
			return err
		}

		client, err := github.NewClientFromEnv()
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		var pr *event.PullRequest
		switch {
		case prRef != "":
			ref, err := github.ParseRef(prRef)
			if err != nil {
				return err
			}
			pr, err = client.FetchPR(ctx, ref.Owner, ref.Repo, ref.Number)
			if err != nil {
				if github.IsNotFound(err) {
					return fmt.Errorf("%s not found; check the reference and the token's repository access: %w", ref, err)
				}
				return err
			}
		case eventPath != "":
			pr, err = event.Load(eventPath)
			if err != nil {
				return err
			}
		default:
			pr, err = event.FromEnv()
			if err != nil {
				return err
			}
		}

		log.Debug("checking pull request",
			"pr", fmt.Sprintf("%s/%s#%d", pr.Owner, pr.Repo, pr.Number),
			"author", pr.AuthorLogin)

		res, err := check.New(cfg, patterns, client).Run(ctx, pr)
		if err != nil {
			return err
		}

		return actions.WriteOutputs(map[string]string{
			"outcome":      string(res.Outcome),
			"titleUpdated": fmt.Sprintf("%t", res.Outcome.Updated()),
			"ticketNumber": res.TicketNumber,
		})
	},
}

func init() {
	checkCmd.Flags().StringVar(&prRef, "pr", "", "pull request to check (owner/repo#123), instead of the event payload")
	checkCmd.Flags().StringVar(&eventPath, "event", "", "path to a pull_request event payload (defaults to $GITHUB_EVENT_PATH)")
	rootCmd.AddCommand(checkCmd)
}

package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v68/github"

	"github.com/ticketcheck/ticketcheck/pkg/event"
)

// FetchPR fetches a pull request and converts it into the run snapshot.
// Used in CLI mode; action runs get the snapshot from the event payload.
func (c *Client) FetchPR(ctx context.Context, owner, repo string, number int) (*event.PullRequest, error) {
	pr, _, err := c.GitHubClient().PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("fetch pull request %s/%s#%d: %w", owner, repo, number, err)
	}

	return event.FromGitHub(owner, repo, pr), nil
}

// UpdatePRTitle rewrites the pull request title, leaving every other field
// of the pull request untouched.
func (c *Client) UpdatePRTitle(ctx context.Context, owner, repo string, number int, title string) error {
	_, _, err := c.GitHubClient().PullRequests.Edit(ctx, owner, repo, number, &github.PullRequest{
		Title: &title,
	})
	if err != nil {
		return fmt.Errorf("update pull request title: %w", err)
	}
	return nil
}

// ListReviewBodies returns the body text of every review on the pull
// request, with pagination.
func (c *Client) ListReviewBodies(ctx context.Context, owner, repo string, number int) ([]string, error) {
	opts := &github.ListOptions{PerPage: 100}

	var bodies []string
	for {
		reviews, resp, err := c.GitHubClient().PullRequests.ListReviews(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("list pull request reviews: %w", err)
		}

		for _, review := range reviews {
			bodies = append(bodies, review.GetBody())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return bodies, nil
}

// PostReviewComment posts a plain comment review on the pull request.
func (c *Client) PostReviewComment(ctx context.Context, owner, repo string, number int, body string) error {
	_, _, err := c.GitHubClient().PullRequests.CreateReview(ctx, owner, repo, number, &github.PullRequestReviewRequest{
		Body:  &body,
		Event: github.String("COMMENT"),
	})
	if err != nil {
		return fmt.Errorf("post review comment: %w", err)
	}
	return nil
}

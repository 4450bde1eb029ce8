// Package check implements the ticket policy decision engine: deciding
// whether a pull request title references a ticket, rewriting it from the
// best available source when it does not, and composing the follow-up
// review comments.
package check

import (
	"context"
	"fmt"

	"github.com/ticketcheck/ticketcheck/pkg/config"
	"github.com/ticketcheck/ticketcheck/pkg/event"
	"github.com/ticketcheck/ticketcheck/pkg/log"
	"github.com/ticketcheck/ticketcheck/pkg/ticket"
)

// Platform is the set of operations a check run performs against the
// hosting platform. Per run: UpdatePRTitle is called at most once,
// ListReviewBodies at most once, PostReviewComment zero to two times.
type Platform interface {
	UpdatePRTitle(ctx context.Context, owner, repo string, number int, title string) error
	ListReviewBodies(ctx context.Context, owner, repo string, number int) ([]string, error)
	PostReviewComment(ctx context.Context, owner, repo string, number int, body string) error
}

// Outcome classifies what a run did to the title.
type Outcome string

const (
	// OutcomeExempt means the author bypasses all checks.
	OutcomeExempt Outcome = "exempt"
	// OutcomeAlreadyValid means the title matched the title pattern as-is.
	OutcomeAlreadyValid Outcome = "already-valid"
	// OutcomeUpdatedFromBranch means the title was rewritten with a ticket
	// number extracted from the branch name.
	OutcomeUpdatedFromBranch Outcome = "updated-from-branch"
	// OutcomeUpdatedFromBody means the ticket number came from the PR body.
	OutcomeUpdatedFromBody Outcome = "updated-from-body"
	// OutcomeUpdatedFromBodyURL means the ticket number came from a ticket
	// URL embedded in the PR body.
	OutcomeUpdatedFromBodyURL Outcome = "updated-from-body-url"
	// OutcomeNoTicketFound means no source yielded a ticket; the run
	// succeeds without touching the title.
	OutcomeNoTicketFound Outcome = "no-ticket-found"
)

// Updated reports whether the outcome rewrote the title.
func (o Outcome) Updated() bool {
	switch o {
	case OutcomeUpdatedFromBranch, OutcomeUpdatedFromBody, OutcomeUpdatedFromBodyURL:
		return true
	}
	return false
}

// Result is what one run did.
type Result struct {
	Outcome Outcome

	// NewTitle is the rewritten title when Outcome.Updated().
	NewTitle string

	// TicketNumber is the number extracted from the final title, when the
	// title pattern could extract one.
	TicketNumber string

	// LinkPosted reports whether a ticket link comment was posted (false
	// when the feature is off, no number was extractable, the template
	// lacks its placeholder, or an identical comment already exists).
	LinkPosted bool
}

// Checker runs the ticket policy against one pull request at a time.
type Checker struct {
	cfg      *config.Config
	patterns *config.Patterns
	platform Platform
}

// New creates a Checker. Patterns must already be compiled; config errors
// surface from config.CompilePatterns before any platform write can happen.
func New(cfg *config.Config, patterns *config.Patterns, platform Platform) *Checker {
	return &Checker{cfg: cfg, patterns: patterns, platform: platform}
}

// Run executes the policy against the snapshot. Collaborator failures
// propagate; a missing ticket does not.
func (c *Checker) Run(ctx context.Context, pr *event.PullRequest) (*Result, error) {
	if c.cfg.IsExempt(pr.AuthorLogin) {
		log.Info("author is exempt, skipping all checks", "author", pr.AuthorLogin)
		return &Result{Outcome: OutcomeExempt}, nil
	}

	res := &Result{}
	finalTitle := pr.Title

	if _, ok := c.patterns.Title.Extract(pr.Title); ok {
		res.Outcome = OutcomeAlreadyValid
		log.Debug("title already references a ticket", "title", pr.Title)
	} else if m := c.extractSource(pr); m == nil {
		res.Outcome = OutcomeNoTicketFound
		log.Info("no ticket reference found in branch, body, or body URL; leaving title unchanged",
			"pr", pr.Number)
	} else {
		newTitle := ticket.RenderTitle(c.cfg.TitleFormat, c.cfg.TicketPrefix, m.Number, pr.Title)
		if err := c.platform.UpdatePRTitle(ctx, pr.Owner, pr.Repo, pr.Number, newTitle); err != nil {
			return nil, fmt.Errorf("update title of %s/%s#%d: %w", pr.Owner, pr.Repo, pr.Number, err)
		}

		res.Outcome = outcomeFor(m.Source)
		res.NewTitle = newTitle
		finalTitle = newTitle
		log.Info("rewrote pull request title",
			"pr", pr.Number, "source", m.Source, "ticket", m.Number, "title", newTitle)

		if config.IsEnabled(c.cfg.CommentOnTitleUpdate) {
			if err := c.platform.PostReviewComment(ctx, pr.Owner, pr.Repo, pr.Number, explainRewrite(m.Source)); err != nil {
				return nil, fmt.Errorf("post rewrite explanation on %s/%s#%d: %w", pr.Owner, pr.Repo, pr.Number, err)
			}
		}
	}

	// The link (and the action output) always uses the final title, never
	// whatever a non-title source happened to match.
	if number, ok := c.patterns.Title.Extract(finalTitle); ok {
		res.TicketNumber = number
	}

	if config.IsEnabled(c.cfg.CommentWithTicketLink) && res.TicketNumber != "" {
		posted, err := c.postTicketLink(ctx, pr, res.TicketNumber)
		if err != nil {
			return nil, err
		}
		res.LinkPosted = posted
	}

	return res, nil
}

// extractSource tries branch, body, then body URL, in that fixed order,
// stopping at the first match. Later sources are never evaluated once an
// earlier one matched.
func (c *Checker) extractSource(pr *event.PullRequest) *ticket.Match {
	if m := ticket.ExtractFrom(ticket.SourceBranch, pr.HeadRef, c.patterns.Branch); m != nil {
		return m
	}
	if m := ticket.ExtractFrom(ticket.SourceBody, pr.Body, c.patterns.Body); m != nil {
		return m
	}
	return ticket.ExtractFrom(ticket.SourceBodyURL, pr.Body, c.patterns.BodyURL)
}

// postTicketLink composes the link message and posts it unless an identical
// review body already exists on the pull request.
func (c *Checker) postTicketLink(ctx context.Context, pr *event.PullRequest, number string) (bool, error) {
	msg, ok := linkMessage(c.cfg.TicketLink, number)
	if !ok {
		log.Debug("ticket link template has no %ticketNumber% placeholder, skipping link comment")
		return false, nil
	}

	bodies, err := c.platform.ListReviewBodies(ctx, pr.Owner, pr.Repo, pr.Number)
	if err != nil {
		return false, fmt.Errorf("list reviews of %s/%s#%d: %w", pr.Owner, pr.Repo, pr.Number, err)
	}

	for _, body := range bodies {
		if body == msg {
			log.Debug("identical ticket link comment already posted, skipping", "pr", pr.Number)
			return false, nil
		}
	}

	if err := c.platform.PostReviewComment(ctx, pr.Owner, pr.Repo, pr.Number, msg); err != nil {
		return false, fmt.Errorf("post ticket link on %s/%s#%d: %w", pr.Owner, pr.Repo, pr.Number, err)
	}
	return true, nil
}

func outcomeFor(src ticket.Source) Outcome {
	switch src {
	case ticket.SourceBranch:
		return OutcomeUpdatedFromBranch
	case ticket.SourceBody:
		return OutcomeUpdatedFromBody
	case ticket.SourceBodyURL:
		return OutcomeUpdatedFromBodyURL
	default:
		return OutcomeNoTicketFound
	}
}

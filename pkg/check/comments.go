package check

import "github.com/ticketcheck/ticketcheck/pkg/ticket"

// linkPreamble opens every ticket link comment. The full message (preamble
// plus rendered link) is compared byte-for-byte against existing review
// bodies for deduplication, so changing it would re-trigger one comment per
// open PR.
const linkPreamble = "See the ticket for this pull request: "

// Rewrite explanations, one per source. Downstream tooling matches on the
// source-naming substrings ("branch name", "body", "ticket URL").
const (
	explainBranch  = "The pull request title was updated to reference the ticket found in the branch name."
	explainBody    = "The pull request title was updated to reference the ticket found in the pull request body."
	explainBodyURL = "The pull request title was updated to reference the ticket URL found in the pull request body."
)

// explainRewrite returns the explanation comment for a title rewrite from
// the given source.
func explainRewrite(src ticket.Source) string {
	switch src {
	case ticket.SourceBranch:
		return explainBranch
	case ticket.SourceBodyURL:
		return explainBodyURL
	default:
		return explainBody
	}
}

// linkMessage renders the ticket link comment. It reports false when the
// template lacks the %ticketNumber% placeholder, in which case the link
// feature is silently skipped.
func linkMessage(template, number string) (string, bool) {
	link, ok := ticket.RenderLink(template, number)
	if !ok {
		return "", false
	}
	return linkPreamble + link, true
}

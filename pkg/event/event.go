// Package event builds the immutable pull request snapshot a check run
// operates on. In a GitHub Actions environment the snapshot comes from the
// workflow event payload referenced by GITHUB_EVENT_PATH.
package event

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v68/github"
)

// Environment variables set by the GitHub Actions runner.
const (
	EventPathEnv  = "GITHUB_EVENT_PATH"
	RepositoryEnv = "GITHUB_REPOSITORY"
)

// PullRequest is the snapshot of one pull request for one run. Nothing in it
// mutates; a rewritten title shows up only in the next event delivery.
type PullRequest struct {
	Owner       string
	Repo        string
	Number      int
	Title       string
	Body        string
	HeadRef     string
	AuthorLogin string
	AuthorType  string // "User", "Organization" or "Bot"
}

// FromGitHub converts a go-github pull request into a snapshot.
func FromGitHub(owner, repo string, pr *github.PullRequest) *PullRequest {
	out := &PullRequest{
		Owner:  owner,
		Repo:   repo,
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
	}

	if head := pr.GetHead(); head != nil {
		out.HeadRef = head.GetRef()
	}
	if user := pr.GetUser(); user != nil {
		out.AuthorLogin = user.GetLogin()
		out.AuthorType = user.GetType()
	}

	return out
}

// Load parses a pull_request event payload file into a snapshot.
func Load(path string) (*PullRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event payload: %w", err)
	}

	var ev github.PullRequestEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("parse event payload: %w", err)
	}

	pr := ev.GetPullRequest()
	if pr == nil {
		return nil, fmt.Errorf("event payload %s has no pull_request", path)
	}

	owner, repo := ownerRepo(&ev)
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("event payload %s has no repository", path)
	}

	out := FromGitHub(owner, repo, pr)
	if out.Number == 0 {
		out.Number = ev.GetNumber()
	}
	return out, nil
}

// FromEnv loads the snapshot for the event that triggered the current
// workflow run.
func FromEnv() (*PullRequest, error) {
	path := os.Getenv(EventPathEnv)
	if path == "" {
		return nil, fmt.Errorf("%s is not set; not running inside a workflow?", EventPathEnv)
	}
	return Load(path)
}

// ownerRepo resolves the repository slug from the payload, falling back to
// the GITHUB_REPOSITORY variable when the payload omits it.
func ownerRepo(ev *github.PullRequestEvent) (string, string) {
	if repo := ev.GetRepo(); repo != nil {
		if full := repo.GetFullName(); full != "" {
			if owner, name, ok := strings.Cut(full, "/"); ok {
				return owner, name
			}
		}
		if owner := repo.GetOwner(); owner != nil && repo.GetName() != "" {
			return owner.GetLogin(), repo.GetName()
		}
	}

	if full := os.Getenv(RepositoryEnv); full != "" {
		if owner, name, ok := strings.Cut(full, "/"); ok {
			return owner, name
		}
	}

	return "", ""
}

// Package github is the platform collaborator for ticketcheck: fetching pull
// request state, rewriting titles, and listing/posting review comments
// through the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the default GitHub API base URL.
	DefaultBaseURL = "https://api.github.com"

	// TokenEnv is the environment variable for the GitHub token.
	TokenEnv = "GITHUB_TOKEN"

	// InputTokenEnv is the token variable when passed as an action input.
	InputTokenEnv = "INPUT_TOKEN"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL for the GitHub API (used by tests and
// GitHub Enterprise installs).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets a custom HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// Client wraps an authenticated go-github client. The underlying SDK client
// is lazy-loaded on first use so that options can finish configuring the
// transport first.
type Client struct {
	token        string
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	githubClient *github.Client
}

// NewClient creates a new GitHub API client with the given token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewClientFromEnv creates a client using the token from the environment.
// GITHUB_TOKEN wins over the INPUT_TOKEN action input.
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	token := os.Getenv(TokenEnv)
	if token == "" {
		token = os.Getenv(InputTokenEnv)
	}
	if token == "" {
		return nil, fmt.Errorf("%s or %s environment variable is required", TokenEnv, InputTokenEnv)
	}

	return NewClient(token, opts...), nil
}

// GitHubClient returns the underlying go-github client (lazy-loaded).
func (c *Client) GitHubClient() *github.Client {
	if c.githubClient == nil {
		httpClient := c.httpClient
		if httpClient == nil {
			ctx := context.Background()
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token})
			httpClient = oauth2.NewClient(ctx, ts)
		}
		httpClient.Timeout = c.timeout
		c.githubClient = github.NewClient(httpClient)

		if c.baseURL != DefaultBaseURL && c.baseURL != "" {
			baseURL := c.baseURL
			// go-github requires a trailing slash on the base URL
			if baseURL[len(baseURL)-1] != '/' {
				baseURL += "/"
			}
			if parsed, err := url.Parse(baseURL); err == nil {
				c.githubClient.BaseURL = parsed
			}
		}
	}
	return c.githubClient
}

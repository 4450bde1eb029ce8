package github

import (
	"errors"
	"net/http"

	"github.com/google/go-github/v68/github"
)

// IsNotFound reports whether err is a GitHub API 404. A 404 on a pull
// request usually means the token lacks access to the repository.
func IsNotFound(err error) bool {
	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) {
		return apiErr.Response != nil && apiErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}

// IsAuthentication reports whether err is a 401/403 authentication or
// permission failure. Rate limit rejections are excluded.
func IsAuthentication(err error) bool {
	if IsRateLimited(err) {
		return false
	}
	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		code := apiErr.Response.StatusCode
		return code == http.StatusUnauthorized || code == http.StatusForbidden
	}
	return false
}

// IsRateLimited reports whether err is a primary or secondary rate limit
// rejection.
func IsRateLimited(err error) bool {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *github.AbuseRateLimitError
	return errors.As(err, &abuseErr)
}

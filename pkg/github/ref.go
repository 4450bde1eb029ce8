package github

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// PR ref patterns:
	// - owner/repo#123
	// - owner/repo/pull/123
	// - owner/repo/pr/123
	prRefHash  = regexp.MustCompile(`^([^/]+)/([^/#]+)#(\d+)$`)
	prRefPull  = regexp.MustCompile(`^([^/]+)/([^/]+)/pull/(\d+)$`)
	prRefShort = regexp.MustCompile(`^([^/]+)/([^/]+)/pr/(\d+)$`)
)

// Ref identifies one pull request.
type Ref struct {
	Owner  string
	Repo   string
	Number int
}

// ParseRef parses a pull request reference string.
// Supported formats:
//   - owner/repo#123
//   - owner/repo/pull/123
//   - owner/repo/pr/123
func ParseRef(target string) (*Ref, error) {
	target = strings.TrimSpace(target)

	for _, pattern := range []*regexp.Regexp{prRefHash, prRefPull, prRefShort} {
		if matches := pattern.FindStringSubmatch(target); matches != nil {
			num, _ := strconv.Atoi(matches[3])
			return &Ref{
				Owner:  matches[1],
				Repo:   matches[2],
				Number: num,
			}, nil
		}
	}

	return nil, fmt.Errorf("invalid pull request reference %q (expected owner/repo#123, owner/repo/pull/123, or owner/repo/pr/123)", target)
}

// String returns the canonical form of the reference.
func (r *Ref) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

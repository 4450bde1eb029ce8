// Package ticket implements ticket-identifier extraction from pull request
// metadata. A pattern captures the ticket number through a named group; the
// extracted number is combined with a configured prefix and template to form
// the rewritten PR title.
package ticket

import (
	"fmt"
	"regexp"
	"strings"
)

// GroupName is the named capture group a pattern must expose for extraction
// to produce a result.
const GroupName = "ticketNumber"

// Source identifies which candidate text supplied a ticket number.
type Source string

const (
	// SourceTitle is the pull request title.
	SourceTitle Source = "title"
	// SourceBranch is the head branch name.
	SourceBranch Source = "branch"
	// SourceBody is the pull request body.
	SourceBody Source = "body"
	// SourceBodyURL is a ticket URL embedded in the pull request body.
	SourceBodyURL Source = "bodyURL"
)

// Match is a successful extraction: the captured ticket number tagged with
// the source it came from.
type Match struct {
	Source Source
	Number string
}

// Pattern is a compiled extraction pattern. The zero value of *Pattern (nil)
// never matches, which is how unset optional patterns behave.
type Pattern struct {
	re    *regexp.Regexp
	group int // submatch index of the ticketNumber group, -1 when absent
}

// Compile builds a Pattern from a user-supplied expression and JS-style flag
// letters. Supported flags are i (case-insensitive), m (multi-line) and
// s (dot matches newline). The flags g and u are accepted and ignored:
// extraction only ever needs the first match, and Go patterns are
// Unicode-aware by default. Any other flag letter is a configuration error,
// as is malformed expression syntax.
func Compile(expr, flags string) (*Pattern, error) {
	var mode strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			mode.WriteRune(f)
		case 'g', 'u':
			// No equivalent needed in Go's regexp.
		default:
			return nil, fmt.Errorf("unsupported pattern flag %q", string(f))
		}
	}

	full := expr
	if mode.Len() > 0 {
		full = "(?" + mode.String() + ")" + expr
	}

	re, err := regexp.Compile(full)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}

	group := -1
	for i, name := range re.SubexpNames() {
		if name == GroupName {
			group = i
			break
		}
	}

	return &Pattern{re: re, group: group}, nil
}

// MustCompile is Compile for patterns known to be valid, mainly defaults and
// tests. It panics on error.
func MustCompile(expr, flags string) *Pattern {
	p, err := Compile(expr, flags)
	if err != nil {
		panic(err)
	}
	return p
}

// Extract applies the pattern to text and returns the captured ticket number.
// It reports no match when the pattern does not match, when the pattern has
// no ticketNumber group, or when the group did not participate in the match.
// A pattern without the named group therefore degrades silently instead of
// failing the run.
func (p *Pattern) Extract(text string) (string, bool) {
	if p == nil || p.group < 0 {
		return "", false
	}

	m := p.re.FindStringSubmatch(text)
	if m == nil || p.group >= len(m) || m[p.group] == "" {
		return "", false
	}
	return m[p.group], true
}

// ExtractFrom applies the pattern to the candidate text for the given source
// and tags the result. It returns nil when nothing was extracted.
func ExtractFrom(src Source, text string, p *Pattern) *Match {
	number, ok := p.Extract(text)
	if !ok {
		return nil
	}
	return &Match{Source: src, Number: number}
}

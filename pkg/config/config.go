// Package config provides the ticketcheck configuration. Options can come
// from three places with increasing precedence: built-in defaults, a
// .ticketcheck.yaml file in the repository, and GitHub Action inputs exposed
// as INPUT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ticketcheck/ticketcheck/pkg/ticket"
)

// ConfigFile is the name of the optional repository-level configuration file.
const ConfigFile = ".ticketcheck.yaml"

// Config holds every recognized option. Boolean features are kept as raw
// strings and interpreted through IsEnabled so that only the exact literal
// "true" turns a feature on.
type Config struct {
	// TitlePattern matches an already-valid PR title. A title matching it is
	// never rewritten.
	TitlePattern      string `env:"INPUT_TITLEPATTERN" yaml:"titlePattern"`
	TitlePatternFlags string `env:"INPUT_TITLEPATTERNFLAGS" yaml:"titlePatternFlags"`

	// BranchPattern extracts a ticket number from the head branch name.
	BranchPattern      string `env:"INPUT_BRANCHPATTERN" yaml:"branchPattern"`
	BranchPatternFlags string `env:"INPUT_BRANCHPATTERNFLAGS" yaml:"branchPatternFlags"`

	// BodyPattern extracts a ticket number from the PR body.
	BodyPattern      string `env:"INPUT_BODYPATTERN" yaml:"bodyPattern"`
	BodyPatternFlags string `env:"INPUT_BODYPATTERNFLAGS" yaml:"bodyPatternFlags"`

	// BodyURLPattern extracts a ticket number from a ticket URL embedded in
	// the PR body. Empty disables this source.
	BodyURLPattern      string `env:"INPUT_BODYURLPATTERN" yaml:"bodyURLPattern"`
	BodyURLPatternFlags string `env:"INPUT_BODYURLPATTERNFLAGS" yaml:"bodyURLPatternFlags"`

	// TitleFormat is the rewrite template. Placeholders: %prefix%, %id%,
	// %title%.
	TitleFormat string `env:"INPUT_TITLEFORMAT" yaml:"titleFormat"`

	// TicketPrefix is prepended to the extracted number via %prefix%.
	TicketPrefix string `env:"INPUT_TICKETPREFIX" yaml:"ticketPrefix"`

	// ExemptUsers is a comma-separated list of author logins that bypass all
	// checks.
	ExemptUsers string `env:"INPUT_EXEMPTUSERS" yaml:"exemptUsers"`

	// CommentOnTitleUpdate posts an explanation comment after a rewrite when
	// set to "true".
	CommentOnTitleUpdate string `env:"INPUT_COMMENTONTITLEUPDATE" yaml:"commentOnTitleUpdate"`

	// CommentWithTicketLink posts a ticket link comment when set to "true".
	CommentWithTicketLink string `env:"INPUT_COMMENTWITHTICKETLINK" yaml:"commentWithTicketLink"`

	// TicketLink is the link template. It must contain %ticketNumber% for a
	// link comment to be produced.
	TicketLink string `env:"INPUT_TICKETLINK" yaml:"ticketLink"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TitlePattern:  `^(?P<ticketNumber>[A-Z][A-Z0-9]+-[0-9]+)`,
		BranchPattern: `^(?P<ticketNumber>[A-Z][A-Z0-9]+-[0-9]+)`,
		BodyPattern:   `\b(?P<ticketNumber>[A-Z][A-Z0-9]+-[0-9]+)\b`,
		TitleFormat:   "%prefix%%id%: %title%",
	}
}

// Load builds the effective configuration for a run: defaults, overlaid by
// the repository config file found from dir upward (when present), overlaid
// by INPUT_* environment variables.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path, err := findConfigPath(dir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse action inputs: %w", err)
	}

	return &cfg, nil
}

// findConfigPath searches for .ticketcheck.yaml in dir and its parents.
// It returns the empty string when no config file exists.
func findConfigPath(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}

	for {
		path := filepath.Join(absDir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return "", nil
		}
		absDir = parent
	}
}

// Patterns holds the compiled extraction patterns, one per source. Entries
// for unset patterns are nil and never match.
type Patterns struct {
	Title   *ticket.Pattern
	Branch  *ticket.Pattern
	Body    *ticket.Pattern
	BodyURL *ticket.Pattern
}

// CompilePatterns compiles all configured patterns eagerly so that malformed
// expressions fail the run before any write to the platform happens.
func (c *Config) CompilePatterns() (*Patterns, error) {
	p := &Patterns{}

	var err error
	if p.Title, err = compileOptional(c.TitlePattern, c.TitlePatternFlags); err != nil {
		return nil, fmt.Errorf("titlePattern: %w", err)
	}
	if p.Branch, err = compileOptional(c.BranchPattern, c.BranchPatternFlags); err != nil {
		return nil, fmt.Errorf("branchPattern: %w", err)
	}
	if p.Body, err = compileOptional(c.BodyPattern, c.BodyPatternFlags); err != nil {
		return nil, fmt.Errorf("bodyPattern: %w", err)
	}
	if p.BodyURL, err = compileOptional(c.BodyURLPattern, c.BodyURLPatternFlags); err != nil {
		return nil, fmt.Errorf("bodyURLPattern: %w", err)
	}

	return p, nil
}

func compileOptional(expr, flags string) (*ticket.Pattern, error) {
	if expr == "" {
		return nil, nil
	}
	return ticket.Compile(expr, flags)
}

// IsEnabled reports whether a boolean-as-string option is on. Only the exact
// literal "true" enables a feature; "1", "yes", "TRUE" and the empty string
// all leave it off.
func IsEnabled(raw string) bool {
	return raw == "true"
}

// ExemptLogins returns the configured exempt author logins, trimmed, with
// empty entries dropped.
func (c *Config) ExemptLogins() []string {
	var out []string
	for _, login := range strings.Split(c.ExemptUsers, ",") {
		login = strings.TrimSpace(login)
		if login != "" {
			out = append(out, login)
		}
	}
	return out
}

// IsExempt reports whether the author login bypasses all checks. GitHub
// logins are case-insensitive, so the comparison is too.
func (c *Config) IsExempt(login string) bool {
	for _, exempt := range c.ExemptLogins() {
		if strings.EqualFold(exempt, login) {
			return true
		}
	}
	return false
}

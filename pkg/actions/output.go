// Package actions implements the GitHub Actions runner surface: step
// outputs and workflow error annotations.
package actions

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// OutputEnv points at the file the runner collects step outputs from.
const OutputEnv = "GITHUB_OUTPUT"

// WriteOutputs appends step outputs to the GITHUB_OUTPUT file when running
// inside a workflow. Outside of one (the variable is unset) it is a no-op.
func WriteOutputs(values map[string]string) error {
	path := strings.TrimSpace(os.Getenv(OutputEnv))
	if path == "" || len(values) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("open %s file: %w", OutputEnv, err)
	}
	defer func() { _ = f.Close() }()

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, sanitize(values[key])); err != nil {
			return fmt.Errorf("write step output %q: %w", key, err)
		}
	}
	return nil
}

// sanitize escapes newlines per the runner's single-line output format.
func sanitize(value string) string {
	value = strings.ReplaceAll(value, "\r", "%0D")
	value = strings.ReplaceAll(value, "\n", "%0A")
	return value
}

// ErrorAnnotation writes a ::error:: workflow command so the failure shows
// up on the run summary and the PR checks tab.
func ErrorAnnotation(w io.Writer, msg string) {
	fmt.Fprintf(w, "::error::%s\n", sanitize(msg))
}

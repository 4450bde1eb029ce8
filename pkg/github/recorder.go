package github

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/dnaeon/go-vcr.v2/cassette"
	vcr "gopkg.in/dnaeon/go-vcr.v2/recorder"
)

// recorderMode determines whether we're recording or replaying.
type recorderMode int

const (
	// modeReplay uses existing fixtures only.
	modeReplay recorderMode = iota
	// modeRecord records new fixtures (overwrites existing).
	modeRecord
)

// getRecorderMode determines the recorder mode from the environment.
// TICKETCHECK_VCR_MODE=record records new fixtures; the default replays.
func getRecorderMode() recorderMode {
	if os.Getenv("TICKETCHECK_VCR_MODE") == "record" {
		return modeRecord
	}
	return modeReplay
}

// NewRecorder creates a VCR recorder for testing GitHub API interactions.
//
// In replay mode (default) it serves recorded fixtures from
// testdata/fixtures/; in record mode it records live API interactions.
// Recording requires a real token:
//
//	TICKETCHECK_VCR_MODE=record GITHUB_TOKEN=your_token go test ./pkg/github/...
func NewRecorder(t *testing.T, name string) (*Recorder, error) {
	t.Helper()

	mode := getRecorderMode()

	// go-vcr appends ".yaml" to the fixture path itself
	fixturePath := filepath.Join("testdata", "fixtures", name)

	vcrMode := vcr.ModeReplaying
	if mode == modeRecord {
		vcrMode = vcr.ModeRecording
	}

	r, err := vcr.NewAsMode(fixturePath, vcrMode, nil)
	if err != nil {
		if errors.Is(err, cassette.ErrCassetteNotFound) {
			return nil, fmt.Errorf("cassette %q not found: %w", fixturePath, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to create recorder: %w", err)
	}

	// Keep tokens out of committed cassettes
	r.AddSaveFilter(func(i *cassette.Interaction) error {
		delete(i.Request.Headers, "Authorization")
		return nil
	})

	return &Recorder{recorder: r, mode: mode}, nil
}

// Recorder wraps a go-vcr recorder.
type Recorder struct {
	recorder *vcr.Recorder
	mode     recorderMode
}

// Stop stops the recorder and flushes any recorded interactions.
func (r *Recorder) Stop() error {
	return r.recorder.Stop()
}

// IsRecording reports whether the recorder captures live traffic.
func (r *Recorder) IsRecording() bool {
	return r.mode == modeRecord
}

// HTTPClient returns an HTTP client that routes through the recorder.
func (r *Recorder) HTTPClient() *http.Client {
	return &http.Client{Transport: r.recorder}
}

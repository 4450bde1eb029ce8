package actions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteOutputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv(OutputEnv, path)

	err := WriteOutputs(map[string]string{
		"titleUpdated": "true",
		"ticketNumber": "TEST-123",
	})
	if err != nil {
		t.Fatalf("WriteOutputs() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "ticketNumber=TEST-123\ntitleUpdated=true\n"
	if string(data) != want {
		t.Errorf("output file = %q, want %q", string(data), want)
	}
}

func TestWriteOutputs_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	if err := os.WriteFile(path, []byte("existing=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(OutputEnv, path)

	if err := WriteOutputs(map[string]string{"k": "v"}); err != nil {
		t.Fatalf("WriteOutputs() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "existing=1\nk=v\n" {
		t.Errorf("output file = %q, want appended content", string(data))
	}
}

func TestWriteOutputs_OutsideWorkflow(t *testing.T) {
	t.Setenv(OutputEnv, "")

	if err := WriteOutputs(map[string]string{"k": "v"}); err != nil {
		t.Errorf("WriteOutputs() outside a workflow should be a no-op, got %v", err)
	}
}

func TestWriteOutputs_SanitizesNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv(OutputEnv, path)

	if err := WriteOutputs(map[string]string{"msg": "line1\r\nline2"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "msg=line1%0D%0Aline2\n" {
		t.Errorf("output file = %q, want escaped newlines", string(data))
	}
}

func TestErrorAnnotation(t *testing.T) {
	var sb strings.Builder
	ErrorAnnotation(&sb, "pattern failed to compile")

	if got, want := sb.String(), "::error::pattern failed to compile\n"; got != want {
		t.Errorf("ErrorAnnotation() = %q, want %q", got, want)
	}
}

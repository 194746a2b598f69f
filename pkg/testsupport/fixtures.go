package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// LoadControls reads a JSON fixture holding the flat list of control paths a
// rendered pane exposes. Testing helpers fail the test on error to keep
// contract tests concise.
func LoadControls(t *testing.T, path string) []string {
	t.Helper()

	controls, err := LoadControlsFromPath(path)
	if err != nil {
		t.Fatalf("load controls: %v", err)
	}
	return controls
}

// LoadControlsFromPath returns the control paths without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadControlsFromPath(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("testsupport: controls path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read controls: %w", err)
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal controls: %w", err)
	}
	return out, nil
}

// LoadSnapshot reads a JSON fixture into the nested map shape form snapshots
// use everywhere in this module.
func LoadSnapshot(t *testing.T, path string) map[string]any {
	t.Helper()

	snapshot, err := LoadSnapshotFromPath(path)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	return snapshot
}

// LoadSnapshotFromPath reads a JSON fixture into a snapshot, returning an
// error for callers managing setup outside of *testing.T.
func LoadSnapshotFromPath(path string) (map[string]any, error) {
	if path == "" {
		return nil, errors.New("testsupport: snapshot path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read snapshot: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal snapshot: %w", err)
	}
	return out, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Package testsupport provides golden-file helpers shared by the package
// tests.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Context returns the background context; a helper so contract tests read
// uniformly.
func Context() context.Context {
	return context.Background()
}

// WriteGolden writes data to a golden file when UPDATE_GOLDENS is set and
// reports whether it did so, letting callers short-circuit the comparison.
func WriteGolden(t *testing.T, path string, data []byte) bool {
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

// MustReadGolden loads a golden file, failing the test when missing.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v (run with UPDATE_GOLDENS=1 to create)", path, err)
	}
	return data
}

// CompareGolden diffs want against got, returning an empty string when they
// match.
func CompareGolden(want, got string) string {
	return cmp.Diff(want, got)
}

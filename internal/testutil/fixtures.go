// Package testutil provides test helper utilities for dice tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempProject creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. Directories are created as needed.
// The directory is automatically cleaned up when the test finishes.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// ConfiguredProject returns a .dice/config.yaml that starts on 3d20 with
// sound and logging switched off.
func ConfiguredProject() map[string]string {
	return map[string]string{
		".dice/config.yaml": `version: 1
session:
  die: D20
  count: 3
  show_history: false
sound:
  enabled: false
log:
  enabled: false
`,
	}
}

// SequenceSource replays fixed draws. Each value is returned as-is from
// IntN, so a draw of 0 rolls a 1. It cycles when exhausted.
type SequenceSource struct {
	Draws []int
	next  int
}

// NewSequenceSource returns a source that rolls the given face values.
// Faces are 1-based; they are converted to 0-based draws.
func NewSequenceSource(faces ...int) *SequenceSource {
	draws := make([]int, len(faces))
	for i, f := range faces {
		draws[i] = f - 1
	}
	return &SequenceSource{Draws: draws}
}

// IntN returns the next draw, reduced modulo n.
func (s *SequenceSource) IntN(n int) int {
	if len(s.Draws) == 0 {
		return 0
	}
	v := s.Draws[s.next%len(s.Draws)]
	s.next++
	return v % n
}

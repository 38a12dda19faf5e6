package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes a file under dir, creating parent directories as needed.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// WriteSourceFiles creates n empty source files with the given extension
// under dir, so tests can control file counts and extension histograms.
func WriteSourceFiles(t *testing.T, dir, ext string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		WriteFile(t, dir, fmt.Sprintf("src%d.%s", i, ext), "")
	}
}

// NodeProject writes a package.json declaring the given dependencies.
func NodeProject(t *testing.T, dir string, deps ...string) {
	t.Helper()

	manifest := `{"dependencies": {`
	for i, dep := range deps {
		if i > 0 {
			manifest += ", "
		}
		manifest += fmt.Sprintf("%q: %q", dep, "*")
	}
	manifest += `}}`
	WriteFile(t, dir, "package.json", manifest)
}

package workspace

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/teamforge/teamforge-ctl/internal/errors"
	"github.com/teamforge/teamforge-ctl/internal/logging"
)

// runGit executes a git command and returns its combined output. Failures
// include the shellquoted command line for diagnosis.
func runGit(args ...string) (string, error) {
	logging.Debug("running git", "args", shellquote.Join(args...))

	cmd := exec.Command("git", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		cmdLine := shellquote.Join(append([]string{"git"}, args...)...)
		return "", errors.GitError(fmt.Sprintf("%s: %s", cmdLine, strings.TrimSpace(string(output))), err)
	}
	return string(output), nil
}

// IsRepo reports whether path is a git repository.
// .git can be a directory (normal repo) or a file (worktree).
func IsRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// Clone clones the repository at url into path.
func Clone(url, path string) error {
	_, err := runGit("clone", url, path)
	return err
}

// Status returns the paths reported by git status for the repository at
// path, one entry per changed file.
func Status(path string) ([]string, error) {
	output, err := runGit("-C", path, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseStatus(output), nil
}

// parseStatus extracts file paths from porcelain status output.
func parseStatus(output string) []string {
	var files []string
	for _, line := range strings.Split(output, "\n") {
		// Porcelain format: two status columns, a space, then the path.
		if len(line) > 3 {
			files = append(files, strings.TrimSpace(line[3:]))
		}
	}
	return files
}

// Commit stages the given files (all changes when none are given) and
// creates a commit with the message.
func Commit(path, message string, files []string) error {
	if message == "" {
		return errors.ValidationError("commit message cannot be empty")
	}

	addArgs := []string{"-C", path, "add"}
	if len(files) == 0 {
		addArgs = append(addArgs, "-A")
	} else {
		addArgs = append(addArgs, "--")
		addArgs = append(addArgs, files...)
	}
	if _, err := runGit(addArgs...); err != nil {
		return err
	}

	_, err := runGit("-C", path, "commit", "-m", message)
	return err
}

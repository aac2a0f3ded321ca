package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// NewServiceCheckout creates a git repository at dir with one commit on
// branch, simulating a service cloned under the source root.
func NewServiceCheckout(tb testing.TB, dir, branch string) {
	tb.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		tb.Fatalf("Failed to create checkout %s: %v", dir, err)
	}

	runGitCommand(tb, dir, "init")
	runGitCommand(tb, dir, "config", "user.email", "test@example.com")
	runGitCommand(tb, dir, "config", "user.name", "Test User")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# "+filepath.Base(dir)+"\n"), 0644); err != nil {
		tb.Fatalf("Failed to create README: %v", err)
	}
	runGitCommand(tb, dir, "add", "README.md")
	runGitCommand(tb, dir, "commit", "-m", "Initial commit")

	// git might default to "main" or "master"
	runGitCommand(tb, dir, "branch", "-M", branch)
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}

package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// Version is stamped into the binary under test
const Version = "integration"

// commandTimeout bounds a single CLI invocation; up waits for builds and
// down for SIGTERM grace periods, so it is generous
const commandTimeout = 60 * time.Second

// CommandResult is the outcome of one cukesvc invocation
type CommandResult struct {
	Args     []string
	ExitCode int
	Stderr   string
	Stdout   string
	TimedOut bool
}

// String renders the invocation for assertion messages
func (r CommandResult) String() string {
	return fmt.Sprintf("cukesvc %s (exit %d)\nstdout:\n%s\nstderr:\n%s",
		strings.Join(r.Args, " "), r.ExitCode, r.Stdout, r.Stderr)
}

type builtBinary struct {
	dir  string
	path string
}

var build = sync.OnceValues(func() (builtBinary, error) {
	root, err := moduleRoot()
	if err != nil {
		return builtBinary{}, err
	}

	dir, err := os.MkdirTemp("", "cukesvc-integration-*")
	if err != nil {
		return builtBinary{}, fmt.Errorf("failed to create build directory: %w", err)
	}

	bin := builtBinary{dir: dir, path: filepath.Join(dir, "cukesvc")}
	cmd := exec.Command("go", "build", "-ldflags", "-X main.Version="+Version, "-o", bin.path, "./cmd")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(dir)
		return builtBinary{}, fmt.Errorf("go build failed: %w\n%s", err, out)
	}
	return bin, nil
})

// BuildBinary compiles cukesvc once per test run and returns its path.
// Call this from TestMain.
func BuildBinary() (string, error) {
	bin, err := build()
	return bin.path, err
}

// CleanupBinary removes the compiled binary
func CleanupBinary() error {
	bin, err := build()
	if err != nil || bin.dir == "" {
		return nil
	}
	return os.RemoveAll(bin.dir)
}

// RunCommand runs cukesvc in the environment's test harness directory
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	bin, err := build()
	if err != nil {
		tb.Fatalf("cukesvc binary unavailable: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin.path, args...)
	cmd.Dir = env.WorkDir
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{Args: args}
	err = cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.ExitCode = -1
		result.TimedOut = true
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Fatalf("failed to run cukesvc %v: %v", args, err)
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if result.TimedOut {
		tb.Errorf("timed out after %s: %s", commandTimeout, result)
	}
	return result
}

// moduleRoot locates the directory of the go.mod enclosing the harness
func moduleRoot() (string, error) {
	out, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", fmt.Errorf("failed to locate go.mod: %w", err)
	}
	gomod := strings.TrimSpace(string(out))
	if gomod == "" || gomod == os.DevNull {
		return "", errors.New("integration tests must run inside the cukesvc module")
	}
	return filepath.Dir(gomod), nil
}

// Package cmdrun runs external tools with a deadline and classifies timeouts.
package cmdrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
)

// Command describes one external tool invocation
type Command struct {
	Args    []string
	Dir     string
	Env     []string // Appended to the inherited environment when set
	Name    string
	Timeout time.Duration
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Run executes the command and returns its combined output
func Run(ctx context.Context, c Command) ([]byte, error) {
	var out bytes.Buffer
	err := run(ctx, c, &out, &out)
	return out.Bytes(), err
}

// Output executes the command and returns stdout only; stderr is folded
// into the returned error
func Output(ctx context.Context, c Command) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	err := run(ctx, c, &stdout, &stderr)
	if err != nil && stderr.Len() > 0 {
		err = fmt.Errorf("%w\nOutput: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), err
}

func run(ctx context.Context, c Command, stdout, stderr *bytes.Buffer) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(cmd.Environ(), c.Env...)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logging.Logger.Debug("Running command", "command", c.String(), "dir", c.Dir, "timeout", c.Timeout)

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		logging.Logger.Debug("Command finished", "command", c.String(), "duration", elapsed)
		return nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logging.Logger.Error("Command timed out", "command", c.String(), "timeout", c.Timeout)
		return fmt.Errorf("%s after %v: %w", c.String(), c.Timeout, domain.ErrTimeout)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", c.String(), ctxErr)
	}

	logging.Logger.Debug("Command failed", "command", c.String(), "error", err, "duration", elapsed)
	return fmt.Errorf("%s: %w", c.String(), err)
}

// ExitCode extracts the exit status of a failed command, or -1
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

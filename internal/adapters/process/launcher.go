package process

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
)

// launchScript sources the environment file, then replaces the shell with
// the service binary so the recorded pid is the service itself
const launchScript = `. "$1" && exec "$2"`

// ShellLauncher implements ports.ProcessLauncher by starting services through
// a POSIX shell in their own process group
type ShellLauncher struct {
	shell string
}

// Compile-time interface verification
var _ ports.ProcessLauncher = (*ShellLauncher)(nil)

// NewShellLauncher creates a launcher using /bin/sh
func NewShellLauncher() *ShellLauncher {
	return &ShellLauncher{shell: "/bin/sh"}
}

// Launch implements ProcessLauncher.Launch. Output of the service is appended
// to spec.LogPath. The child is reaped by a background goroutine; the caller
// never waits for it.
func (l *ShellLauncher) Launch(ctx context.Context, spec domain.LaunchSpec) (*domain.ProcessHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(spec.LogPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(spec.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open service log: %w", err)
	}

	cmd := exec.Command(l.shell, "-c", launchScript, spec.Service, spec.EnvFile, spec.BinaryPath)
	cmd.Dir = spec.Dir
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to start %s: %w", spec.Service, err)
	}

	pid := cmd.Process.Pid
	handle := &domain.ProcessHandle{
		BinaryPath: spec.BinaryPath,
		ID:         uuid.New().String(),
		LogPath:    spec.LogPath,
		PGID:       pid, // Setpgid with Pgid 0 makes the child its own group leader
		PID:        pid,
		RunID:      spec.RunID,
		Service:    spec.Service,
		StartedAt:  time.Now().UTC(),
	}

	logging.Logger.Info("Service started", "service", spec.Service, "pid", pid, "log", spec.LogPath)

	go func() {
		err := cmd.Wait()
		logFile.Close()
		if err != nil {
			logging.Logger.Info("Service exited", "service", spec.Service, "pid", pid, "error", err)
			return
		}
		logging.Logger.Info("Service exited", "service", spec.Service, "pid", pid)
	}()

	return handle, nil
}

package build

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gocart/cukesvc/internal/adapters/cmdrun"
	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
)

// Variables exported to the build command
const (
	EnvBinary  = "CUKESVC_BINARY"
	EnvService = "CUKESVC_SERVICE"
)

// CommandBuilder implements ports.ServiceBuilder by running a configured
// build command inside the service checkout
type CommandBuilder struct {
	command []string
	timeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.ServiceBuilder = (*CommandBuilder)(nil)

// NewCommandBuilder creates a builder for argv command (e.g. godep go build)
func NewCommandBuilder(command []string, timeout time.Duration) *CommandBuilder {
	return &CommandBuilder{command: append([]string(nil), command...), timeout: timeout}
}

// Build implements ServiceBuilder.Build. The command must leave the binary
// at svc.BinaryPath(), which is what go build does for a checkout named
// after the service.
func (b *CommandBuilder) Build(ctx context.Context, svc domain.Service) error {
	if len(b.command) == 0 {
		return fmt.Errorf("no build command configured: %w", domain.ErrBuildFailure)
	}

	logging.Logger.Info("Building service", "service", svc.Name, "dir", svc.Dir(), "command", b.command)

	output, err := cmdrun.Run(ctx, cmdrun.Command{
		Name:    b.command[0],
		Args:    b.command[1:],
		Dir:     svc.Dir(),
		Env:     []string{EnvService + "=" + svc.Name, EnvBinary + "=" + svc.BinaryPath()},
		Timeout: b.timeout,
	})
	if err != nil {
		logging.Logger.Error("Build failed", "service", svc.Name, "error", err, "output", string(output))
		return fmt.Errorf("%w: %w\nOutput: %s", domain.ErrBuildFailure, err, string(output))
	}

	info, err := os.Stat(svc.BinaryPath())
	if err != nil {
		return fmt.Errorf("%w: binary not produced at %s: %w", domain.ErrBuildFailure, svc.BinaryPath(), err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", domain.ErrBuildFailure, svc.BinaryPath())
	}

	logging.Logger.Info("Service built", "service", svc.Name, "binary", svc.BinaryPath())
	return nil
}

// Package harness starts locally built services for Go integration tests
// and tears them down when the test ends.
//
//	func TestCheckout(t *testing.T) {
//		h := harness.Start(t, harness.Options{HarnessDir: "."}, "cart-service", "payment-service")
//		...
//	}
package harness

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gocart/cukesvc/internal/cmd"
	"github.com/gocart/cukesvc/internal/config"
	"github.com/gocart/cukesvc/internal/domain"
)

// Report types returned by set-up and tear-down
type (
	ProcessHandle = domain.ProcessHandle
	RunReport     = domain.RunReport
	ServiceResult = domain.ServiceResult
)

// Options override settings.json for one harness. Zero values keep the
// configured or default value.
type Options struct {
	AbortPolicy    string // keep or teardown
	BranchPolicy   string // warn or fail
	BuildCommand   []string
	CommandTimeout time.Duration
	HarnessDir     string // Directory holding features/support; defaults to the working directory
	KeepLogs       bool   // Keep logs of previous runs on Start
	PrimaryBranch  string
	Protoc         string
	RegistryPath   string
	SourceRoot     string
	StopTimeout    time.Duration
}

// Harness drives set-up and tear-down for a fixed layout
type Harness struct {
	container *cmd.Container
}

// New resolves the layout from settings.json and opts and opens the handle
// registry. Close releases it.
func New(opts Options) (*Harness, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	if len(opts.BuildCommand) > 0 {
		settings.BuildCommand = opts.BuildCommand
	}
	if opts.Protoc != "" {
		settings.Protoc = opts.Protoc
	}

	layout, err := config.Resolve(settings, config.Overrides{
		AbortPolicy:    opts.AbortPolicy,
		BranchPolicy:   opts.BranchPolicy,
		CommandTimeout: opts.CommandTimeout,
		HarnessDir:     opts.HarnessDir,
		PrimaryBranch:  opts.PrimaryBranch,
		RegistryPath:   opts.RegistryPath,
		SourceRoot:     opts.SourceRoot,
		StopTimeout:    opts.StopTimeout,
	})
	if err != nil {
		return nil, err
	}

	container, err := cmd.NewContainer(layout)
	if err != nil {
		return nil, err
	}
	return &Harness{container: container}, nil
}

// SetUp provisions and starts the named services in order. The returned
// error joins every per-service failure; the report is always non-nil.
func (h *Harness) SetUp(ctx context.Context, names ...string) (*RunReport, error) {
	services, err := h.container.Layout.Services(names, nil)
	if err != nil {
		return &RunReport{Operation: "set-up"}, err
	}
	report := h.container.Orchestrator.SetUp(ctx, services)
	return report, report.Err()
}

// TearDown stops the named services and removes their env config and binary
func (h *Harness) TearDown(ctx context.Context, names ...string) (*RunReport, error) {
	services, err := h.container.Layout.Services(names, nil)
	if err != nil {
		return &RunReport{Operation: "tear-down"}, err
	}
	report := h.container.Orchestrator.TearDown(ctx, services)
	return report, report.Err()
}

// CleanupLogs removes service logs of previous runs
func (h *Harness) CleanupLogs() ([]string, error) {
	return h.container.Orchestrator.CleanupLogs()
}

// FindPID returns the pid of a running service
func (h *Harness) FindPID(ctx context.Context, name string) (int, error) {
	return h.container.ProcessService.FindPID(ctx, name)
}

// LogPath returns the log file the service writes to
func (h *Harness) LogPath(name string) (string, error) {
	svc, err := h.container.Layout.Service(name)
	if err != nil {
		return "", err
	}
	return svc.LogPath(h.container.Layout.LogDir), nil
}

// Close releases the handle registry
func (h *Harness) Close() error {
	return h.container.Close()
}

// Start sets up services for the duration of tb. Tear-down is registered
// with tb.Cleanup before anything starts, so a failed set-up still stops
// whatever did start. Any set-up failure fails tb immediately.
func Start(tb testing.TB, opts Options, names ...string) *Harness {
	tb.Helper()

	h, err := New(opts)
	if err != nil {
		tb.Fatalf("harness: %v", err)
	}

	tb.Cleanup(func() {
		report, err := h.TearDown(context.Background(), names...)
		for _, warning := range report.Warnings() {
			tb.Logf("harness: %s", warning)
		}
		if err != nil {
			tb.Errorf("harness: tear-down: %v", err)
		}
		if err := h.Close(); err != nil {
			tb.Errorf("harness: %v", err)
		}
	})

	if !opts.KeepLogs {
		if _, err := h.CleanupLogs(); err != nil {
			tb.Fatalf("harness: %v", err)
		}
	}

	report, err := h.SetUp(context.Background(), names...)
	for _, warning := range report.Warnings() {
		tb.Logf("harness: %s", warning)
	}
	if err != nil {
		tb.Fatalf("harness: set-up: %v", fmt.Errorf("run %s: %w", report.RunID, err))
	}
	return h
}

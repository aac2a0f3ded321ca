package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// UpCmd provisions, builds and starts services
type UpCmd struct {
	Services  []string `arg:"" optional:"" help:"Services to start (default: services.yaml, then settings.json)"`
	CleanLogs bool     `help:"Remove service logs of previous runs first" default:"true" negatable:""`
}

// Run executes the up command
func (u *UpCmd) Run(cli *CLI) error {
	container, err := cli.container()
	if err != nil {
		return err
	}

	services, err := container.Layout.Services(u.Services, cli.configuredServices())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if u.CleanLogs {
		if _, err := container.Orchestrator.CleanupLogs(); err != nil {
			return fmt.Errorf("failed to clean up logs: %w", err)
		}
	}

	report := container.Orchestrator.SetUp(ctx, services)
	renderReport(os.Stdout, report)

	return report.Err()
}

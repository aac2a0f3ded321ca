package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// DownCmd stops services and removes their artefacts
type DownCmd struct {
	Services []string `arg:"" optional:"" help:"Services to stop (default: services.yaml, then settings.json)"`
}

// Run executes the down command
func (d *DownCmd) Run(cli *CLI) error {
	container, err := cli.container()
	if err != nil {
		return err
	}

	services, err := container.Layout.Services(d.Services, cli.configuredServices())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := container.Orchestrator.TearDown(ctx, services)
	renderReport(os.Stdout, report)

	return report.Err()
}

package cmd

import (
	"context"
	"fmt"
)

// PidCmd prints the pid of a running service
type PidCmd struct {
	Service string `arg:"" help:"Service name"`
}

// Run executes the pid command
func (p *PidCmd) Run(cli *CLI) error {
	container, err := cli.container()
	if err != nil {
		return err
	}

	pid, err := container.ProcessService.FindPID(context.Background(), p.Service)
	if err != nil {
		return err
	}

	fmt.Println(pid)
	return nil
}

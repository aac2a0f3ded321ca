package cmd

import "fmt"

// CleanLogsCmd removes service logs of previous runs
type CleanLogsCmd struct{}

// Run executes the clean-logs command
func (c *CleanLogsCmd) Run(cli *CLI) error {
	container, err := cli.container()
	if err != nil {
		return err
	}

	removed, err := container.CleanupService.CleanupLogs()
	for _, path := range removed {
		fmt.Println(path)
	}
	return err
}

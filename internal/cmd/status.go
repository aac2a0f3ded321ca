package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/gocart/cukesvc/internal/domain"
)

// StatusCmd lists recorded service processes
type StatusCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type statusEntry struct {
	Alive     bool      `json:"alive"`
	LogPath   string    `json:"log_path"`
	PGID      int       `json:"pgid"`
	PID       int       `json:"pid"`
	RunID     string    `json:"run_id"`
	Service   string    `json:"service"`
	StartedAt time.Time `json:"started_at"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	container, err := cli.container()
	if err != nil {
		return err
	}

	statuses, err := container.ProcessService.Status(context.Background())
	if err != nil {
		return err
	}

	if s.Format == "json" {
		entries := make([]statusEntry, 0, len(statuses))
		for _, st := range statuses {
			entries = append(entries, toStatusEntry(st))
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(statuses) == 0 {
		fmt.Println("No recorded service processes")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tPID\tSTATE\tSTARTED\tLOG")
	for _, st := range statuses {
		state := "exited"
		if st.Alive {
			state = "running"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			st.Handle.Service, st.Handle.PID, state,
			st.Handle.StartedAt.Local().Format(time.DateTime), st.Handle.LogPath)
	}
	return w.Flush()
}

func toStatusEntry(st domain.HandleStatus) statusEntry {
	return statusEntry{
		Alive:     st.Alive,
		LogPath:   st.Handle.LogPath,
		PGID:      st.Handle.PGID,
		PID:       st.Handle.PID,
		RunID:     st.Handle.RunID,
		Service:   st.Handle.Service,
		StartedAt: st.Handle.StartedAt,
	}
}

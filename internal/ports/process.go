package ports

import (
	"context"
	"syscall"
	"time"

	"github.com/gocart/cukesvc/internal/domain"
)

// ProcessLauncher starts service processes in the background
type ProcessLauncher interface {
	// Launch starts the process and returns without waiting for it to exit
	Launch(ctx context.Context, spec domain.LaunchSpec) (*domain.ProcessHandle, error)
}

// ProcessLister reads the live OS process table
type ProcessLister interface {
	List(ctx context.Context) ([]domain.ProcessInfo, error)
}

// ProcessSignaler delivers signals to processes
type ProcessSignaler interface {
	// Alive reports whether pid still exists
	Alive(pid int) bool
	// Signal sends sig to pid, or to the whole group when pgid > 1
	Signal(pid, pgid int, sig syscall.Signal) error
}

// ProcessInspector reads identity details of a live process
type ProcessInspector interface {
	// StartTime returns when pid was created, or domain.ErrProcessNotFound
	StartTime(ctx context.Context, pid int) (time.Time, error)
}

// ProcessTable is the composite interface
type ProcessTable interface {
	ProcessInspector
	ProcessLister
	ProcessSignaler
}

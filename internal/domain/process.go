package domain

import "time"

// ProcessInfo is one live OS process as read from the process table
type ProcessInfo struct {
	Name string
	PID  int
}

// ProcessHandle records a launched service process so that teardown can
// find it without scanning the process table.
type ProcessHandle struct {
	BinaryPath string
	ID         string
	LogPath    string
	PGID       int
	PID        int
	RunID      string
	Service    string
	StartedAt  time.Time
}

// LaunchSpec describes how to start a service in the background
type LaunchSpec struct {
	BinaryPath string
	Dir        string
	EnvFile    string
	LogPath    string
	RunID      string
	Service    string
}

// HandleStatus is a recorded handle together with whether its process still runs
type HandleStatus struct {
	Alive  bool
	Handle ProcessHandle
}

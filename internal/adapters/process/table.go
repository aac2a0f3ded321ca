package process

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"syscall"
	"time"

	gopsprocess "github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/unix"

	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
)

// OSProcessTable implements ports.ProcessTable on top of the live OS process
// table (gopsutil) and kill(2)
type OSProcessTable struct{}

// Compile-time interface verification
var _ ports.ProcessTable = (*OSProcessTable)(nil)

// NewOSProcessTable creates a new OS process table
func NewOSProcessTable() *OSProcessTable {
	return &OSProcessTable{}
}

// List implements ProcessLister.List. Processes that vanish while the table
// is read are skipped.
func (t *OSProcessTable) List(ctx context.Context) ([]domain.ProcessInfo, error) {
	procs, err := gopsprocess.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read process table: %w", err)
	}

	infos := make([]domain.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		infos = append(infos, domain.ProcessInfo{Name: name, PID: int(p.Pid)})
	}

	logging.Logger.Debug("Read process table", "count", len(infos))
	return infos, nil
}

// StartTime implements ProcessInspector.StartTime
func (t *OSProcessTable) StartTime(ctx context.Context, pid int) (time.Time, error) {
	p, err := gopsprocess.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		if errors.Is(err, gopsprocess.ErrorProcessNotRunning) {
			return time.Time{}, fmt.Errorf("pid %d: %w", pid, domain.ErrProcessNotFound)
		}
		return time.Time{}, fmt.Errorf("failed to inspect pid %d: %w", pid, err)
	}

	created, err := p.CreateTimeWithContext(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read start time of pid %d: %w", pid, err)
	}
	return time.UnixMilli(created), nil
}

// Alive implements ProcessSignaler.Alive
func (t *OSProcessTable) Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	// EPERM means the process exists but belongs to someone else
	if err != nil && !errors.Is(err, unix.EPERM) {
		return false
	}
	return !zombie(pid)
}

// zombie reports whether pid has exited but was not reaped yet. Services
// outliving the process that started them are reaped by init.
func zombie(pid int) bool {
	p, err := gopsprocess.NewProcess(int32(pid))
	if err != nil {
		return errors.Is(err, gopsprocess.ErrorProcessNotRunning)
	}
	status, err := p.Status()
	if err != nil {
		return false
	}
	return slices.Contains(status, gopsprocess.Zombie)
}

// Signal implements ProcessSignaler.Signal
func (t *OSProcessTable) Signal(pid, pgid int, sig syscall.Signal) error {
	target := pid
	if pgid > 1 {
		target = -pgid
	} else if pid <= 1 {
		return fmt.Errorf("refusing to signal pid %d: %w", pid, domain.ErrProcessNotFound)
	}

	logging.Logger.Debug("Sending signal", "pid", pid, "pgid", pgid, "signal", sig.String())

	if err := unix.Kill(target, sig); err != nil {
		if errors.Is(err, unix.ESRCH) {
			return fmt.Errorf("signal %s to %d: %w", sig, target, domain.ErrProcessNotFound)
		}
		return fmt.Errorf("signal %s to %d: %w", sig, target, err)
	}
	return nil
}

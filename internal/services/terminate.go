package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
)

const (
	defaultPollInterval = 50 * time.Millisecond
	killGracePeriod     = 2 * time.Second
	statusCheckLimit    = 8

	// startTimeTolerance bounds the gap between the recorded launch time and
	// the start time the OS reports for the same process
	startTimeTolerance = 3 * time.Second
)

// ProcessService locates and stops running services
type ProcessService struct {
	pollInterval time.Duration
	registry     ports.HandleRegistry
	stopTimeout  time.Duration
	table        ports.ProcessTable
}

// NewProcessService creates a new ProcessService. stopTimeout is how long
// Terminate waits after SIGTERM before sending SIGKILL.
func NewProcessService(registry ports.HandleRegistry, table ports.ProcessTable, stopTimeout time.Duration) *ProcessService {
	return &ProcessService{
		pollInterval: defaultPollInterval,
		registry:     registry,
		stopTimeout:  stopTimeout,
		table:        table,
	}
}

// target is a resolved process to signal
type target struct {
	pgid int // Zero when only the pid is known
	pid  int
}

// FindPID returns the pid of the running service. The handle registry is
// consulted first; the process table is scanned by name prefix only when no
// live handle is recorded.
func (s *ProcessService) FindPID(ctx context.Context, name string) (int, error) {
	t, err := s.locate(ctx, name)
	if err != nil {
		return 0, err
	}
	return t.pid, nil
}

func (s *ProcessService) locate(ctx context.Context, name string) (target, error) {
	handle, err := s.registry.Get(ctx, name)
	switch {
	case err == nil:
		ok, err := s.verify(ctx, handle)
		if ok {
			logging.Logger.Debug("Found process in registry", "service", name, "pid", handle.PID)
			return target{pgid: handle.PGID, pid: handle.PID}, nil
		}
		if err != nil {
			// The pid was reused: never signal it, and drop the record
			logging.Logger.Warn("Recorded pid belongs to another process, scanning process table", "service", name, "pid", handle.PID, "error", err)
			s.forget(ctx, name)
		} else {
			logging.Logger.Info("Recorded process is gone, scanning process table", "service", name, "pid", handle.PID)
		}
	case !errors.Is(err, domain.ErrHandleNotFound):
		logging.Logger.Warn("Handle registry unavailable, scanning process table", "service", name, "error", err)
	}

	procs, err := s.table.List(ctx)
	if err != nil {
		return target{}, err
	}

	matches := MatchByPrefix(procs, name)
	switch len(matches) {
	case 0:
		return target{}, fmt.Errorf("%s: %w", name, domain.ErrProcessNotFound)
	case 1:
		logging.Logger.Debug("Found process by name", "service", name, "pid", matches[0].PID, "process", matches[0].Name)
		return target{pid: matches[0].PID}, nil
	default:
		described := make([]string, len(matches))
		for i, m := range matches {
			described[i] = fmt.Sprintf("%s(%d)", m.Name, m.PID)
		}
		return target{}, fmt.Errorf("%s matches %s: %w", name, strings.Join(described, ", "), domain.ErrAmbiguousProcess)
	}
}

// verify reports whether the recorded process is still running and is the
// one that was launched. A live pid whose start time differs from the
// recorded launch time yields false and an error describing the mismatch.
func (s *ProcessService) verify(ctx context.Context, h *domain.ProcessHandle) (bool, error) {
	if !s.table.Alive(h.PID) {
		return false, nil
	}

	started, err := s.table.StartTime(ctx, h.PID)
	if err != nil {
		if errors.Is(err, domain.ErrProcessNotFound) {
			return false, nil
		}
		return false, err
	}

	if h.StartedAt.IsZero() {
		return false, fmt.Errorf("pid %d has no recorded start time", h.PID)
	}
	if gap := started.Sub(h.StartedAt).Abs(); gap > startTimeTolerance {
		return false, fmt.Errorf("pid %d started at %s, launched at %s", h.PID,
			started.UTC().Format(time.RFC3339), h.StartedAt.UTC().Format(time.RFC3339))
	}
	return true, nil
}

// MatchByPrefix returns every process whose name starts with name, in table
// order
func MatchByPrefix(procs []domain.ProcessInfo, name string) []domain.ProcessInfo {
	if name == "" {
		return nil
	}

	var matches []domain.ProcessInfo
	for _, p := range procs {
		if strings.HasPrefix(p.Name, name) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Terminate stops the running service: SIGTERM, then SIGKILL once the stop
// timeout passes. A service that is not running is logged and tolerated.
// The registry record is dropped in every case except ambiguity.
func (s *ProcessService) Terminate(ctx context.Context, name string) error {
	t, err := s.locate(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrProcessNotFound) {
			logging.Logger.Info("Service not running, nothing to terminate", "service", name)
			s.forget(ctx, name)
			return nil
		}
		return err
	}

	logging.Logger.Info("Terminating service", "service", name, "pid", t.pid, "pgid", t.pgid)

	if err := s.table.Signal(t.pid, t.pgid, syscall.SIGTERM); err != nil {
		if errors.Is(err, domain.ErrProcessNotFound) {
			logging.Logger.Info("Service exited before SIGTERM", "service", name, "pid", t.pid)
			s.forget(ctx, name)
			return nil
		}
		return fmt.Errorf("failed to stop %s: %w", name, err)
	}

	stopped, err := s.waitExit(ctx, t.pid, s.stopTimeout)
	if err != nil {
		return err
	}

	if !stopped {
		logging.Logger.Warn("Service ignored SIGTERM, sending SIGKILL", "service", name, "pid", t.pid, "timeout", s.stopTimeout)
		if err := s.table.Signal(t.pid, t.pgid, syscall.SIGKILL); err != nil && !errors.Is(err, domain.ErrProcessNotFound) {
			return fmt.Errorf("failed to kill %s: %w", name, err)
		}
		if stopped, err = s.waitExit(ctx, t.pid, killGracePeriod); err != nil {
			return err
		}
		if !stopped {
			return fmt.Errorf("%s (pid %d) still running after SIGKILL: %w", name, t.pid, domain.ErrTimeout)
		}
	}

	s.forget(ctx, name)
	logging.Logger.Info("Service terminated", "service", name, "pid", t.pid)
	return nil
}

// Status checks every recorded handle concurrently
func (s *ProcessService) Status(ctx context.Context) ([]domain.HandleStatus, error) {
	handles, err := s.registry.List(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.HandleStatus, len(handles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statusCheckLimit)

	for i, h := range handles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			alive, err := s.verify(ctx, &h)
			if err != nil {
				logging.Logger.Debug("Recorded process not verified", "service", h.Service, "error", err)
			}
			statuses[i] = domain.HandleStatus{Alive: alive, Handle: h}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return statuses, nil
}

// waitExit polls until pid is gone or timeout passes. It reports whether the
// process exited.
func (s *ProcessService) waitExit(ctx context.Context, pid int, timeout time.Duration) (bool, error) {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		if !s.table.Alive(pid) {
			return true, nil
		}
		if !time.Now().Before(deadline) {
			return false, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *ProcessService) forget(ctx context.Context, name string) {
	if err := s.registry.Delete(ctx, name); err != nil {
		logging.Logger.Warn("Failed to drop process handle", "service", name, "error", err)
	}
}

package domain

import (
	"errors"
	"time"
)

// ServiceResult is the outcome of one service in a set-up or tear-down pass
type ServiceResult struct {
	Err      error
	Handle   *ProcessHandle
	Service  string
	Skipped  bool // Not attempted because the run was aborted
	Warnings []string
}

// OK reports whether the service completed without error
func (r ServiceResult) OK() bool {
	return r.Err == nil && !r.Skipped
}

// RunReport aggregates per-service results of a set-up or tear-down pass
type RunReport struct {
	FinishedAt time.Time
	Operation  string
	Results    []ServiceResult
	RunID      string
	StartedAt  time.Time
	TornDown   *RunReport // Set when an abort triggered tear-down of started services
}

// Add appends a result to the report
func (r *RunReport) Add(result ServiceResult) {
	r.Results = append(r.Results, result)
}

// Aborted reports whether any service signalled ErrAbortRun
func (r *RunReport) Aborted() bool {
	for _, res := range r.Results {
		if errors.Is(res.Err, ErrAbortRun) {
			return true
		}
	}
	return false
}

// Err joins every per-service error, or returns nil when all succeeded
func (r *RunReport) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

// Warnings returns every warning emitted during the pass
func (r *RunReport) Warnings() []string {
	var warnings []string
	for _, res := range r.Results {
		warnings = append(warnings, res.Warnings...)
	}
	return warnings
}

// Result returns the result recorded for service, if any
func (r *RunReport) Result(service string) (ServiceResult, bool) {
	for _, res := range r.Results {
		if res.Service == service {
			return res, true
		}
	}
	return ServiceResult{}, false
}

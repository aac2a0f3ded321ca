package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gocart/cukesvc/internal/config"
	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
)

// Report operation names
const (
	OperationSetUp    = "set-up"
	OperationTearDown = "tear-down"
)

// Orchestrator runs set-up and tear-down across a list of services
type Orchestrator struct {
	cleanup   *CleanupService
	launch    *LaunchService
	layout    *config.Layout
	processes *ProcessService
	provision *ProvisionService
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(
	provision *ProvisionService,
	launch *LaunchService,
	processes *ProcessService,
	cleanup *CleanupService,
	layout *config.Layout,
) *Orchestrator {
	return &Orchestrator{
		cleanup:   cleanup,
		launch:    launch,
		layout:    layout,
		processes: processes,
		provision: provision,
	}
}

// SetUp provisions and launches services in order. A missing service
// directory aborts the run: later services are skipped and, under the
// teardown abort policy, services already started are torn down. Any other
// failure is recorded and the next service is attempted.
func (o *Orchestrator) SetUp(ctx context.Context, services []domain.Service) *domain.RunReport {
	report := newReport(OperationSetUp)
	logging.Logger.Info("Setting up services", "run_id", report.RunID, "services", domain.ServiceNames(services))

	var started []domain.Service
	for i, svc := range services {
		result := domain.ServiceResult{Service: svc.Name}

		if err := o.provision.Provision(svc); err != nil {
			result.Err = domain.NewStageError(svc.Name, domain.StageProvision, err)
			report.Add(result)

			if errors.Is(err, domain.ErrAbortRun) {
				o.abort(ctx, report, services[i+1:], started)
				break
			}
			continue
		}

		handle, warnings, err := o.launch.Launch(ctx, svc, report.RunID)
		result.Err = err
		result.Handle = handle
		result.Warnings = warnings
		report.Add(result)

		if handle != nil {
			started = append(started, svc)
		}
		if err != nil {
			logging.Logger.Error("Service failed to start", "service", svc.Name, "error", err)
		}
	}

	report.FinishedAt = time.Now().UTC()
	return report
}

func (o *Orchestrator) abort(ctx context.Context, report *domain.RunReport, remaining, started []domain.Service) {
	logging.Logger.Error("Run aborted", "run_id", report.RunID, "skipped", domain.ServiceNames(remaining), "policy", o.layout.AbortPolicy)

	for _, svc := range remaining {
		report.Add(domain.ServiceResult{Service: svc.Name, Skipped: true})
	}

	if o.layout.AbortPolicy == domain.AbortPolicyTeardown && len(started) > 0 {
		report.TornDown = o.TearDown(ctx, started)
	}
}

// TearDown stops each service and removes its env config and binary. A
// failure in one step or service never prevents the remaining work.
func (o *Orchestrator) TearDown(ctx context.Context, services []domain.Service) *domain.RunReport {
	report := newReport(OperationTearDown)
	logging.Logger.Info("Tearing down services", "run_id", report.RunID, "services", domain.ServiceNames(services))

	for _, svc := range services {
		var errs []error

		if err := o.processes.Terminate(ctx, svc.Name); err != nil {
			errs = append(errs, domain.NewStageError(svc.Name, domain.StageTerminate, err))
		}
		if err := o.cleanup.RemoveEnvConfig(svc); err != nil {
			errs = append(errs, domain.NewStageError(svc.Name, domain.StageRemoveEnv, err))
		}
		if err := o.cleanup.RemoveBinary(svc); err != nil {
			errs = append(errs, domain.NewStageError(svc.Name, domain.StageRemoveBinary, err))
		}

		result := domain.ServiceResult{Service: svc.Name, Err: errors.Join(errs...)}
		if result.Err != nil {
			logging.Logger.Error("Service tear-down incomplete", "service", svc.Name, "error", result.Err)
		}
		report.Add(result)
	}

	report.FinishedAt = time.Now().UTC()
	return report
}

// CleanupLogs removes service logs left by a previous run
func (o *Orchestrator) CleanupLogs() ([]string, error) {
	return o.cleanup.CleanupLogs()
}

func newReport(operation string) *domain.RunReport {
	return &domain.RunReport{
		Operation: operation,
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
}

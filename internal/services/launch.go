package services

import (
	"context"
	"fmt"

	"github.com/gocart/cukesvc/internal/config"
	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
)

// LaunchService builds a service checkout and starts it in the background
type LaunchService struct {
	branches ports.BranchReader
	builder  ports.ServiceBuilder
	launcher ports.ProcessLauncher
	layout   *config.Layout
	registry ports.HandleWriter
	schema   *SchemaService
}

// NewLaunchService creates a new LaunchService
func NewLaunchService(
	schema *SchemaService,
	branches ports.BranchReader,
	builder ports.ServiceBuilder,
	launcher ports.ProcessLauncher,
	registry ports.HandleWriter,
	layout *config.Layout,
) *LaunchService {
	return &LaunchService{
		branches: branches,
		builder:  builder,
		launcher: launcher,
		layout:   layout,
		registry: registry,
		schema:   schema,
	}
}

// Launch prepares the schema, checks the branch, builds and starts svc.
// It returns once the process is started; warnings are non-fatal findings
// such as a checkout on the wrong branch. Errors are *domain.StageError.
func (s *LaunchService) Launch(ctx context.Context, svc domain.Service, runID string) (*domain.ProcessHandle, []string, error) {
	var warnings []string
	serviceDir := svc.Dir()
	schemaDir := s.layout.SchemaDir(svc)

	if err := s.schema.EnsureSchemaSource(ctx, serviceDir, schemaDir); err != nil {
		return nil, warnings, domain.NewStageError(svc.Name, domain.StageSchema, err)
	}

	pair := domain.NewSchemaArtifactPair(schemaDir, s.layout.SchemaBase, domain.LanguageGo)
	if err := s.schema.EnsureTargetBinding(ctx, serviceDir, pair); err != nil {
		return nil, warnings, domain.NewStageError(svc.Name, domain.StageSchema, err)
	}

	for _, lang := range svc.Bindings {
		if _, err := s.schema.CompileBinding(ctx, svc.Name, lang); err != nil {
			return nil, warnings, domain.NewStageError(svc.Name, domain.StageSchema, err)
		}
	}

	warning, err := s.checkBranch(ctx, svc)
	if err != nil {
		return nil, warnings, domain.NewStageError(svc.Name, domain.StageBranch, err)
	}
	if warning != "" {
		warnings = append(warnings, warning)
	}

	if err := s.builder.Build(ctx, svc); err != nil {
		return nil, warnings, domain.NewStageError(svc.Name, domain.StageBuild, err)
	}

	handle, err := s.launcher.Launch(ctx, domain.LaunchSpec{
		BinaryPath: svc.BinaryPath(),
		Dir:        serviceDir,
		EnvFile:    svc.EnvFile(),
		LogPath:    svc.LogPath(s.layout.LogDir),
		RunID:      runID,
		Service:    svc.Name,
	})
	if err != nil {
		return nil, warnings, domain.NewStageError(svc.Name, domain.StageStart, err)
	}

	// The process is running either way; teardown falls back to a table scan
	if err := s.registry.Save(ctx, *handle); err != nil {
		logging.Logger.Warn("Failed to record process handle", "service", svc.Name, "error", err)
		warnings = append(warnings, fmt.Sprintf("%s: process handle not recorded: %v", svc.Name, err))
	}

	return handle, warnings, nil
}

// checkBranch compares the checkout's branch with the expected primary
// branch. It returns a warning under the warn policy and an error wrapping
// domain.ErrBranchMismatch under the fail policy.
func (s *LaunchService) checkBranch(ctx context.Context, svc domain.Service) (string, error) {
	primary := s.layout.PrimaryBranchFor(svc)

	branch, err := s.branches.CurrentBranch(ctx, svc.Dir())
	if err != nil {
		logging.Logger.Warn("Could not determine branch", "service", svc.Name, "error", err)
		return fmt.Sprintf("%s: could not determine branch: %v", svc.Name, err), nil
	}
	if branch == primary {
		return "", nil
	}

	msg := fmt.Sprintf("%s is not on %s branch but on branch: %s", svc.Name, primary, branch)
	if s.layout.BranchPolicy == domain.BranchPolicyFail {
		return "", fmt.Errorf("%w: %s", domain.ErrBranchMismatch, msg)
	}

	logging.Logger.Warn("Service not on primary branch", "service", svc.Name, "primary", primary, "branch", branch)
	return msg, nil
}

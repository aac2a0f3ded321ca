package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocart/cukesvc/internal/adapters/cmdrun"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct {
	timeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository. Every git invocation is
// bounded by timeout (zero disables the bound).
func NewCLIRepository(timeout time.Duration) *CLIRepository {
	return &CLIRepository{timeout: timeout}
}

// CurrentBranch implements BranchReader.CurrentBranch
func (r *CLIRepository) CurrentBranch(ctx context.Context, repoDir string) (string, error) {
	logging.Logger.Debug("Getting branch name", "path", repoDir)

	output, err := cmdrun.Output(ctx, cmdrun.Command{
		Name:    "git",
		Args:    []string{"rev-parse", "--abbrev-ref", "HEAD"},
		Dir:     repoDir,
		Timeout: r.timeout,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}

	branch := strings.TrimSpace(string(output))
	logging.Logger.Debug("Found branch name", "branch", branch)
	return branch, nil
}

// UpdateSubmodules implements SubmoduleFetcher.UpdateSubmodules
func (r *CLIRepository) UpdateSubmodules(ctx context.Context, repoDir string) error {
	logging.Logger.Info("Fetching submodules", "path", repoDir)

	output, err := cmdrun.Run(ctx, cmdrun.Command{
		Name:    "git",
		Args:    []string{"submodule", "update", "--init", "--recursive"},
		Dir:     repoDir,
		Timeout: r.timeout,
	})
	if err != nil {
		logging.Logger.Error("Submodule update failed", "error", err, "output", string(output))
		return fmt.Errorf("failed to update submodules: %w\nOutput: %s", err, string(output))
	}

	logging.Logger.Info("Submodules updated", "path", repoDir)
	return nil
}

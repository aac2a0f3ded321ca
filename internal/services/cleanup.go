package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gocart/cukesvc/internal/config"
	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
)

// CleanupService removes artefacts produced by a run
type CleanupService struct {
	layout *config.Layout
}

// NewCleanupService creates a new CleanupService
func NewCleanupService(layout *config.Layout) *CleanupService {
	return &CleanupService{layout: layout}
}

// RemoveEnvConfig deletes the env script copied into the checkout
func (s *CleanupService) RemoveEnvConfig(svc domain.Service) error {
	return removeArtifact(svc.EnvFile(), "env config")
}

// RemoveBinary deletes the built service binary
func (s *CleanupService) RemoveBinary(svc domain.Service) error {
	return removeArtifact(svc.BinaryPath(), "binary")
}

// CleanupLogs deletes every service log in the log directory and returns the
// removed paths. Other files are left alone.
func (s *CleanupService) CleanupLogs() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.layout.LogDir, domain.LogFilePattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	var removed []string
	var errs []error
	for _, path := range matches {
		info, err := os.Lstat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", path, err))
			continue
		}
		removed = append(removed, path)
	}

	logging.Logger.Info("Cleaned up service logs", "dir", s.layout.LogDir, "removed", len(removed))
	return removed, errors.Join(errs...)
}

// removeArtifact deletes path when it exists; absence is not an error
func removeArtifact(path, what string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Logger.Info("Nothing to remove", "artifact", what, "path", path)
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", what, err)
	}
	if info.IsDir() {
		return fmt.Errorf("refusing to remove %s: %s is a directory", what, path)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", what, err)
	}

	logging.Logger.Info("Removed artifact", "artifact", what, "path", path)
	return nil
}

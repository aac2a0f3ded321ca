package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/gocart/cukesvc/internal/config"
	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
)

// ProvisionService places per-service environment scripts into checkouts
type ProvisionService struct {
	layout *config.Layout
}

// NewProvisionService creates a new ProvisionService
func NewProvisionService(layout *config.Layout) *ProvisionService {
	return &ProvisionService{layout: layout}
}

// Provision copies the service's env script template from the support
// directory into the service checkout, keeping content and mode. A missing
// checkout returns domain.ErrAbortRun and copies nothing.
func (s *ProvisionService) Provision(svc domain.Service) error {
	info, err := os.Stat(svc.Dir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Logger.Error("Service directory not found", "service", svc.Name, "dir", svc.Dir())
			return fmt.Errorf("%s: %w", svc.Dir(), domain.ErrAbortRun)
		}
		return fmt.Errorf("failed to stat service directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %w", svc.Dir(), domain.ErrAbortRun)
	}

	src := s.layout.EnvTemplate(svc)
	if err := copyFile(src, svc.EnvFile()); err != nil {
		return fmt.Errorf("failed to provision env config: %w", err)
	}

	logging.Logger.Info("Provisioned env config", "service", svc.Name, "from", src, "to", svc.EnvFile())
	return nil
}

// copyFile copies src over dst and applies the permission bits of src
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile only applies the mode on creation and honours the umask
	return os.Chmod(dst, info.Mode().Perm())
}

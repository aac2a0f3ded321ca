package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	envFileSuffix = "_env.sh"
	logFileSuffix = "_cucumber.log"

	// LogFilePattern matches every per-service log file in the log directory
	LogFilePattern = "*cucumber.log"
)

// Service is a locally built program started for an integration test run.
// Values are built fresh from configuration and never persisted.
type Service struct {
	Bindings      []Language // Extra schema bindings compiled before launch
	Name          string
	PrimaryBranch string // Overrides the layout-wide primary branch when set
	SourceRoot    string
}

// NewService creates a Service rooted at sourceRoot
func NewService(name, sourceRoot string) (Service, error) {
	if err := ValidateServiceName(name); err != nil {
		return Service{}, err
	}
	return Service{Name: name, SourceRoot: sourceRoot}, nil
}

// ValidateServiceName rejects names that would escape the source root
func ValidateServiceName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("service name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid service name %q", name)
	}
	return nil
}

// Dir returns the service checkout directory
func (s Service) Dir() string {
	return filepath.Join(s.SourceRoot, s.Name)
}

// EnvFileName returns the base name of the environment script
func (s Service) EnvFileName() string {
	return s.Name + envFileSuffix
}

// EnvFile returns the path of the environment script inside the checkout
func (s Service) EnvFile() string {
	return filepath.Join(s.Dir(), s.EnvFileName())
}

// BinaryPath returns the path of the compiled service binary
func (s Service) BinaryPath() string {
	return filepath.Join(s.Dir(), s.Name)
}

// LogPath returns the per-run log file of the service inside logDir
func (s Service) LogPath(logDir string) string {
	return filepath.Join(logDir, s.Name+logFileSuffix)
}

// ServiceNames extracts the names of services, preserving order
func ServiceNames(services []Service) []string {
	names := make([]string, len(services))
	for i, s := range services {
		names[i] = s.Name
	}
	return names
}

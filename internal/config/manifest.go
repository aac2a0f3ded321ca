package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gocart/cukesvc/internal/domain"
)

// ManifestFileName is looked up inside the harness support directory
const ManifestFileName = "services.yaml"

// Manifest lists the services a test suite depends on, in start order.
//
//	services:
//	  - name: go-cart
//	  - name: go-pricing
//	    primary_branch: main
//	    bindings: [ruby]
type Manifest struct {
	Services []ManifestService `yaml:"services"`
}

// ManifestService holds per-service overrides
type ManifestService struct {
	Bindings      []string `yaml:"bindings,omitempty"`
	Name          string   `yaml:"name"`
	PrimaryBranch string   `yaml:"primary_branch,omitempty"`
}

// LoadManifest reads a manifest file. A missing file yields an empty manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", filepath.Base(path), err)
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", filepath.Base(path), err)
	}

	return &manifest, nil
}

// Validate checks names and binding languages, and rejects duplicates
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Services))
	for _, svc := range m.Services {
		if err := domain.ValidateServiceName(svc.Name); err != nil {
			return err
		}
		if seen[svc.Name] {
			return fmt.Errorf("service %q listed more than once", svc.Name)
		}
		seen[svc.Name] = true

		for _, b := range svc.Bindings {
			if _, err := domain.ParseLanguage(b); err != nil {
				return fmt.Errorf("service %q: %w", svc.Name, err)
			}
		}
	}
	return nil
}

// Names returns the service names in manifest order
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Services))
	for i, svc := range m.Services {
		names[i] = svc.Name
	}
	return names
}

// Lookup returns the manifest entry for name
func (m *Manifest) Lookup(name string) (ManifestService, bool) {
	for _, svc := range m.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return ManifestService{}, false
}

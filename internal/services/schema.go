package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gocart/cukesvc/internal/config"
	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
)

// SchemaService makes sure protobuf schemas are present and their generated
// bindings are up to date
type SchemaService struct {
	compiler   ports.SchemaCompiler
	submodules ports.SubmoduleFetcher
	layout     *config.Layout
}

// NewSchemaService creates a new SchemaService
func NewSchemaService(
	compiler ports.SchemaCompiler,
	submodules ports.SubmoduleFetcher,
	layout *config.Layout,
) *SchemaService {
	return &SchemaService{
		compiler:   compiler,
		layout:     layout,
		submodules: submodules,
	}
}

// EnsureSchemaSource fetches submodules of serviceDir when schemaDir is
// missing or empty. It never retries.
func (s *SchemaService) EnsureSchemaSource(ctx context.Context, serviceDir, schemaDir string) error {
	populated, err := hasEntries(schemaDir)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSchemaFetch, err)
	}
	if populated {
		logging.Logger.Debug("Schema source present", "dir", schemaDir)
		return nil
	}

	logging.Logger.Info("Schema source missing, fetching submodules", "service_dir", serviceDir, "schema_dir", schemaDir)
	if err := s.submodules.UpdateSubmodules(ctx, serviceDir); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSchemaFetch, err)
	}

	populated, err = hasEntries(schemaDir)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSchemaFetch, err)
	}
	if !populated {
		return fmt.Errorf("%w: %s is still empty after submodule update", domain.ErrSchemaFetch, schemaDir)
	}
	return nil
}

// EnsureTargetBinding compiles every schema in pair.Dir when the generated
// binding is missing or not strictly newer than the definition. The compiler
// runs with serviceDir as its working directory.
func (s *SchemaService) EnsureTargetBinding(ctx context.Context, serviceDir string, pair domain.SchemaArtifactPair) error {
	defInfo, err := os.Stat(pair.Definition)
	if err != nil {
		return fmt.Errorf("%w: schema definition: %w", domain.ErrCompileFailure, err)
	}

	genInfo, err := os.Stat(pair.Generated)
	switch {
	case err == nil && genInfo.ModTime().After(defInfo.ModTime()):
		logging.Logger.Debug("Generated binding is current", "file", pair.Generated)
		return nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: generated binding: %w", domain.ErrCompileFailure, err)
	}

	inputs, err := schemaInputs(serviceDir, pair.Dir)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCompileFailure, err)
	}

	logging.Logger.Info("Compiling schema", "dir", pair.Dir, "language", pair.Language, "inputs", len(inputs))
	if err := s.compiler.Compile(ctx, domain.CompileRequest{
		Inputs:   inputs,
		Language: pair.Language,
		WorkDir:  serviceDir,
	}); err != nil {
		return err
	}

	// Where protoc writes Go output depends on the go_package option
	if _, err := os.Stat(pair.Generated); err != nil {
		logging.Logger.Warn("Compiled binding not found at expected path", "file", pair.Generated)
	}
	return nil
}

// CompileBinding regenerates the binding of the shared schema for lang and
// returns its absolute path. The harness's own schema lives inside the
// harness directory; every other service shares the one two levels up.
func (s *SchemaService) CompileBinding(ctx context.Context, service string, lang domain.Language) (string, error) {
	schemaDir := s.BindingDir(service)
	pair := domain.NewSchemaArtifactPair(schemaDir, s.layout.SchemaBase, lang)

	if err := os.Remove(pair.Generated); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to remove stale binding %s: %w", pair.Generated, err)
	}

	if err := s.compiler.Compile(ctx, domain.CompileRequest{
		Inputs:   []string{"./" + filepath.Base(pair.Definition)},
		Language: lang,
		WorkDir:  schemaDir,
	}); err != nil {
		return "", err
	}

	if _, err := os.Stat(pair.Generated); err != nil {
		return "", fmt.Errorf("%w: %s not generated: %w", domain.ErrCompileFailure, pair.Generated, err)
	}

	logging.Logger.Info("Compiled binding", "service", service, "language", lang, "file", pair.Generated)
	return pair.Generated, nil
}

// BindingDir returns the schema directory CompileBinding uses for service
func (s *SchemaService) BindingDir(service string) string {
	if service == s.layout.HarnessName {
		return filepath.Join(s.layout.HarnessDir, s.layout.SchemaDirName)
	}
	return filepath.Clean(filepath.Join(s.layout.HarnessDir, "..", "..", s.layout.SchemaDirName))
}

func hasEntries(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return len(entries) > 0, nil
}

// schemaInputs lists the schema files of schemaDir relative to workDir
func schemaInputs(workDir, schemaDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(schemaDir, "*"+domain.SchemaExtension))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no %s files in %s", domain.SchemaExtension, schemaDir)
	}

	inputs := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(workDir, m)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, "./"+filepath.ToSlash(rel))
	}
	return inputs, nil
}

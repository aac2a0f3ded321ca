package cmd

import (
	adapterbuild "github.com/gocart/cukesvc/internal/adapters/build"
	adaptergit "github.com/gocart/cukesvc/internal/adapters/git"
	adapterprocess "github.com/gocart/cukesvc/internal/adapters/process"
	adapterprotoc "github.com/gocart/cukesvc/internal/adapters/protoc"
	adapterstorage "github.com/gocart/cukesvc/internal/adapters/storage"
	"github.com/gocart/cukesvc/internal/config"
	"github.com/gocart/cukesvc/internal/logging"
	"github.com/gocart/cukesvc/internal/ports"
	"github.com/gocart/cukesvc/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Layout *config.Layout

	// Services
	CleanupService   *services.CleanupService
	Orchestrator     *services.Orchestrator
	ProcessService   *services.ProcessService
	ProvisionService *services.ProvisionService
	SchemaService    *services.SchemaService

	// Internal - for cleanup only
	registry ports.HandleRegistry
}

// NewContainer creates a new Container with all dependencies wired for layout
func NewContainer(layout *config.Layout) (*Container, error) {
	// Create adapters
	registry, err := adapterstorage.NewSQLiteRegistry(layout.RegistryPath)
	if err != nil {
		return nil, err
	}

	builder := adapterbuild.NewCommandBuilder(layout.BuildCommand, layout.CommandTimeout)
	compiler := adapterprotoc.NewCompiler(layout.Protoc, layout.CommandTimeout)
	gitRepo := adaptergit.NewCLIRepository(layout.CommandTimeout)
	launcher := adapterprocess.NewShellLauncher()
	table := adapterprocess.NewOSProcessTable()

	// Create services
	schemaService := services.NewSchemaService(compiler, gitRepo, layout)
	provisionService := services.NewProvisionService(layout)
	launchService := services.NewLaunchService(schemaService, gitRepo, builder, launcher, registry, layout)
	processService := services.NewProcessService(registry, table, layout.StopTimeout)
	cleanupService := services.NewCleanupService(layout)
	orchestrator := services.NewOrchestrator(provisionService, launchService, processService, cleanupService, layout)

	logging.Logger.Debug("Container ready",
		"harness_dir", layout.HarnessDir,
		"source_root", layout.SourceRoot,
		"registry", layout.RegistryPath)

	return &Container{
		CleanupService:   cleanupService,
		Layout:           layout,
		Orchestrator:     orchestrator,
		ProcessService:   processService,
		ProvisionService: provisionService,
		SchemaService:    schemaService,
		registry:         registry,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.registry != nil {
		return c.registry.Close()
	}
	return nil
}

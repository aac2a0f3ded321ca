package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/gocart/cukesvc/internal/config"
	"github.com/gocart/cukesvc/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	AbortPolicy    string        `help:"What happens to started services when set-up aborts: keep or teardown"`
	BranchPolicy   string        `help:"How a checkout off its primary branch is treated: warn or fail"`
	CommandTimeout time.Duration `help:"Timeout of each external command (e.g. 5m)"`
	HarnessDir     string        `help:"Test harness directory holding features/support (default: current directory)" short:"C"`
	PrimaryBranch  string        `help:"Branch every service is expected to be on"`
	Registry       string        `help:"Path of the process handle database (default: $CUKESVC_HOME/state.db)"`
	SourceRoot     string        `help:"Directory holding service checkouts (default: ~/go/src/github.com)"`
	StopTimeout    time.Duration `help:"Time to wait after SIGTERM before sending SIGKILL"`

	Up        UpCmd        `cmd:"up" help:"Provision, build and start services"`
	Down      DownCmd      `cmd:"down" help:"Stop services and remove their env config and binary"`
	CleanLogs CleanLogsCmd `cmd:"clean-logs" help:"Remove service logs left by previous runs"`
	Pid       PidCmd       `cmd:"pid" help:"Print the pid of a running service"`
	Status    StatusCmd    `cmd:"status" help:"Show recorded service processes and whether they are alive"`
	Schema    SchemaCmd    `cmd:"schema" help:"Compile schema bindings for a service"`
	Settings  SettingsCmd  `cmd:"settings" help:"Show settings file location and available options"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes inherit debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}

// Overrides collects the layout-related flags
func (c *CLI) Overrides() config.Overrides {
	return config.Overrides{
		AbortPolicy:    c.AbortPolicy,
		BranchPolicy:   c.BranchPolicy,
		CommandTimeout: c.CommandTimeout,
		HarnessDir:     c.HarnessDir,
		PrimaryBranch:  c.PrimaryBranch,
		RegistryPath:   c.Registry,
		SourceRoot:     c.SourceRoot,
		StopTimeout:    c.StopTimeout,
	}
}

// container resolves the layout and wires the container on first use.
// It runs after logging is initialized so GORM's logger has a target.
func (c *CLI) container() (*Container, error) {
	if c.Container != nil {
		return c.Container, nil
	}

	layout, err := config.Resolve(c.settings, c.Overrides())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve configuration: %w", err)
	}

	container, err := NewContainer(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	return container, nil
}

// configuredServices returns the services list from settings.json
func (c *CLI) configuredServices() []string {
	if c.settings == nil {
		return nil
	}
	return c.settings.Services
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

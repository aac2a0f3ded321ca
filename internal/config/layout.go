package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocart/cukesvc/internal/domain"
)

// Environment variables consulted between CLI flags and settings.json
const (
	EnvAbortPolicy   = "CUKESVC_ABORT_POLICY"
	EnvBranchPolicy  = "CUKESVC_BRANCH_POLICY"
	EnvHarnessDir    = "CUKESVC_HARNESS_DIR"
	EnvPrimaryBranch = "CUKESVC_PRIMARY_BRANCH"
	EnvSourceRoot    = "CUKESVC_SOURCE_ROOT"
)

// Defaults
const (
	DefaultCommandTimeout = 5 * time.Minute
	DefaultHarnessName    = "go-cart-tests"
	DefaultPrimaryBranch  = "master"
	DefaultProtoc         = "protoc"
	DefaultStopTimeout    = 10 * time.Second
)

// DefaultBuildCommand builds with dependency-pinned semantics
var DefaultBuildCommand = []string{"godep", "go", "build"}

// Overrides carries values given on the command line; zero values are unset
type Overrides struct {
	AbortPolicy    string
	BranchPolicy   string
	CommandTimeout time.Duration
	HarnessDir     string
	PrimaryBranch  string
	RegistryPath   string
	SourceRoot     string
	StopTimeout    time.Duration
}

// Layout is the fully resolved, immutable configuration of a run.
// Every path in it is absolute.
type Layout struct {
	AbortPolicy    domain.AbortPolicy
	BranchPolicy   domain.BranchPolicy
	BuildCommand   []string
	CommandTimeout time.Duration
	HarnessDir     string
	HarnessName    string
	LogDir         string
	Manifest       *Manifest
	PrimaryBranch  string
	Protoc         string
	RegistryPath   string
	SchemaBase     string
	SchemaDirName  string
	SourceRoot     string
	StopTimeout    time.Duration
	SupportDir     string
}

// Resolve merges overrides, environment, settings and defaults into a Layout.
// Precedence: CLI flags > env vars > settings.json > defaults.
func Resolve(settings *Settings, overrides Overrides) (*Layout, error) {
	if settings == nil {
		settings = &Settings{}
	}

	harnessDir := firstNonEmpty(overrides.HarnessDir, os.Getenv(EnvHarnessDir), settings.HarnessDir)
	if harnessDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine harness directory: %w", err)
		}
		harnessDir = wd
	}
	harnessDir, err := filepath.Abs(ExpandPath(harnessDir))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve harness directory: %w", err)
	}

	sourceRoot := firstNonEmpty(overrides.SourceRoot, os.Getenv(EnvSourceRoot), settings.SourceRoot, DefaultSourceRoot())
	sourceRoot, err = filepath.Abs(ExpandPath(sourceRoot))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source root: %w", err)
	}

	abortPolicy, err := domain.ParseAbortPolicy(firstNonEmpty(overrides.AbortPolicy, os.Getenv(EnvAbortPolicy), settings.AbortPolicy, string(domain.AbortPolicyKeep)))
	if err != nil {
		return nil, err
	}
	branchPolicy, err := domain.ParseBranchPolicy(firstNonEmpty(overrides.BranchPolicy, os.Getenv(EnvBranchPolicy), settings.BranchPolicy, string(domain.BranchPolicyWarn)))
	if err != nil {
		return nil, err
	}

	buildCommand := DefaultBuildCommand
	if len(settings.BuildCommand) > 0 {
		buildCommand = settings.BuildCommand
	}

	supportDir := filepath.Join(harnessDir, "features", "support")

	manifest, err := LoadManifest(filepath.Join(supportDir, ManifestFileName))
	if err != nil {
		return nil, err
	}

	layout := &Layout{
		AbortPolicy:    abortPolicy,
		BranchPolicy:   branchPolicy,
		BuildCommand:   append([]string(nil), buildCommand...),
		CommandTimeout: firstDuration(overrides.CommandTimeout, seconds(settings.CommandTimeoutSeconds), DefaultCommandTimeout),
		HarnessDir:     harnessDir,
		HarnessName:    firstNonEmpty(settings.HarnessName, DefaultHarnessName),
		LogDir:         filepath.Join(supportDir, "logs"),
		Manifest:       manifest,
		PrimaryBranch:  firstNonEmpty(overrides.PrimaryBranch, os.Getenv(EnvPrimaryBranch), settings.PrimaryBranch, DefaultPrimaryBranch),
		Protoc:         firstNonEmpty(settings.Protoc, DefaultProtoc),
		RegistryPath:   ExpandPath(firstNonEmpty(overrides.RegistryPath, GetDBPath())),
		SchemaBase:     domain.DefaultSchemaBase,
		SchemaDirName:  firstNonEmpty(settings.SchemaDir, domain.DefaultSchemaDirName),
		SourceRoot:     sourceRoot,
		StopTimeout:    firstDuration(overrides.StopTimeout, seconds(settings.StopTimeoutSeconds), DefaultStopTimeout),
		SupportDir:     supportDir,
	}

	return layout, nil
}

// Service builds the Service for name, applying manifest overrides
func (l *Layout) Service(name string) (domain.Service, error) {
	svc, err := domain.NewService(name, l.SourceRoot)
	if err != nil {
		return domain.Service{}, err
	}

	if l.Manifest != nil {
		if entry, ok := l.Manifest.Lookup(name); ok {
			svc.PrimaryBranch = entry.PrimaryBranch
			for _, b := range entry.Bindings {
				lang, err := domain.ParseLanguage(b)
				if err != nil {
					return domain.Service{}, fmt.Errorf("service %q: %w", name, err)
				}
				svc.Bindings = append(svc.Bindings, lang)
			}
		}
	}

	return svc, nil
}

// Services builds services for names in order. With no names, the manifest
// order is used, then the settings list.
func (l *Layout) Services(names []string, fallback []string) ([]domain.Service, error) {
	if len(names) == 0 && l.Manifest != nil {
		names = l.Manifest.Names()
	}
	if len(names) == 0 {
		names = fallback
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no services given and none configured in %s or settings.json", ManifestFileName)
	}

	services := make([]domain.Service, 0, len(names))
	for _, name := range names {
		svc, err := l.Service(name)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

// SchemaDir returns the schema directory inside a service checkout
func (l *Layout) SchemaDir(svc domain.Service) string {
	return filepath.Join(svc.Dir(), l.SchemaDirName)
}

// PrimaryBranchFor returns the branch svc is expected to be on
func (l *Layout) PrimaryBranchFor(svc domain.Service) string {
	return firstNonEmpty(svc.PrimaryBranch, l.PrimaryBranch)
}

// EnvTemplate returns the support-directory template of the service env script
func (l *Layout) EnvTemplate(svc domain.Service) string {
	return filepath.Join(l.SupportDir, svc.EnvFileName())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstDuration(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func seconds(v *int) time.Duration {
	if v == nil {
		return 0
	}
	return time.Duration(*v) * time.Second
}

package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// FakeBuildScript stands in for the real build command: it writes a service
// that prints GREETING from its sourced env file and then sleeps
const FakeBuildScript = `printf '#!/bin/sh\necho "$GREETING"\nexec sleep 60\n' > "$CUKESVC_BINARY" && chmod +x "$CUKESVC_BINARY"`

// TestEnvironment provides an isolated test environment with its own
// CUKESVC_HOME, test harness directory and source root.
//
// Layout:
//
//	tb.TempDir()/
//	├── home/                        <- CUKESVC_HOME
//	├── src/                         <- CUKESVC_SOURCE_ROOT
//	│   └── <service>/myWireFormat/
//	└── tests/go-cart-tests/         <- working directory of every command
//	    └── features/support/logs/
type TestEnvironment struct {
	Home       string
	SourceRoot string
	WorkDir    string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	env := &TestEnvironment{
		Home:       filepath.Join(root, "home"),
		SourceRoot: filepath.Join(root, "src"),
		WorkDir:    filepath.Join(root, "tests", "go-cart-tests"),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}

	for _, dir := range []string{env.Home, env.SourceRoot, env.LogDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out CUKESVC_* variables and sets:
//   - CUKESVC_HOME to the temp directory
//   - CUKESVC_DEBUG to empty string (disables debug logging)
//   - CUKESVC_SOURCE_ROOT to the fake source root
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "CUKESVC_") {
			continue
		}
		if _, ok := e.extraEnv[key]; ok {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"CUKESVC_HOME="+e.Home,
		"CUKESVC_DEBUG=",
		"CUKESVC_SOURCE_ROOT="+e.SourceRoot,
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test handle registry.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "state.db")
}

// SupportDir returns features/support of the test harness directory.
func (e *TestEnvironment) SupportDir() string {
	return filepath.Join(e.WorkDir, "features", "support")
}

// LogDir returns the directory service logs are written to.
func (e *TestEnvironment) LogDir() string {
	return filepath.Join(e.SupportDir(), "logs")
}

// ServiceDir returns the checkout directory of a service.
func (e *TestEnvironment) ServiceDir(name string) string {
	return filepath.Join(e.SourceRoot, name)
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteSettings writes settings.json into CUKESVC_HOME.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.Home, "settings.json"), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// UseFakeBuild configures settings.json so services are "built" by
// FakeBuildScript and stopped quickly.
func (e *TestEnvironment) UseFakeBuild() {
	e.tb.Helper()
	e.WriteSettings(map[string]any{
		"build_command":        []string{"sh", "-c", FakeBuildScript},
		"stop_timeout_seconds": 5,
	})
}

// AddService creates a service checkout on branch with a schema whose Go
// binding is already current, plus its env template in the support directory.
func (e *TestEnvironment) AddService(name, branch string) {
	e.tb.Helper()

	dir := e.ServiceDir(name)
	NewServiceCheckout(e.tb, dir, branch)

	schemaDir := filepath.Join(dir, "myWireFormat")
	proto := filepath.Join(schemaDir, "my_wire_format.proto")
	e.writeFile(proto, "syntax = \"proto3\";\n")
	e.writeFile(filepath.Join(schemaDir, "my_wire_format.pb.go"), "package myWireFormat\n")

	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(proto, old, old); err != nil {
		e.tb.Fatalf("Failed to age %s: %v", proto, err)
	}

	e.writeFile(filepath.Join(e.SupportDir(), name+"_env.sh"), "export GREETING='hello from "+name+"'\n")
}

// WriteLog creates a file in the service log directory.
func (e *TestEnvironment) WriteLog(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.LogDir(), name)
	e.writeFile(path, content)
	return path
}

func (e *TestEnvironment) writeFile(path, content string) {
	e.tb.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", path, err)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ParsesServicesInBothForms(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"),
		[]byte(`{"services": "alpha, beta", "build_command": ["go", "build"], "stop_timeout_seconds": 3}`), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, StringArray{"alpha", "beta"}, settings.Services)
	assert.Equal(t, []string{"go", "build"}, settings.BuildCommand)
	require.NotNil(t, settings.StopTimeoutSeconds)
	assert.Equal(t, 3, *settings.StopTimeoutSeconds)

	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"),
		[]byte(`{"services": ["gamma"]}`), 0644))

	settings, err = LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, StringArray{"gamma"}, settings.Services)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv(EnvHome, filepath.Join(t.TempDir(), "nested"))

	require.NoError(t, SaveSettings(&Settings{PrimaryBranch: "main"}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "main", settings.PrimaryBranch)
}

func TestGetSettingsExample_CoversEveryKey(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{
		"abort_policy", "branch_policy", "build_command", "command_timeout_seconds",
		"debug", "harness_dir", "harness_name", "max_log_files", "primary_branch",
		"protoc", "schema_dir", "services", "source_root", "stop_timeout_seconds",
	} {
		assert.Contains(t, example, key)
		assert.NotNil(t, example[key], key)
	}
	assert.Equal(t, []string{"godep", "go", "build"}, example["build_command"])
}

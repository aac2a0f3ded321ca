package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gocart/cukesvc/test/integration/harness"
)

func TestSettings(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "table format (default)",
			args:         []string{"settings"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file: "+filepath.Join(env.Home, "settings.json"))
				harness.AssertStdoutContains(t, result, "Example settings.json:")
				harness.AssertStdoutContains(t, result, "build_command")
				harness.AssertStdoutContains(t, result, "primary_branch")
			},
		},
		{
			name:         "json format",
			args:         []string{"settings", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var output struct {
					Format       map[string]any `json:"format"`
					SettingsFile string         `json:"settings_file"`
				}
				harness.DecodeJSON(t, result, &output)
				assert.Equal(t, filepath.Join(env.Home, "settings.json"), output.SettingsFile)
				assert.Contains(t, output.Format, "abort_policy")
				assert.Contains(t, output.Format, "stop_timeout_seconds")
			},
		},
		{
			name:         "invalid format",
			args:         []string{"settings", "--format", "yaml"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "cukesvc "+harness.Version)
}

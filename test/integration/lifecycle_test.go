package integration_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocart/cukesvc/internal/adapters/process"
	"github.com/gocart/cukesvc/test/integration/harness"
)

// newServiceEnvironment creates an environment with the fake build and the
// given services checked out on master
func newServiceEnvironment(t *testing.T, services ...string) *harness.TestEnvironment {
	t.Helper()

	env := harness.NewTestEnvironment(t)
	env.UseFakeBuild()
	for _, name := range services {
		env.AddService(name, "master")
	}

	// Never leave fake services running, whatever the test outcome
	t.Cleanup(func() {
		harness.RunCommand(t, env, append([]string{"down"}, services...)...)
	})
	return env
}

func processAlive(pid int) bool {
	return process.NewOSProcessTable().Alive(pid)
}

func readStatus(t *testing.T, env *harness.TestEnvironment) map[string]harness.StatusEntry {
	t.Helper()
	return harness.ParseStatus(t, harness.RunCommand(t, env, "status", "--format", "json"))
}

func TestUpAndDown(t *testing.T) {
	env := newServiceEnvironment(t, "alpha", "beta")
	stale := env.WriteLog("old_cucumber.log", "old run")

	result := harness.RunCommand(t, env, "up", "alpha", "beta")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "set-up")
	harness.AssertReportLine(t, result, "alpha", "pid ", "log: "+filepath.Join(env.LogDir(), "alpha_cucumber.log"))
	harness.AssertReportLine(t, result, "beta", "pid ", "log: "+filepath.Join(env.LogDir(), "beta_cucumber.log"))

	// up cleans logs of earlier runs by default
	assert.NoFileExists(t, stale)

	for _, name := range []string{"alpha", "beta"} {
		assert.FileExists(t, filepath.Join(env.ServiceDir(name), name+"_env.sh"))
		assert.FileExists(t, filepath.Join(env.ServiceDir(name), name))

		logPath := filepath.Join(env.LogDir(), name+"_cucumber.log")
		require.Eventually(t, func() bool {
			data, err := os.ReadFile(logPath)
			return err == nil && string(data) == "hello from "+name+"\n"
		}, 10*time.Second, 50*time.Millisecond, "log of %s", name)
	}

	entries := readStatus(t, env)
	require.Len(t, entries, 2)
	pids := make(map[string]int)
	for name, entry := range entries {
		assert.True(t, entry.Alive, "%s should be alive", name)
		assert.NotEmpty(t, entry.RunID)
		assert.WithinDuration(t, time.Now(), entry.StartedAt, time.Minute)
		pids[name] = entry.PID
	}
	assert.Equal(t, entries["alpha"].RunID, entries["beta"].RunID, "one run launches both")
	harness.AssertReportLine(t, result, "alpha", "pid "+strconv.Itoa(pids["alpha"]))

	assert.Equal(t, pids["alpha"], harness.ParsePID(t, harness.RunCommand(t, env, "pid", "alpha")))

	result = harness.RunCommand(t, env, "status")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "SERVICE")
	harness.AssertStdoutContains(t, result, "running")

	result = harness.RunCommand(t, env, "down", "alpha", "beta")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "tear-down")
	harness.AssertReportLine(t, result, "alpha", "done")
	harness.AssertReportLine(t, result, "beta", "done")

	for _, name := range []string{"alpha", "beta"} {
		assert.False(t, processAlive(pids[name]), "%s should be stopped", name)
		assert.NoFileExists(t, filepath.Join(env.ServiceDir(name), name+"_env.sh"))
		assert.NoFileExists(t, filepath.Join(env.ServiceDir(name), name))
		// Logs survive tear-down
		assert.FileExists(t, filepath.Join(env.LogDir(), name+"_cucumber.log"))
	}

	assert.Empty(t, readStatus(t, env))
}

func TestDown_NothingRunning(t *testing.T) {
	env := newServiceEnvironment(t, "alpha")

	result := harness.RunCommand(t, env, "down", "alpha")

	harness.AssertSuccess(t, result)
	harness.AssertReportLine(t, result, "alpha", "done")
}

func TestUp_ServicesFromManifest(t *testing.T) {
	env := newServiceEnvironment(t, "alpha", "beta")
	manifest := "services:\n  - name: beta\n  - name: alpha\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.SupportDir(), "services.yaml"), []byte(manifest), 0644))

	result := harness.RunCommand(t, env, "up")
	harness.AssertSuccess(t, result)

	// Results are listed in manifest order
	assert.Less(t, strings.Index(result.Stdout, "beta"), strings.Index(result.Stdout, "alpha"))
	assert.Len(t, readStatus(t, env), 2)
}

func TestUp_Abort(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		alphaAlive bool
	}{
		{
			name:       "keep policy leaves started services running",
			args:       []string{"up", "alpha", "ghost", "beta"},
			alphaAlive: true,
		},
		{
			name:       "teardown policy stops started services",
			args:       []string{"--abort-policy", "teardown", "up", "alpha", "ghost", "beta"},
			alphaAlive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ghost has no checkout, which aborts the run
			env := newServiceEnvironment(t, "alpha", "beta")

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertFailure(t, result)
			harness.AssertReportLine(t, result, "ghost", "aborting run")
			harness.AssertReportLine(t, result, "beta", "skipped")
			assert.NoFileExists(t, filepath.Join(env.ServiceDir("beta"), "beta"))

			entries := readStatus(t, env)
			if !tt.alphaAlive {
				harness.AssertStdoutContains(t, result, "tear-down")
				assert.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			assert.True(t, entries["alpha"].Alive)
		})
	}
}

func TestUp_BranchPolicy(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantFail bool
	}{
		{
			name: "warn",
			args: []string{"up", "gamma"},
		},
		{
			name:     "fail",
			args:     []string{"--branch-policy", "fail", "up", "gamma"},
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newServiceEnvironment(t, "gamma")
			harness.RunGitCommand(t, env.ServiceDir("gamma"), "checkout", "-b", "feature-x")

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertStdoutContains(t, result, "gamma is not on master branch but on branch: feature-x")
			if tt.wantFail {
				harness.AssertFailure(t, result)
				assert.Empty(t, readStatus(t, env))
				return
			}
			harness.AssertSuccess(t, result)
			assert.Len(t, readStatus(t, env), 1)
		})
	}
}

func TestUp_PrimaryBranchFromEnv(t *testing.T) {
	env := newServiceEnvironment(t, "gamma")
	harness.RunGitCommand(t, env.ServiceDir("gamma"), "checkout", "-b", "main")
	env.SetEnv("CUKESVC_PRIMARY_BRANCH", "main")

	result := harness.RunCommand(t, env, "--branch-policy", "fail", "up", "gamma")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, "not on main branch")
}

func TestPid_NotRunning(t *testing.T) {
	env := newServiceEnvironment(t, "alpha")

	result := harness.RunCommand(t, env, "pid", "alpha")

	harness.AssertError(t, result, "no running process matches")
	harness.AssertStdoutEmpty(t, result)
}

func TestCleanLogs(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	oldLog := env.WriteLog("alpha_cucumber.log", "old")
	notes := env.WriteLog("notes.txt", "keep me")

	result := harness.RunCommand(t, env, "clean-logs")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, oldLog)
	harness.AssertStdoutNotContains(t, result, notes)
	assert.NoFileExists(t, oldLog)
	assert.FileExists(t, notes)

	// A second run finds nothing to remove
	result = harness.RunCommand(t, env, "clean-logs")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutEmpty(t, result)
}

func TestUp_NoServicesConfigured(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "up")

	harness.AssertError(t, result, "no services given")
}

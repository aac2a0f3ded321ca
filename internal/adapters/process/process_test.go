package process

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocart/cukesvc/internal/domain"
)

// copySleep copies the sleep binary to dir/name so the process shows up
// in the process table under that name
func copySleep(t *testing.T, dir, name string) string {
	t.Helper()

	src, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not installed")
	}

	in, err := os.Open(src)
	require.NoError(t, err)
	defer in.Close()

	dst := filepath.Join(dir, name)
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	require.NoError(t, err)
	_, err = io.Copy(out, in)
	require.NoError(t, err)
	require.NoError(t, out.Close())

	return dst
}

func TestOSProcessTable_ListFindsProcessByName(t *testing.T) {
	binary := copySleep(t, t.TempDir(), "foo-server")

	cmd := exec.Command(binary, "30")
	require.NoError(t, cmd.Start())
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	procs, err := NewOSProcessTable().List(context.Background())
	require.NoError(t, err)

	var found *domain.ProcessInfo
	for i := range procs {
		if procs[i].PID == cmd.Process.Pid {
			found = &procs[i]
			break
		}
	}
	require.NotNil(t, found, "launched process missing from table")
	assert.Equal(t, "foo-server", found.Name)
}

func TestShellLauncher_StartsDetachedWithEnvAndLog(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "alpha_env.sh")
	require.NoError(t, os.WriteFile(envFile, []byte("export GREETING=hello\n"), 0644))

	binary := filepath.Join(dir, "alpha")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\necho \"$GREETING from alpha\"\nexec sleep 30\n"), 0755))

	logPath := filepath.Join(t.TempDir(), "logs", "alpha_cucumber.log")

	handle, err := NewShellLauncher().Launch(context.Background(), domain.LaunchSpec{
		BinaryPath: binary,
		Dir:        dir,
		EnvFile:    envFile,
		LogPath:    logPath,
		RunID:      "run-1",
		Service:    "alpha",
	})
	require.NoError(t, err)

	table := NewOSProcessTable()
	t.Cleanup(func() { _ = table.Signal(handle.PID, handle.PGID, syscall.SIGKILL) })

	assert.Equal(t, "alpha", handle.Service)
	assert.Equal(t, "run-1", handle.RunID)
	assert.Equal(t, handle.PID, handle.PGID)
	assert.NotEmpty(t, handle.ID)
	assert.True(t, table.Alive(handle.PID))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(logPath)
		return err == nil && string(data) == "hello from alpha\n"
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, table.Signal(handle.PID, handle.PGID, syscall.SIGTERM))

	assert.Eventually(t, func() bool {
		return !table.Alive(handle.PID)
	}, 5*time.Second, 20*time.Millisecond)
}

func TestShellLauncher_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewShellLauncher().Launch(ctx, domain.LaunchSpec{Service: "alpha"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOSProcessTable_SignalRejectsInvalidTargets(t *testing.T) {
	table := NewOSProcessTable()

	assert.ErrorIs(t, table.Signal(0, 0, syscall.SIGTERM), domain.ErrProcessNotFound)
	assert.ErrorIs(t, table.Signal(1, 0, syscall.SIGTERM), domain.ErrProcessNotFound)
	assert.False(t, table.Alive(0))
}

func TestOSProcessTable_StartTime(t *testing.T) {
	table := NewOSProcessTable()

	before := time.Now()
	running := exec.Command("sleep", "30")
	require.NoError(t, running.Start())
	t.Cleanup(func() {
		_ = running.Process.Kill()
		_ = running.Wait()
	})

	started, err := table.StartTime(context.Background(), running.Process.Pid)
	require.NoError(t, err)
	assert.WithinDuration(t, before, started, 5*time.Second)

	exited := exec.Command("true")
	require.NoError(t, exited.Run())

	_, err = table.StartTime(context.Background(), exited.Process.Pid)
	assert.ErrorIs(t, err, domain.ErrProcessNotFound)
}

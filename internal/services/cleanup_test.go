package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveArtifacts(t *testing.T) {
	layout := newTestLayout(t)
	svc := addService(t, layout, "alpha")
	writeFile(t, svc.EnvFile(), "export A=1\n", 0644)
	writeFile(t, svc.BinaryPath(), "#!/bin/sh\n", 0755)

	cleanup := NewCleanupService(layout)
	require.NoError(t, cleanup.RemoveEnvConfig(svc))
	require.NoError(t, cleanup.RemoveBinary(svc))

	assert.NoFileExists(t, svc.EnvFile())
	assert.NoFileExists(t, svc.BinaryPath())
	assert.DirExists(t, svc.Dir())
}

func TestRemoveArtifacts_AbsentIsNoop(t *testing.T) {
	layout := newTestLayout(t)
	svc := addService(t, layout, "alpha")

	cleanup := NewCleanupService(layout)
	assert.NoError(t, cleanup.RemoveEnvConfig(svc))
	assert.NoError(t, cleanup.RemoveBinary(svc))

	// Service directory missing entirely
	ghost, err := layout.Service("ghost")
	require.NoError(t, err)
	assert.NoError(t, cleanup.RemoveEnvConfig(ghost))
	assert.NoError(t, cleanup.RemoveBinary(ghost))
}

func TestRemoveBinary_RefusesDirectory(t *testing.T) {
	layout := newTestLayout(t)
	svc := addService(t, layout, "alpha")
	require.NoError(t, os.MkdirAll(svc.BinaryPath(), 0755))

	assert.Error(t, NewCleanupService(layout).RemoveBinary(svc))
	assert.DirExists(t, svc.BinaryPath())
}

func TestCleanupLogs_RemovesOnlyServiceLogs(t *testing.T) {
	layout := newTestLayout(t)
	alphaLog := filepath.Join(layout.LogDir, "alpha_cucumber.log")
	betaLog := filepath.Join(layout.LogDir, "beta_cucumber.log")
	other := filepath.Join(layout.LogDir, "other.txt")
	writeFile(t, alphaLog, "alpha\n", 0644)
	writeFile(t, betaLog, "beta\n", 0644)
	writeFile(t, other, "keep\n", 0644)

	removed, err := NewCleanupService(layout).CleanupLogs()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{alphaLog, betaLog}, removed)
	assert.NoFileExists(t, alphaLog)
	assert.NoFileExists(t, betaLog)
	assert.FileExists(t, other)
}

func TestCleanupLogs_MissingDir(t *testing.T) {
	layout := newTestLayout(t)

	removed, err := NewCleanupService(layout).CleanupLogs()
	assert.NoError(t, err)
	assert.Empty(t, removed)
}

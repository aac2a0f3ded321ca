package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWhenDebugOff(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_WritesToDebugFile(t *testing.T) {
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvDebugFile, "")

	debugFile := filepath.Join(t.TempDir(), "nested", "debug.log")
	path, err := Initialize(false, debugFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, debugFile, path)

	Logger.Info("hello from test", "service", "alpha")

	data, err := os.ReadFile(debugFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, ts, ts))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 2))

	assert.NoFileExists(t, filepath.Join(dir, "a.log"))
	assert.NoFileExists(t, filepath.Join(dir, "b.log"))
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

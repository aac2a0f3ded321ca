package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocart/cukesvc/internal/domain"
)

func TestProvision_CopiesTemplateWithMode(t *testing.T) {
	layout := newTestLayout(t)
	svc := addService(t, layout, "alpha")
	writeFile(t, layout.EnvTemplate(svc), "export ALPHA_PORT=9000\n", 0750)

	require.NoError(t, NewProvisionService(layout).Provision(svc))

	data, err := os.ReadFile(svc.EnvFile())
	require.NoError(t, err)
	assert.Equal(t, "export ALPHA_PORT=9000\n", string(data))

	info, err := os.Stat(svc.EnvFile())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0750), info.Mode().Perm())
}

func TestProvision_OverwritesPreviousCopy(t *testing.T) {
	layout := newTestLayout(t)
	svc := addService(t, layout, "alpha")
	writeFile(t, svc.EnvFile(), "export OLD=1\nexport MORE=2\n", 0644)

	require.NoError(t, NewProvisionService(layout).Provision(svc))

	data, err := os.ReadFile(svc.EnvFile())
	require.NoError(t, err)
	assert.Equal(t, "export alpha_PORT=8080\n", string(data))
}

func TestProvision_MissingServiceDirAborts(t *testing.T) {
	layout := newTestLayout(t)
	svc, err := layout.Service("ghost")
	require.NoError(t, err)
	writeFile(t, layout.EnvTemplate(svc), "export GHOST=1\n", 0644)

	err = NewProvisionService(layout).Provision(svc)
	assert.ErrorIs(t, err, domain.ErrAbortRun)

	_, statErr := os.Stat(svc.Dir())
	assert.True(t, os.IsNotExist(statErr), "no copy may create the service directory")
}

func TestProvision_MissingTemplateIsOrdinaryError(t *testing.T) {
	layout := newTestLayout(t)
	svc := addService(t, layout, "alpha")
	require.NoError(t, os.Remove(layout.EnvTemplate(svc)))

	err := NewProvisionService(layout).Provision(svc)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAbortRun)
	assert.NoFileExists(t, filepath.Join(svc.Dir(), svc.EnvFileName()))
}

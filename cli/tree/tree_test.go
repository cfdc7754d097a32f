package tree

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stencil-cli/stencil/cli/templates"
)

func seedRegistry(t *testing.T, withStorage bool) string {
	t.Helper()
	home := t.TempDir()

	storageDir := filepath.Join(home, "templates", "base")
	if withStorage {
		require.NoError(t, os.MkdirAll(storageDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(storageDir, "main.go"),
			[]byte("package main\n"), 0644))
	}

	registryPath := filepath.Join(home, "registry")
	registry, err := templates.OpenRegistry(registryPath)
	require.NoError(t, err)
	require.NoError(t, registry.Add(templates.Template{
		ID:          uuid.NewString(),
		Name:        "base",
		StoragePath: storageDir,
		CreatedAt:   time.Now().UTC(),
	}))
	require.NoError(t, registry.Close())

	return registryPath
}

func TestRunRendersTree(t *testing.T) {
	registryPath := seedRegistry(t, true)
	require.NoError(t, Run(registryPath, "base"))
}

func TestRunMissingTemplate(t *testing.T) {
	registryPath := seedRegistry(t, true)
	err := Run(registryPath, "ghost")
	require.ErrorIs(t, err, templates.ErrTemplateNotFound)
}

func TestRunDanglingStorage(t *testing.T) {
	registryPath := seedRegistry(t, false)
	err := Run(registryPath, "base")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stencil doctor")
}

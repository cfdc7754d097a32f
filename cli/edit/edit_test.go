package edit

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

func seedRegistry(t *testing.T) (*templates.Registry, templates.Template) {
	t.Helper()
	home := t.TempDir()

	storageDir := filepath.Join(home, "templates", "base")
	require.NoError(t, os.MkdirAll(storageDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(storageDir, "main.go"),
		[]byte("package main\n"), 0644))

	record := templates.Template{
		ID:          uuid.NewString(),
		Name:        "base",
		Description: "starter",
		StoragePath: storageDir,
		SourcePath:  "/work/project",
		CreatedAt:   time.Now().UTC(),
	}

	registry, err := templates.OpenRegistry(filepath.Join(home, "registry"))
	require.NoError(t, err)
	require.NoError(t, registry.Add(record))
	t.Cleanup(func() { registry.Close() })

	return registry, record
}

func TestRenameTemplate(t *testing.T) {
	registry, record := seedRegistry(t)

	require.NoError(t, RenameTemplate(registry, record, "renamed"))

	_, err := registry.Get("base")
	require.ErrorIs(t, err, templates.ErrTemplateNotFound)

	renamed, err := registry.Get("renamed")
	require.NoError(t, err)
	assert.Equal(t, record.ID, renamed.ID)
	assert.Equal(t, "starter", renamed.Description)

	newStorage := filepath.Join(filepath.Dir(record.StoragePath), "renamed")
	assert.Equal(t, newStorage, renamed.StoragePath)
	require.NoDirExists(t, record.StoragePath)
	require.FileExists(t, filepath.Join(newStorage, "main.go"))
}

func TestRenameTemplateSameName(t *testing.T) {
	registry, record := seedRegistry(t)

	require.NoError(t, RenameTemplate(registry, record, "base"))
	require.DirExists(t, record.StoragePath)
}

func TestRenameTemplateBadName(t *testing.T) {
	registry, record := seedRegistry(t)

	err := RenameTemplate(registry, record, ".hidden")
	require.Error(t, err)
	require.DirExists(t, record.StoragePath)
}

func TestRenameTemplateNameTaken(t *testing.T) {
	registry, record := seedRegistry(t)
	require.NoError(t, registry.Add(templates.Template{
		ID:        uuid.NewString(),
		Name:      "taken",
		CreatedAt: time.Now().UTC(),
	}))

	err := RenameTemplate(registry, record, "taken")
	require.ErrorIs(t, err, templates.ErrTemplateExists)

	// Nothing moved.
	require.DirExists(t, record.StoragePath)
	_, err = registry.Get("base")
	require.NoError(t, err)
}

func TestRenameTemplateDanglingStorage(t *testing.T) {
	registry, record := seedRegistry(t)
	require.NoError(t, os.RemoveAll(record.StoragePath))

	// Renaming a record whose storage is gone still renames the entry.
	require.NoError(t, RenameTemplate(registry, record, "renamed"))
	_, err := registry.Get("renamed")
	require.NoError(t, err)
}

func TestSetDescription(t *testing.T) {
	registry, record := seedRegistry(t)

	require.NoError(t, SetDescription(registry, record, "updated text"))

	got, err := registry.Get("base")
	require.NoError(t, err)
	assert.Equal(t, "updated text", got.Description)
	assert.Equal(t, record.ID, got.ID)
}

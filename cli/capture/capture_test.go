package capture

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/templates"
)

// testEnv returns capture context pieces pointing at a fresh stencil home.
func testEnv(t *testing.T) (*config.CliOpts, string) {
	t.Helper()
	home := t.TempDir()
	cliOpts := &config.CliOpts{
		Storage: &config.StorageOpts{
			TemplatesDir: filepath.Join(home, "templates"),
		},
		Capture: &config.CaptureOpts{},
		Copy: &config.CopyOpts{
			SymlinkPolicy: "preserve",
			KeepEmptyDirs: true,
		},
	}
	return cliOpts, filepath.Join(home, "registry")
}

func writeSourceTree(t *testing.T) string {
	t.Helper()
	sourceDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(sourceDir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "src", "main.go"),
		[]byte("package main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "README.md"),
		[]byte("# project\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "debug.log"),
		[]byte("noise\n"), 0644))
	return sourceDir
}

func TestFillCtx(t *testing.T) {
	cliOpts, _ := testEnv(t)

	var captureCtx capture_ctx.CaptureCtx
	require.NoError(t, FillCtx(cliOpts, &captureCtx, []string{"base"}))
	assert.Equal(t, "base", captureCtx.Name)
	assert.NotEmpty(t, captureCtx.WorkDir)
	assert.Same(t, cliOpts, captureCtx.CliOpts)

	err := FillCtx(cliOpts, &capture_ctx.CaptureCtx{}, []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing template name")
}

func TestRunCapturesDirectory(t *testing.T) {
	cliOpts, registryPath := testEnv(t)
	sourceDir := writeSourceTree(t)

	captureCtx := capture_ctx.CaptureCtx{
		Name:            "base",
		Description:     "starter project",
		SourceDir:       sourceDir,
		ExcludePatterns: []string{"*.log"},
		CliOpts:         cliOpts,
		RegistryPath:    registryPath,
	}
	require.NoError(t, Run(context.Background(), &captureCtx))

	storageDir := filepath.Join(cliOpts.Storage.TemplatesDir, "base")
	require.FileExists(t, filepath.Join(storageDir, "src", "main.go"))
	require.FileExists(t, filepath.Join(storageDir, "README.md"))
	require.NoFileExists(t, filepath.Join(storageDir, "debug.log"))

	registry, err := templates.OpenRegistry(registryPath)
	require.NoError(t, err)
	defer registry.Close()

	record, err := registry.Get("base")
	require.NoError(t, err)
	assert.Equal(t, "starter project", record.Description)
	assert.Equal(t, storageDir, record.StoragePath)
	assert.Equal(t, sourceDir, record.SourcePath)
	assert.NotEmpty(t, record.ID)
}

func TestRunDuplicateName(t *testing.T) {
	cliOpts, registryPath := testEnv(t)
	sourceDir := writeSourceTree(t)

	captureCtx := capture_ctx.CaptureCtx{
		Name:         "base",
		SourceDir:    sourceDir,
		CliOpts:      cliOpts,
		RegistryPath: registryPath,
	}
	require.NoError(t, Run(context.Background(), &captureCtx))

	err := Run(context.Background(), &captureCtx)
	require.ErrorIs(t, err, templates.ErrTemplateExists)
}

func TestRunForceReplaces(t *testing.T) {
	cliOpts, registryPath := testEnv(t)
	sourceDir := writeSourceTree(t)

	captureCtx := capture_ctx.CaptureCtx{
		Name:         "base",
		SourceDir:    sourceDir,
		CliOpts:      cliOpts,
		RegistryPath: registryPath,
	}
	require.NoError(t, Run(context.Background(), &captureCtx))

	// Recapture a trimmed source with --force.
	require.NoError(t, os.RemoveAll(filepath.Join(sourceDir, "src")))
	captureCtx.ForceMode = true
	captureCtx.Description = "second take"
	require.NoError(t, Run(context.Background(), &captureCtx))

	storageDir := filepath.Join(cliOpts.Storage.TemplatesDir, "base")
	require.NoDirExists(t, filepath.Join(storageDir, "src"))
	require.FileExists(t, filepath.Join(storageDir, "README.md"))

	registry, err := templates.OpenRegistry(registryPath)
	require.NoError(t, err)
	defer registry.Close()

	record, err := registry.Get("base")
	require.NoError(t, err)
	assert.Equal(t, "second take", record.Description)
}

func TestRunRollsBackStagingOnCopyError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	cliOpts, registryPath := testEnv(t)
	sourceDir := writeSourceTree(t)
	require.NoError(t, os.Chmod(filepath.Join(sourceDir, "README.md"), 0000))

	captureCtx := capture_ctx.CaptureCtx{
		Name:         "base",
		SourceDir:    sourceDir,
		CliOpts:      cliOpts,
		RegistryPath: registryPath,
	}
	require.Error(t, Run(context.Background(), &captureCtx))

	require.NoDirExists(t, filepath.Join(cliOpts.Storage.TemplatesDir, "base"))
	entries, err := os.ReadDir(cliOpts.Storage.TemplatesDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	registry, err := templates.OpenRegistry(registryPath)
	require.NoError(t, err)
	defer registry.Close()

	_, err = registry.Get("base")
	require.ErrorIs(t, err, templates.ErrTemplateNotFound)
}

func TestRunBadPatternFailsBeforeStaging(t *testing.T) {
	cliOpts, registryPath := testEnv(t)
	sourceDir := writeSourceTree(t)

	captureCtx := capture_ctx.CaptureCtx{
		Name:            "base",
		SourceDir:       sourceDir,
		ExcludePatterns: []string{"["},
		CliOpts:         cliOpts,
		RegistryPath:    registryPath,
	}
	require.Error(t, Run(context.Background(), &captureCtx))
	require.NoDirExists(t, cliOpts.Storage.TemplatesDir)
}

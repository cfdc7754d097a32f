package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/config"
)

// testCliOpts returns environment options pointing at a temporary
// template storage.
func testCliOpts(t *testing.T) *config.CliOpts {
	t.Helper()
	return &config.CliOpts{
		Storage: &config.StorageOpts{
			TemplatesDir: filepath.Join(t.TempDir(), "templates"),
		},
		Capture: &config.CaptureOpts{},
		Copy: &config.CopyOpts{
			SymlinkPolicy: "preserve",
			KeepEmptyDirs: true,
		},
	}
}

func TestValidateRequestBasic(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	sourceDir := t.TempDir()
	captureCtx.Name = "base"
	captureCtx.SourceDir = sourceDir
	captureCtx.CliOpts = testCliOpts(t)

	validateRequest := ValidateRequest{}
	require.NoError(t, validateRequest.Run(&captureCtx, &stageCtx))

	absSource, err := filepath.Abs(sourceDir)
	require.NoError(t, err)
	require.Equal(t, absSource, stageCtx.SourcePath)
}

func TestValidateRequestDefaultsToWorkDir(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	workDir := t.TempDir()
	captureCtx.Name = "base"
	captureCtx.WorkDir = workDir
	captureCtx.CliOpts = testCliOpts(t)

	validateRequest := ValidateRequest{}
	require.NoError(t, validateRequest.Run(&captureCtx, &stageCtx))
	require.Equal(t, workDir, stageCtx.SourcePath)
}

func TestValidateRequestBadName(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	captureCtx.Name = ".hidden"
	captureCtx.SourceDir = t.TempDir()
	captureCtx.CliOpts = testCliOpts(t)

	validateRequest := ValidateRequest{}
	err := validateRequest.Run(&captureCtx, &stageCtx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not start with a dot")
}

func TestValidateRequestMissingSource(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	captureCtx.Name = "base"
	captureCtx.SourceDir = filepath.Join(t.TempDir(), "no-such-dir")
	captureCtx.CliOpts = testCliOpts(t)

	validateRequest := ValidateRequest{}
	err := validateRequest.Run(&captureCtx, &stageCtx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestValidateRequestSourceIsFile(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	filePath := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("data"), 0644))

	captureCtx.Name = "base"
	captureCtx.SourceDir = filePath
	captureCtx.CliOpts = testCliOpts(t)

	validateRequest := ValidateRequest{}
	err := validateRequest.Run(&captureCtx, &stageCtx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "is not a directory")
}

func TestValidateRequestStorageInsideSource(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	sourceDir := t.TempDir()
	captureCtx.Name = "base"
	captureCtx.SourceDir = sourceDir
	captureCtx.CliOpts = testCliOpts(t)
	captureCtx.CliOpts.Storage.TemplatesDir = filepath.Join(sourceDir, "nested", "templates")

	validateRequest := ValidateRequest{}
	err := validateRequest.Run(&captureCtx, &stageCtx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "contains the template storage")
}

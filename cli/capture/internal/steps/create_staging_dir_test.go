package steps

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/templates"
)

func TestCreateStagingDirBasic(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	captureCtx.Name = "base"
	captureCtx.CliOpts = testCliOpts(t)

	createStagingDir := CreateStagingDir{}
	require.NoError(t, createStagingDir.Run(&captureCtx, &stageCtx))

	require.DirExists(t, captureCtx.CliOpts.Storage.TemplatesDir)
	require.DirExists(t, stageCtx.StagingPath)
	require.Equal(t, captureCtx.CliOpts.Storage.TemplatesDir,
		filepath.Dir(stageCtx.StagingPath))
	require.True(t, templates.IsStagingDir(filepath.Base(stageCtx.StagingPath)))
}

func TestCreateStagingDirUniquePerCapture(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx

	captureCtx.Name = "base"
	captureCtx.CliOpts = testCliOpts(t)

	createStagingDir := CreateStagingDir{}
	first := StageCtx{}
	require.NoError(t, createStagingDir.Run(&captureCtx, &first))
	second := StageCtx{}
	require.NoError(t, createStagingDir.Run(&captureCtx, &second))

	require.NotEqual(t, first.StagingPath, second.StagingPath)
}

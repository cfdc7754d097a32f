package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
)

func TestMoveIntoPlaceBasic(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	stagingDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(stagingDir, "main.go"),
		[]byte("package main\n"), 0644))

	stageCtx.StagingPath = stagingDir
	stageCtx.TargetPath = filepath.Join(t.TempDir(), "base")

	moveIntoPlace := MoveIntoPlace{}
	require.NoError(t, moveIntoPlace.Run(&captureCtx, &stageCtx))

	require.FileExists(t, filepath.Join(stageCtx.TargetPath, "main.go"))
	require.NoDirExists(t, stagingDir)
	require.Equal(t, "", stageCtx.StagingPath)
}

func TestMoveIntoPlaceTargetExists(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	stageCtx.StagingPath = t.TempDir()
	stageCtx.TargetPath = t.TempDir()

	moveIntoPlace := MoveIntoPlace{}
	err := moveIntoPlace.Run(&captureCtx, &stageCtx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

func TestMoveIntoPlaceForceReplaces(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	stagingDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(stagingDir, "new.txt"),
		[]byte("new\n"), 0644))

	targetDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(targetDir, "old.txt"),
		[]byte("old\n"), 0644))

	captureCtx.ForceMode = true
	stageCtx.StagingPath = stagingDir
	stageCtx.TargetPath = targetDir

	moveIntoPlace := MoveIntoPlace{}
	require.NoError(t, moveIntoPlace.Run(&captureCtx, &stageCtx))

	require.FileExists(t, filepath.Join(targetDir, "new.txt"))
	require.NoFileExists(t, filepath.Join(targetDir, "old.txt"))
}

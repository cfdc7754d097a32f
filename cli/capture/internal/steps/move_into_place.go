package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
)

// MoveIntoPlace represents a step moving the staged capture into storage.
type MoveIntoPlace struct {
}

// Run moves the staging directory to the final storage directory. In
// force mode the old storage is removed first, but only now, after the
// whole copy has already succeeded.
func (MoveIntoPlace) Run(captureCtx *capture_ctx.CaptureCtx, stageCtx *StageCtx) error {
	if _, err := os.Stat(stageCtx.TargetPath); err == nil {
		if !captureCtx.ForceMode {
			return fmt.Errorf("%q already exists", stageCtx.TargetPath)
		}
		if err = os.RemoveAll(stageCtx.TargetPath); err != nil {
			return fmt.Errorf("failed to remove old storage %q: %s", stageCtx.TargetPath, err)
		}
	}

	if err := os.Rename(stageCtx.StagingPath, stageCtx.TargetPath); err != nil {
		// Rename does not work across filesystems, fall back to a copy.
		if err := copy.Copy(stageCtx.StagingPath, stageCtx.TargetPath); err != nil {
			return fmt.Errorf("failed to move capture into %q: %s", stageCtx.TargetPath, err)
		}
		if err := os.RemoveAll(stageCtx.StagingPath); err != nil {
			log.Warnf("Failed to remove staging directory: %s", err)
		}
	}

	stageCtx.StagingPath = ""
	return nil
}

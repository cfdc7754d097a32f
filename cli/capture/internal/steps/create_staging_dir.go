package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// CreateStagingDir represents a step creating the capture staging directory.
type CreateStagingDir struct {
}

// Run creates a staging directory next to the final storage directory.
// The capture is copied there first so a failed copy never leaves a
// half-filled template behind.
func (CreateStagingDir) Run(captureCtx *capture_ctx.CaptureCtx, stageCtx *StageCtx) error {
	templatesDir := captureCtx.CliOpts.Storage.TemplatesDir
	if err := util.CreateDirectory(templatesDir, configure.DefaultDirPermissions); err != nil {
		return err
	}

	stagingPath, err := os.MkdirTemp(templatesDir, templates.StagingPattern(captureCtx.Name))
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %s", err)
	}

	log.Debugf("Staging capture of %q in %q", captureCtx.Name, stagingPath)
	stageCtx.StagingPath = stagingPath
	return nil
}

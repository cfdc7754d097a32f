package steps

import (
	"errors"
	"fmt"

	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// CheckRegistry represents a step checking the template name is free.
type CheckRegistry struct {
}

// Run checks the registry and the storage directory for name collisions.
func (CheckRegistry) Run(captureCtx *capture_ctx.CaptureCtx, stageCtx *StageCtx) error {
	existing, err := stageCtx.Registry.Get(captureCtx.Name)
	switch {
	case err == nil:
		if !captureCtx.ForceMode {
			return fmt.Errorf("%w: template %q already exists, use --force to replace it",
				templates.ErrTemplateExists, captureCtx.Name)
		}
		stageCtx.Existing = &existing
	case errors.Is(err, templates.ErrTemplateNotFound):
		// The name is free.
	default:
		return err
	}

	stageCtx.TargetPath = templates.StorageDir(
		captureCtx.CliOpts.Storage.TemplatesDir, captureCtx.Name)
	if stageCtx.Existing == nil && util.IsDir(stageCtx.TargetPath) && !captureCtx.ForceMode {
		return fmt.Errorf("storage directory %q exists without a registry record, "+
			"run 'stencil doctor --fix' or retry with --force", stageCtx.TargetPath)
	}

	return nil
}

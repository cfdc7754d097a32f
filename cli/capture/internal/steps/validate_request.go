package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/templates"
)

// ValidateRequest represents a step checking the capture name and source.
type ValidateRequest struct {
}

// Run validates the template name and resolves the capture source directory.
func (ValidateRequest) Run(captureCtx *capture_ctx.CaptureCtx, stageCtx *StageCtx) error {
	if err := templates.ValidateName(captureCtx.Name); err != nil {
		return err
	}

	sourceDir := captureCtx.SourceDir
	if sourceDir == "" {
		sourceDir = captureCtx.WorkDir
	}
	sourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to resolve source directory: %s", err)
	}

	fileInfo, err := os.Stat(sourceDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("source directory %q does not exist", sourceDir)
	} else if err != nil {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("source path %q is not a directory", sourceDir)
	}

	// Capturing the storage area would make the copy descend into the
	// staging directory it is writing to.
	templatesDir := captureCtx.CliOpts.Storage.TemplatesDir
	rel, relErr := filepath.Rel(sourceDir, templatesDir)
	if relErr == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("source directory %q contains the template storage %q",
			sourceDir, templatesDir)
	}

	stageCtx.SourcePath = sourceDir
	return nil
}

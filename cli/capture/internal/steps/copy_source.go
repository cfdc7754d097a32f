package steps

import (
	"context"

	"github.com/apex/log"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/copier"
)

// CopySource represents a step copying the source tree into staging.
type CopySource struct {
	// Ctx cancels a copy in flight. Nil means no cancellation.
	Ctx context.Context
}

// Run copies the source directory into the staging directory, applying
// the exclude patterns and the configured symlink policy.
func (s CopySource) Run(captureCtx *capture_ctx.CaptureCtx, stageCtx *StageCtx) error {
	ctx := s.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	symlinks, err := copier.ParseSymlinkPolicy(captureCtx.CliOpts.Copy.SymlinkPolicy)
	if err != nil {
		return err
	}

	log.Infof("Capturing %q from %q", captureCtx.Name, stageCtx.SourcePath)
	stats, err := copier.Copy(ctx, stageCtx.SourcePath, stageCtx.StagingPath, copier.Options{
		Matcher:       stageCtx.Matcher,
		Symlinks:      symlinks,
		KeepEmptyDirs: captureCtx.CliOpts.Copy.KeepEmptyDirs,
		Progress:      captureCtx.Progress,
	})
	if err != nil {
		return err
	}

	stageCtx.Stats = stats
	return nil
}

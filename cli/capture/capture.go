package capture

import (
	"context"
	"fmt"
	"os"

	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/capture/internal/steps"
	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
	"github.com/stencil-cli/stencil/cli/version"
)

// FillCtx fills capture context.
func FillCtx(cliOpts *config.CliOpts, captureCtx *capture_ctx.CaptureCtx, args []string) error {
	if len(args) >= 1 {
		captureCtx.Name = args[0]
	} else {
		return util.NewArgError("missing template name argument, " +
			"try `stencil capture --help` for more information")
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	captureCtx.WorkDir = workingDir
	captureCtx.CliOpts = cliOpts

	return nil
}

// rollbackOnErr removes the capture staging directory.
func rollbackOnErr(stageCtx *steps.StageCtx) {
	if stageCtx.StagingPath != "" {
		os.RemoveAll(stageCtx.StagingPath)
	}
	stageCtx.StagingPath = ""
}

// Run captures a directory as a named template.
func Run(ctx context.Context, captureCtx *capture_ctx.CaptureCtx) error {
	if err := checkCtx(captureCtx); err != nil {
		return util.InternalError("Capture context check failed: %s", version.Short(false), err)
	}

	registry, err := templates.OpenRegistry(captureCtx.RegistryPath)
	if err != nil {
		return err
	}
	defer registry.Close()

	stepsChain := []steps.Step{
		steps.ValidateRequest{},
		steps.CheckRegistry{},
		steps.BuildMatcher{},
		steps.CreateStagingDir{},
		steps.CopySource{Ctx: ctx},
		steps.MoveIntoPlace{},
		steps.RegisterTemplate{},
	}

	stageCtx := steps.NewStageCtx(registry)
	for _, step := range stepsChain {
		if err := step.Run(captureCtx, &stageCtx); err != nil {
			rollbackOnErr(&stageCtx)
			return err
		}
	}

	return nil
}

// checkCtx checks capture context for validity.
func checkCtx(captureCtx *capture_ctx.CaptureCtx) error {
	if captureCtx.Name == "" {
		return fmt.Errorf("template name is missing")
	}
	if captureCtx.CliOpts == nil {
		return fmt.Errorf("cli options are not set")
	}

	return nil
}

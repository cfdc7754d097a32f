// Package steps provides a set of handlers for capture command chain of
// responsibility.
package steps

import (
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
)

// Step is an interface for single step in capture chain.
type Step interface {
	Run(captureCtx *capture_ctx.CaptureCtx, stageCtx *StageCtx) error
}

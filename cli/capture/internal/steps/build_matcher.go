package steps

import (
	"fmt"

	"github.com/apex/log"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/ignore"
)

// BuildMatcher represents a step compiling the exclude patterns.
type BuildMatcher struct {
}

// Run gathers exclude patterns from the environment config, the exclude
// file and the command line, and compiles them into a matcher.
func (BuildMatcher) Run(captureCtx *capture_ctx.CaptureCtx, stageCtx *StageCtx) error {
	patterns := make([]string, 0, len(captureCtx.ExcludePatterns))
	patterns = append(patterns, captureCtx.CliOpts.Capture.DefaultExcludes...)

	if captureCtx.ExcludeFrom != "" {
		filePatterns, err := ignore.ReadPatternFile(captureCtx.ExcludeFrom)
		if err != nil {
			return fmt.Errorf("failed to read exclude file: %s", err)
		}
		patterns = append(patterns, filePatterns...)
	}

	patterns = append(patterns, captureCtx.ExcludePatterns...)

	matcher, err := ignore.Compile(patterns)
	if err != nil {
		return err
	}
	log.Debugf("Capture excludes: %v", matcher.Patterns())

	stageCtx.Matcher = matcher
	return nil
}

package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/ignore"
)

func TestBuildMatcherMergesSources(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	excludeFile := filepath.Join(t.TempDir(), "excludes.txt")
	require.NoError(t, os.WriteFile(excludeFile,
		[]byte("# build output\nbuild/\n"), 0644))

	captureCtx.CliOpts = testCliOpts(t)
	captureCtx.CliOpts.Capture.DefaultExcludes = []string{"*.log"}
	captureCtx.ExcludeFrom = excludeFile
	captureCtx.ExcludePatterns = []string{"node_modules/**"}

	buildMatcher := BuildMatcher{}
	require.NoError(t, buildMatcher.Run(&captureCtx, &stageCtx))
	require.NotNil(t, stageCtx.Matcher)

	require.True(t, stageCtx.Matcher.Match("debug.log"))
	require.True(t, stageCtx.Matcher.Match("build"))
	require.True(t, stageCtx.Matcher.Match("node_modules/react"))
	require.False(t, stageCtx.Matcher.Match("main.go"))
}

func TestBuildMatcherBadPattern(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	captureCtx.CliOpts = testCliOpts(t)
	captureCtx.ExcludePatterns = []string{"src/[oops"}

	buildMatcher := BuildMatcher{}
	err := buildMatcher.Run(&captureCtx, &stageCtx)
	require.Error(t, err)

	var patternErr *ignore.PatternError
	require.ErrorAs(t, err, &patternErr)
	require.Equal(t, "src/[oops", patternErr.Pattern)
}

func TestBuildMatcherMissingExcludeFile(t *testing.T) {
	var captureCtx capture_ctx.CaptureCtx
	stageCtx := StageCtx{}

	captureCtx.CliOpts = testCliOpts(t)
	captureCtx.ExcludeFrom = filepath.Join(t.TempDir(), "no-such-file")

	buildMatcher := BuildMatcher{}
	err := buildMatcher.Run(&captureCtx, &stageCtx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read exclude file")
}

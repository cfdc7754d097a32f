package capture_ctx

import "github.com/stencil-cli/stencil/cli/config"

// CaptureCtx contains information for capturing a directory as a template.
type CaptureCtx struct {
	// Name is the name to register the captured template under.
	Name string
	// Description is an optional description stored with the template.
	Description string
	// SourceDir is the directory to capture. Empty means WorkDir.
	SourceDir string
	// WorkDir is stencil launch working directory.
	WorkDir string
	// ExcludePatterns are exclude patterns provided in command line.
	ExcludePatterns []string
	// ExcludeFrom is a file with exclude patterns, one per line.
	ExcludeFrom string
	// ForceMode - if flag is set, replace an already captured template.
	ForceMode bool
	// Progress, if set, is called once per copied entry with its
	// path relative to the capture source.
	Progress func(relPath string)
	// CliOpts is loaded stencil environment config.
	CliOpts *config.CliOpts
	// RegistryPath is the path of the registry database file.
	RegistryPath string
}

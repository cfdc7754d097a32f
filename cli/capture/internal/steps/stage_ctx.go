package steps

import (
	"github.com/stencil-cli/stencil/cli/copier"
	"github.com/stencil-cli/stencil/cli/ignore"
	"github.com/stencil-cli/stencil/cli/templates"
)

// StageCtx contains the state accumulated while a capture makes its way
// from the source directory into the template storage.
type StageCtx struct {
	// Registry is the opened template registry.
	Registry *templates.Registry
	// SourcePath is the absolute path of the directory being captured.
	SourcePath string
	// TargetPath is the final storage directory of the template.
	TargetPath string
	// StagingPath is the staging directory the source is copied into
	// before it is moved to TargetPath. Empty if not created yet or
	// already moved.
	StagingPath string
	// Matcher holds the compiled exclude patterns.
	Matcher *ignore.Matcher
	// Existing is the registry record being replaced in force mode.
	// Nil if the name is free.
	Existing *templates.Template
	// Stats describes what the copy step actually transferred.
	Stats copier.Stats
	// Record is the registry record written at the end of the chain.
	Record templates.Template
}

// NewStageCtx creates a new capture stage context.
func NewStageCtx(registry *templates.Registry) StageCtx {
	return StageCtx{Registry: registry}
}

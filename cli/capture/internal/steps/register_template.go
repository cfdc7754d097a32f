package steps

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/templates"
)

// RegisterTemplate represents a step writing the registry record.
type RegisterTemplate struct {
}

// Run registers the captured template. This is the last step of the
// chain: a record always points at complete storage.
func (RegisterTemplate) Run(captureCtx *capture_ctx.CaptureCtx, stageCtx *StageCtx) error {
	record := templates.Template{
		ID:          uuid.NewString(),
		Name:        captureCtx.Name,
		Description: captureCtx.Description,
		StoragePath: stageCtx.TargetPath,
		SourcePath:  stageCtx.SourcePath,
		CreatedAt:   time.Now().UTC(),
	}

	var err error
	if stageCtx.Existing != nil {
		err = stageCtx.Registry.Put(record)
	} else {
		err = stageCtx.Registry.Add(record)
	}
	if err != nil {
		return fmt.Errorf("failed to register template %q: %w", captureCtx.Name, err)
	}

	stageCtx.Record = record
	if stageCtx.Stats.Skipped > 0 {
		log.Debugf("Excluded %d entries", stageCtx.Stats.Skipped)
	}
	log.Infof("Template %q captured: %d files, %s",
		record.Name, stageCtx.Stats.Files, humanize.Bytes(uint64(stageCtx.Stats.Bytes)))
	return nil
}

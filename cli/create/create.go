// Package create instantiates captured templates into new project
// directories.
package create

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/copier"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// CreateCtx contains information for instantiating a template.
type CreateCtx struct {
	// TemplateName is the template to instantiate.
	TemplateName string
	// Name is the directory name to instantiate into. Empty means the
	// template name.
	Name string
	// DestinationDir is the directory the project directory is created
	// in. Empty means WorkDir.
	DestinationDir string
	// WorkDir is stencil launch working directory.
	WorkDir string
	// ForceMode - if flag is set, copy into a non-empty destination,
	// overwriting files the template also has.
	ForceMode bool
	// Progress, if set, is called once per copied entry with its
	// path relative to the template storage.
	Progress func(relPath string)
	// CliOpts is loaded stencil environment config.
	CliOpts *config.CliOpts
	// RegistryPath is the path of the registry database file.
	RegistryPath string
}

// FillCtx fills create context.
func FillCtx(cliOpts *config.CliOpts, createCtx *CreateCtx, args []string) error {
	if len(args) >= 1 {
		createCtx.TemplateName = args[0]
	} else {
		return util.NewArgError("missing template name argument, " +
			"try `stencil create --help` for more information")
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir
	createCtx.CliOpts = cliOpts

	return nil
}

// Run instantiates a template into a project directory.
func Run(ctx context.Context, createCtx *CreateCtx) error {
	if createCtx.TemplateName == "" {
		return fmt.Errorf("template name is missing")
	}

	registry, err := templates.OpenRegistry(createCtx.RegistryPath)
	if err != nil {
		return err
	}
	defer registry.Close()

	record, err := registry.Get(createCtx.TemplateName)
	if err != nil {
		return err
	}
	if !util.IsDir(record.StoragePath) {
		return fmt.Errorf("storage of template %q is missing at %q, "+
			"run 'stencil doctor' to diagnose the registry", record.Name, record.StoragePath)
	}

	dirName := createCtx.Name
	if dirName == "" {
		dirName = record.Name
	}
	if strings.ContainsAny(dirName, `/\`) {
		return fmt.Errorf("project directory name %q must not contain path separators",
			dirName)
	}

	destBase := createCtx.DestinationDir
	if destBase == "" {
		destBase = createCtx.WorkDir
	}
	destPath, err := util.JoinAbspath(destBase, dirName)
	if err != nil {
		return fmt.Errorf("failed to resolve destination directory: %s", err)
	}

	// Instantiating a template into its own storage would truncate the
	// files while they are being read.
	rel, relErr := filepath.Rel(record.StoragePath, destPath)
	if relErr == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("destination %q is inside the storage of template %q",
			destPath, record.Name)
	}

	_, statErr := os.Stat(destPath)
	destExisted := statErr == nil

	log.Infof("Instantiating template %q in %q",
		record.Name, util.RelativeToCurrentWorkingDir(destPath))
	stats, err := copier.Copy(ctx, record.StoragePath, destPath, copier.Options{
		Symlinks:      copier.SymlinkPreserve,
		KeepEmptyDirs: true,
		Overwrite:     createCtx.ForceMode,
		Progress:      createCtx.Progress,
	})
	if err != nil {
		if !destExisted {
			os.RemoveAll(destPath)
		}
		return err
	}

	log.Infof("Project %q is ready: %d files, %s",
		dirName, stats.Files, humanize.Bytes(uint64(stats.Bytes)))
	return nil
}

// Package init creates a stencil home: the config file, the template
// storage directory and an empty registry.
package init

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/apex/log"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// InitCtx contains information for stencil home creation.
type InitCtx struct {
	// ForceMode, if set, stencil config is re-written without a question.
	ForceMode bool
	// Reader to use for reading user input.
	Reader io.Reader
}

// Run initializes a stencil home directory.
func Run(cmdCtx *cmdcontext.CmdCtx, initCtx *InitCtx) error {
	homeDir := cmdCtx.Cli.HomeDir
	configPath := cmdCtx.Cli.ConfigPath

	if util.IsRegularFile(configPath) && !initCtx.ForceMode {
		confirm, err := util.AskConfirm(initCtx.Reader,
			fmt.Sprintf("%q already exists. Overwrite it with the defaults?", configPath))
		if err != nil {
			return err
		}
		if !confirm {
			return util.ErrCmdAbort
		}
	}

	if err := util.CreateDirectory(homeDir, configure.DefaultDirPermissions); err != nil {
		return err
	}
	templatesDir := filepath.Join(homeDir, configure.TemplatesPath)
	if err := util.CreateDirectory(templatesDir, configure.DefaultDirPermissions); err != nil {
		return err
	}

	cfg := config.Config{CliConfig: configure.GetDefaultCliOpts()}
	if err := util.WriteYaml(configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config %q: %s", configPath, err)
	}
	log.Debugf("Wrote default config to %q", configPath)

	// Materialize the registry so the first list does not start from a
	// missing file.
	registry, err := templates.OpenRegistry(configure.RegistryPath(cmdCtx))
	if err != nil {
		return err
	}
	if err := registry.Close(); err != nil {
		return err
	}

	log.Infof("Environment initialized in %q", homeDir)
	log.Infof("Run 'stencil capture <name>' to capture your first template")
	return nil
}

// Package remove deletes captured templates.
package remove

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// Run removes a template from the registry together with its storage.
// Unless force is set, the user is asked for confirmation on
// confirmInput first.
func Run(registryPath, templateName string, force bool, confirmInput io.Reader) error {
	registry, err := templates.OpenRegistry(registryPath)
	if err != nil {
		return err
	}
	defer registry.Close()

	record, err := registry.Get(templateName)
	if err != nil {
		return err
	}

	if !force {
		confirm, err := util.AskConfirm(confirmInput,
			fmt.Sprintf("Remove template %q and its files in %q?",
				record.Name, record.StoragePath))
		if err != nil {
			return err
		}
		if !confirm {
			return util.ErrCmdAbort
		}
	}

	if err := Purge(registry, record); err != nil {
		return err
	}

	log.Infof("Template %q removed", record.Name)
	return nil
}

// Purge deletes the registry entry of a template and then its storage.
// The entry goes first so an interruption leaves an orphan directory
// rather than a record pointing at nothing.
func Purge(registry *templates.Registry, record templates.Template) error {
	if err := registry.Delete(record.Name); err != nil {
		return err
	}

	if err := os.RemoveAll(record.StoragePath); err != nil {
		return fmt.Errorf("template %q is unregistered, but removing its storage "+
			"failed: %s; remove %q manually or run 'stencil doctor --fix'",
			record.Name, err, record.StoragePath)
	}

	return nil
}

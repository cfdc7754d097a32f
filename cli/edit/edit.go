// Package edit interactively manages captured templates: rename,
// change description, delete.
package edit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/manifoldco/promptui"
	"github.com/stencil-cli/stencil/cli/remove"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

const (
	actionRename   = "Rename"
	actionDescribe = "Change description"
	actionDelete   = "Delete"
	actionBack     = "Back"

	quitItem = "Quit"
)

// RenameTemplate renames a template, moving its storage directory
// along. The storage is renamed first and rolled back if the registry
// update fails.
func RenameTemplate(registry *templates.Registry, record templates.Template,
	newName string) error {
	if err := templates.ValidateName(newName); err != nil {
		return err
	}
	if newName == record.Name {
		return nil
	}
	if _, err := registry.Get(newName); err == nil {
		return fmt.Errorf("%w: template %q already exists",
			templates.ErrTemplateExists, newName)
	} else if !errors.Is(err, templates.ErrTemplateNotFound) {
		return err
	}

	newStorage := templates.StorageDir(filepath.Dir(record.StoragePath), newName)
	storageMoved := false
	if util.IsDir(record.StoragePath) {
		if err := os.Rename(record.StoragePath, newStorage); err != nil {
			return fmt.Errorf("failed to rename storage of %q: %s", record.Name, err)
		}
		storageMoved = true
	}

	renamed := record
	renamed.Name = newName
	renamed.StoragePath = newStorage
	if err := registry.Rename(record.Name, renamed); err != nil {
		if storageMoved {
			os.Rename(newStorage, record.StoragePath)
		}
		return err
	}

	return nil
}

// SetDescription updates the description of a template.
func SetDescription(registry *templates.Registry, record templates.Template,
	description string) error {
	record.Description = description
	return registry.Put(record)
}

// Run starts the interactive template manager.
func Run(registryPath string) error {
	registry, err := templates.OpenRegistry(registryPath)
	if err != nil {
		return err
	}
	defer registry.Close()

	for {
		records, err := registry.List()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			log.Info("no templates captured yet, run 'stencil capture <name>' to add one")
			return nil
		}

		items := make([]string, 0, len(records)+1)
		for _, record := range records {
			items = append(items, record.Name)
		}
		items = append(items, quitItem)

		templateSelect := promptui.Select{
			Label:        "Select template",
			Items:        items,
			HideSelected: true,
		}
		index, choice, err := templateSelect.Run()
		if err != nil {
			if err = promptDone(err); errors.Is(err, util.ErrCmdAbort) {
				return nil
			}
			return err
		}
		if choice == quitItem {
			return nil
		}

		if err := manageTemplate(registry, records[index]); err != nil {
			if errors.Is(err, util.ErrCmdAbort) {
				return nil
			}
			return err
		}
	}
}

// manageTemplate asks for an action on one template and applies it.
func manageTemplate(registry *templates.Registry, record templates.Template) error {
	actionSelect := promptui.Select{
		Label:        fmt.Sprintf("Template %q", record.Name),
		Items:        []string{actionRename, actionDescribe, actionDelete, actionBack},
		HideSelected: true,
	}
	_, action, err := actionSelect.Run()
	if err != nil {
		return promptDone(err)
	}

	switch action {
	case actionRename:
		namePrompt := promptui.Prompt{
			Label:    "New name",
			Default:  record.Name,
			Validate: templates.ValidateName,
		}
		newName, err := namePrompt.Run()
		if err != nil {
			return promptDone(err)
		}
		if err := RenameTemplate(registry, record, newName); err != nil {
			return err
		}
		log.Infof("Template %q renamed to %q", record.Name, newName)

	case actionDescribe:
		descriptionPrompt := promptui.Prompt{
			Label:     "Description",
			Default:   record.Description,
			AllowEdit: true,
		}
		description, err := descriptionPrompt.Run()
		if err != nil {
			return promptDone(err)
		}
		if err := SetDescription(registry, record, description); err != nil {
			return err
		}
		log.Infof("Description of %q updated", record.Name)

	case actionDelete:
		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete %q and its files", record.Name),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				// Declined, back to the menu.
				return nil
			}
			return promptDone(err)
		}
		if err := remove.Purge(registry, record); err != nil {
			return err
		}
		log.Infof("Template %q removed", record.Name)
	}

	return nil
}

// promptDone maps prompt termination to flow control: interrupts end
// the manager quietly, anything else is a real error.
func promptDone(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return util.ErrCmdAbort
	}
	return err
}

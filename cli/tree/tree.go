// Package tree renders the file tree of a captured template.
package tree

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/stencil-cli/stencil/cli/formatter"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// Run prints the stored file tree of a template.
func Run(registryPath, templateName string) error {
	registry, err := templates.OpenRegistry(registryPath)
	if err != nil {
		return err
	}
	defer registry.Close()

	record, err := registry.Get(templateName)
	if err != nil {
		return err
	}
	if !util.IsDir(record.StoragePath) {
		return fmt.Errorf("storage of template %q is missing at %q, "+
			"run 'stencil doctor' to diagnose the registry", record.Name, record.StoragePath)
	}

	rendered, err := formatter.RenderFileTree(record.StoragePath)
	if err != nil {
		return err
	}

	fmt.Println(color.GreenString(record.Name))
	if rendered != "" {
		fmt.Println(rendered)
	}

	return nil
}

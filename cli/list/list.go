// Package list shows the captured templates.
package list

import (
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/stencil-cli/stencil/cli/formatter"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// templateRows builds table rows for the captured templates. Templates
// whose storage disappeared are still rows, marked instead of hidden,
// so the user learns about them before an instantiate fails.
func templateRows(records []templates.Template) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		size := color.RedString("missing")
		if util.IsDir(record.StoragePath) {
			size = "?"
			if diskSize, err := util.DirectorySize(record.StoragePath); err == nil {
				size = humanize.Bytes(uint64(diskSize))
			}
		}

		rows = append(rows, []string{
			color.GreenString(record.Name),
			record.Description,
			humanize.Time(record.CreatedAt),
			size,
		})
	}

	return rows
}

// Run lists all captured templates.
func Run(registryPath string) error {
	registry, err := templates.OpenRegistry(registryPath)
	if err != nil {
		return err
	}
	defer registry.Close()

	records, err := registry.List()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		log.Info("no templates captured yet, run 'stencil capture <name>' to add one")
		return nil
	}

	fmt.Println(formatter.RenderTable(
		[]string{"name", "description", "created", "size"},
		templateRows(records)))

	return nil
}

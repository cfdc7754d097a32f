// Package formatter renders tabular and tree output for stencil
// commands.
package formatter

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// styleWithoutGraphics renders a table as plain aligned columns,
// without any box drawing characters.
var styleWithoutGraphics = table.BoxStyle{
	EmptySeparator:  text.RepeatAndTrim(" ", 1),
	PaddingRight:    "  ",
	PageSeparator:   "\n",
	UnfinishedRow:   "  ",
	MiddleSeparator: " ",
}

// RenderTable renders header and rows as plain aligned columns.
func RenderTable(header []string, rows [][]string) string {
	writer := table.NewWriter()
	writer.SetStyle(table.Style{
		Box: styleWithoutGraphics,
		Format: table.FormatOptions{
			Header: text.FormatUpper,
		},
		Options: table.Options{
			DrawBorder:      false,
			SeparateColumns: false,
			SeparateHeader:  false,
		},
	})

	headerRow := make(table.Row, 0, len(header))
	for _, cell := range header {
		headerRow = append(headerRow, cell)
	}
	writer.AppendHeader(headerRow)

	for _, row := range rows {
		tableRow := make(table.Row, 0, len(row))
		for _, cell := range row {
			tableRow = append(tableRow, cell)
		}
		writer.AppendRow(tableRow)
	}

	return writer.Render()
}

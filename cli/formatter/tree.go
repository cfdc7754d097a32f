package formatter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/list"
)

// RenderFileTree renders the contents of root as a connected tree.
// Directories get a trailing slash, symbolic links show their target.
// Entries appear in lexical order, the same order instantiation
// copies them in.
func RenderFileTree(root string) (string, error) {
	writer := list.NewWriter()
	writer.SetStyle(list.StyleConnectedLight)

	if err := appendTreeLevel(writer, root); err != nil {
		return "", err
	}

	return writer.Render(), nil
}

func appendTreeLevel(writer list.Writer, dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		switch {
		case entry.IsDir():
			writer.AppendItem(entry.Name() + "/")
			writer.Indent()
			err := appendTreeLevel(writer, filepath.Join(dirPath, entry.Name()))
			if err != nil {
				return err
			}
			writer.UnIndent()
		case entry.Type()&os.ModeSymlink != 0:
			target, err := os.Readlink(filepath.Join(dirPath, entry.Name()))
			if err != nil {
				return err
			}
			writer.AppendItem(fmt.Sprintf("%s -> %s", entry.Name(), target))
		default:
			writer.AppendItem(entry.Name())
		}
	}

	return nil
}

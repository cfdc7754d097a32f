// Package templates keeps the catalog of captured templates: the
// registry records and the layout of their backing storage.
package templates

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Template is one registry record describing a captured template.
type Template struct {
	// ID is a stable identifier of the record, assigned at capture.
	ID string `json:"id"`
	// Name is the unique template name. The storage directory has
	// the same name.
	Name string `json:"name"`
	// Description is an optional free-form note shown in listings.
	Description string `json:"description,omitempty"`
	// StoragePath is the absolute path of the captured copy.
	StoragePath string `json:"storage_path"`
	// SourcePath is the absolute path the template was captured from.
	SourcePath string `json:"source_path"`
	// CreatedAt is the capture time.
	CreatedAt time.Time `json:"created_at"`
}

// ValidateName checks that name can be used both as a template name
// and as its storage directory name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("template name cannot be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("template name %q is reserved", name)
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("template name %q must not contain path separators", name)
	}
	// Dot names are reserved for capture staging directories.
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("template name %q must not start with a dot", name)
	}
	return nil
}

// StorageDir returns the storage directory of a template inside
// templatesDir.
func StorageDir(templatesDir, name string) string {
	return filepath.Join(templatesDir, name)
}

const stagingPrefix = ".stg-"

// StagingPattern returns the os.MkdirTemp pattern for the staging
// directory of a capture.
func StagingPattern(name string) string {
	return stagingPrefix + name + "-*"
}

// IsStagingDir reports whether a directory name is a capture staging
// directory, possibly left over by an interrupted capture.
func IsStagingDir(dirName string) bool {
	return strings.HasPrefix(dirName, stagingPrefix)
}

package templates

import "errors"

var (
	// ErrTemplateExists is reported when a template with the same name
	// is already registered.
	ErrTemplateExists = errors.New("template already exists")
	// ErrTemplateNotFound is reported when no template with the name
	// is registered.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrRegistryCorrupt is reported when the registry database cannot
	// be read or validated. It is never silently ignored.
	ErrRegistryCorrupt = errors.New("registry is corrupt")
)

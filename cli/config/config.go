package config

// Config used to store all information from the
// stencil.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"stencil" yaml:"stencil"`
}

// PatternList is a list of exclude patterns. The configuration
// accepts a single string as well as a list of strings.
type PatternList []string

// StorageOpts is used to store template storage options.
type StorageOpts struct {
	// TemplatesDir is a directory where captured templates are
	// stored. Relative paths are resolved against the stencil home
	// directory. Empty means "<home>/templates".
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
}

// CaptureOpts is used to store capture options.
type CaptureOpts struct {
	// DefaultExcludes are patterns appended to the exclude set of
	// every capture. Empty by default, so a plain capture takes
	// the source directory verbatim.
	DefaultExcludes PatternList `mapstructure:"default_excludes" yaml:"default_excludes"`
}

// CopyOpts is used to store tree copy options.
type CopyOpts struct {
	// SymlinkPolicy selects how symbolic links are treated:
	// "preserve" recreates links, "follow" copies their targets,
	// "skip" leaves them out.
	SymlinkPolicy string `mapstructure:"symlink_policy" yaml:"symlink_policy"`
	// KeepEmptyDirs makes the copier create directories that end up
	// empty after filtering.
	KeepEmptyDirs bool `mapstructure:"keep_empty_dirs" yaml:"keep_empty_dirs"`
}

// CliOpts is used to store all Stencil CLI options.
// Filled in when parsing the stencil.yaml configuration file:
//
//	stencil:
//	  storage:
//	    templates_dir: path
//	  capture:
//	    default_excludes: [pattern, ...]
//	  copy:
//	    symlink_policy: preserve | follow | skip
//	    keep_empty_dirs: bool
type CliOpts struct {
	// Storage is a struct that contains template storage options.
	Storage *StorageOpts
	// Capture is a struct that contains capture options.
	Capture *CaptureOpts
	// Copy is a struct that contains tree copy options.
	Copy *CopyOpts
}

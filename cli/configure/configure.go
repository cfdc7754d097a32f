package configure

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"

	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/copier"
	"github.com/stencil-cli/stencil/cli/util"
)

const (
	// ConfigName is the name of the stencil configuration file.
	ConfigName = "stencil.yaml"
	// HomeEnvName is the environment variable that overrides the
	// stencil home directory.
	HomeEnvName = "STENCIL_HOME"
	// TemplatesPath is the template storage subdirectory inside the
	// home directory.
	TemplatesPath = "templates"
	// RegistryFileName is the registry database file name inside the
	// home directory.
	RegistryFileName = "registry"

	// DefaultDirPermissions is the permission mask for directories
	// created under the home directory.
	DefaultDirPermissions = 0750
)

// Cli performs initial CLI configuration: logging level and home
// directory resolution. The home directory is taken from the --home
// flag, then the STENCIL_HOME environment variable, then the platform
// configuration directory.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	homeDir := cmdCtx.Cli.HomeDir
	if homeDir == "" {
		homeDir = os.Getenv(HomeEnvName)
	}
	if homeDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to get the user configuration directory: %s", err)
		}
		homeDir = filepath.Join(configDir, "stencil")
	}

	homeDir, err := filepath.Abs(homeDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path of the home directory: %s", err)
	}

	cmdCtx.Cli.HomeDir = homeDir
	cmdCtx.Cli.ConfigPath = filepath.Join(homeDir, ConfigName)

	log.Debugf("Stencil home directory: %s", homeDir)

	return nil
}

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	storage := config.StorageOpts{
		TemplatesDir: TemplatesPath,
	}
	capture := config.CaptureOpts{
		DefaultExcludes: nil,
	}
	copyOpts := config.CopyOpts{
		SymlinkPolicy: copier.SymlinkPreserve.String(),
		KeepEmptyDirs: true,
	}
	return &config.CliOpts{
		Storage: &storage,
		Capture: &capture,
		Copy:    &copyOpts,
	}
}

// decodePatternListField allows a single string where a pattern list
// is expected.
func decodePatternListField(from, to reflect.Type, value interface{}) (
	interface{}, error,
) {
	if to != reflect.TypeOf(config.PatternList{}) || from.Kind() != reflect.String {
		return value, nil
	}
	return []string{value.(string)}, nil
}

func decodeConfig(input map[string]interface{}, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:     cfg,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(decodePatternListField),
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// adjustPathWithHome resolves filePath against the home directory.
// Absolute paths are returned as is, empty paths turn into the
// default subdirectory.
func adjustPathWithHome(filePath, homeDir, defaultDirName string) (string, error) {
	if filePath == "" {
		filePath = defaultDirName
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(homeDir, filePath))
}

// updateCliOpts resolves paths in the options relative to the home
// directory, fills empty sections and validates values.
func updateCliOpts(cliOpts *config.CliOpts, homeDir string) error {
	defaults := GetDefaultCliOpts()
	if cliOpts.Storage == nil {
		cliOpts.Storage = defaults.Storage
	}
	if cliOpts.Capture == nil {
		cliOpts.Capture = defaults.Capture
	}
	if cliOpts.Copy == nil {
		cliOpts.Copy = defaults.Copy
	}

	var err error
	cliOpts.Storage.TemplatesDir, err = adjustPathWithHome(
		cliOpts.Storage.TemplatesDir, homeDir, TemplatesPath)
	if err != nil {
		return fmt.Errorf("failed to resolve the templates directory: %s", err)
	}

	if _, err = copier.ParseSymlinkPolicy(cliOpts.Copy.SymlinkPolicy); err != nil {
		return err
	}

	return nil
}

// GetCliOpts returns Stencil CLI options from the config file in the
// home directory. A missing file yields the defaults.
func GetCliOpts(cmdCtx *cmdcontext.CmdCtx) (*config.CliOpts, error) {
	cliOpts := GetDefaultCliOpts()

	configPath := cmdCtx.Cli.ConfigPath
	if util.IsRegularFile(configPath) {
		rawConfigOpts, err := util.ParseYAML(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Stencil CLI configuration: %s", err)
		}

		cfg := config.Config{CliConfig: cliOpts}
		if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse Stencil CLI configuration: %s", err)
		}
		if cfg.CliConfig == nil {
			return nil, fmt.Errorf(
				"failed to parse Stencil CLI configuration: missing stencil section")
		}
		cliOpts = cfg.CliConfig
	} else if util.IsDir(configPath) {
		return nil, fmt.Errorf("'%s' is a directory, not a configuration file", configPath)
	}

	if err := updateCliOpts(cliOpts, cmdCtx.Cli.HomeDir); err != nil {
		return nil, err
	}

	return cliOpts, nil
}

// RegistryPath returns the path of the registry database inside the
// home directory.
func RegistryPath(cmdCtx *cmdcontext.CmdCtx) string {
	return filepath.Join(cmdCtx.Cli.HomeDir, RegistryFileName)
}

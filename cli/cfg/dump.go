// Package cfg prints the stencil environment configuration.
package cfg

import (
	"fmt"
	"io"
	"os"

	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/config"
	"gopkg.in/yaml.v2"
)

// DumpCtx contains information for stencil config dump.
type DumpCtx struct {
	// RawDump is a dump mode flag. If set, raw contents of the stencil
	// configuration file is printed instead of the resolved one.
	RawDump bool
}

// RunDump prints the stencil configuration to writer: either the raw
// config file, or the fully resolved environment with defaults filled
// in and paths made absolute.
func RunDump(writer io.Writer, cmdCtx *cmdcontext.CmdCtx, dumpCtx *DumpCtx,
	cliOpts *config.CliOpts) error {
	if dumpCtx.RawDump {
		fileContent, err := os.ReadFile(cmdCtx.Cli.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to read config %q: %s", cmdCtx.Cli.ConfigPath, err)
		}
		fmt.Fprintf(writer, "%s:\n", cmdCtx.Cli.ConfigPath)
		_, err = writer.Write(fileContent)
		return err
	}

	if _, err := os.Stat(cmdCtx.Cli.ConfigPath); err == nil {
		fmt.Fprintf(writer, "%s:\n", cmdCtx.Cli.ConfigPath)
	}
	return yaml.NewEncoder(writer).Encode(config.Config{CliConfig: cliOpts})
}

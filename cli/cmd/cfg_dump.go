package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cfg"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
)

var rawDump bool

// NewDumpCmd creates a new dump command.
func NewDumpCmd() *cobra.Command {
	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print environment configuration",
		Run:   RunModuleFunc(internalDumpModule),
		Args:  cobra.ExactArgs(0),
	}

	dumpCmd.Flags().BoolVarP(&rawDump, "raw", "r", false,
		"Display raw contents of the stencil configuration file")

	return dumpCmd
}

// internalDumpModule is a default cfg dump module.
func internalDumpModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	dumpCtx := cfg.DumpCtx{
		RawDump: rawDump,
	}
	return cfg.RunDump(os.Stdout, cmdCtx, &dumpCtx, cliOpts)
}

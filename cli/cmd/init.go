package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/configure"
	init_pkg "github.com/stencil-cli/stencil/cli/init"
)

var initForceMode bool

// NewInitCmd creates the stencil home directory with a default config,
// the template storage directory and an empty registry.
func NewInitCmd() *cobra.Command {
	var initCmd = &cobra.Command{
		Use:   "init [flags]",
		Short: "Initialize the stencil home directory",
		Run:   RunModuleFunc(internalInitModule),
		Args:  cobra.ExactArgs(0),
	}

	initCmd.Flags().BoolVarP(&initForceMode, "force", "f", false,
		fmt.Sprintf("Force re-write existing %s", configure.ConfigName))

	return initCmd
}

// internalInitModule is a default init module.
func internalInitModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	initCtx := init_pkg.InitCtx{
		ForceMode: initForceMode,
		Reader:    os.Stdin,
	}
	return init_pkg.Run(cmdCtx, &initCtx)
}

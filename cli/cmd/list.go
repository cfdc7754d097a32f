package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/list"
)

// NewListCmd creates list command.
func NewListCmd() *cobra.Command {
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List captured templates",
		Run:   RunModuleFunc(internalListModule),
		Args:  cobra.ExactArgs(0),
	}

	return listCmd
}

// internalListModule is a default list module.
func internalListModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	return list.Run(configure.RegistryPath(cmdCtx))
}

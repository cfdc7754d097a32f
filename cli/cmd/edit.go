package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/edit"
)

// NewEditCmd creates edit command.
func NewEditCmd() *cobra.Command {
	var editCmd = &cobra.Command{
		Use:   "edit",
		Short: "Manage captured templates interactively",
		Long: "Manage captured templates interactively: rename them, " +
			"change their description or delete them.",
		Run:  RunModuleFunc(internalEditModule),
		Args: cobra.ExactArgs(0),
	}

	return editCmd
}

// internalEditModule is a default edit module.
func internalEditModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	return edit.Run(configure.RegistryPath(cmdCtx))
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/tree"
)

// NewTreeCmd creates tree command.
func NewTreeCmd() *cobra.Command {
	var treeCmd = &cobra.Command{
		Use:               "tree <TEMPLATE_NAME>",
		Short:             "Print the file tree of a captured template",
		Run:               RunModuleFunc(internalTreeModule),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTemplateNames,
	}

	return treeCmd
}

// internalTreeModule is a default tree module.
func internalTreeModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	return tree.Run(configure.RegistryPath(cmdCtx), args[0])
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/remove"
)

var removeForceMode bool

// NewRemoveCmd creates remove command.
func NewRemoveCmd() *cobra.Command {
	var removeCmd = &cobra.Command{
		Use:   "remove <TEMPLATE_NAME> [flags]",
		Short: "Remove a captured template",
		Long: "Remove a template from the registry together " +
			"with its files in the template storage.",
		Run:               RunModuleFunc(internalRemoveModule),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTemplateNames,
	}

	removeCmd.Flags().BoolVarP(&removeForceMode, "force", "f", false,
		"Do not ask for confirmation")

	return removeCmd
}

// internalRemoveModule is a default remove module.
func internalRemoveModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	return remove.Run(configure.RegistryPath(cmdCtx), args[0], removeForceMode, os.Stdin)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// RunModuleFunc wraps a command implementation into a cobra Run
// function with common error handling.
func RunModuleFunc(internalModule func(*cmdcontext.CmdCtx, []string) error) func(
	*cobra.Command, []string,
) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		util.HandleCmdErr(cmd, internalModule(&cmdCtx, args))
	}
}

// completeTemplateNames returns captured template names for shell
// completion of a template argument.
func completeTemplateNames(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	registry, err := templates.OpenRegistry(configure.RegistryPath(&cmdCtx))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer registry.Close()

	records, err := registry.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		if record.Description != "" {
			names = append(names, fmt.Sprintf("%s\t%s", record.Name, record.Description))
			continue
		}
		names = append(names, record.Name)
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

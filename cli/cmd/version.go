package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/version"
)

var (
	showShort  bool
	needCommit bool
)

// NewVersionCmd creates a new version command.
func NewVersionCmd() *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show Stencil CLI version information",
		Run:   RunModuleFunc(internalVersionModule),
		Args:  cobra.ExactArgs(0),
	}

	versionCmd.Flags().BoolVar(&showShort, "short", false, "Show version in short format")
	versionCmd.Flags().BoolVar(&needCommit, "commit", false, "Show commit")

	return versionCmd
}

// internalVersionModule is a default version module.
func internalVersionModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if showShort {
		fmt.Println(version.Short(needCommit))
	} else {
		fmt.Println(version.Full())
	}
	return nil
}

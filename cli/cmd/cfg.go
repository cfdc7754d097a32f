package cmd

import (
	"github.com/spf13/cobra"
)

// NewCfgCmd creates cfg command.
func NewCfgCmd() *cobra.Command {
	var cfgCmd = &cobra.Command{
		Use:   "cfg <command> [command flags]",
		Short: "Environment configuration management utility",
	}

	cfgCmd.AddCommand(
		NewDumpCmd(),
	)

	return cfgCmd
}

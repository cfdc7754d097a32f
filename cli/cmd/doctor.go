package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/doctor"
)

var doctorFix bool

// NewDoctorCmd creates doctor command.
func NewDoctorCmd() *cobra.Command {
	var doctorCmd = &cobra.Command{
		Use:   "doctor [flags]",
		Short: "Check the registry and the template storage for problems",
		Long: `Check the registry and the template storage for problems.

Reports registry entries whose storage directory is gone, storage
directories no registry entry points at, and staging leftovers of
interrupted captures. With --fix the problems are repaired: orphan
directories are adopted back into the registry, dangling entries are
dropped and staging leftovers are deleted.`,
		Run:  RunModuleFunc(internalDoctorModule),
		Args: cobra.ExactArgs(0),
	}

	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Repair the problems found")

	return doctorCmd
}

// internalDoctorModule is a default doctor module.
func internalDoctorModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	return doctor.Run(configure.RegistryPath(cmdCtx), cliOpts.Storage.TemplatesDir, doctorFix)
}

package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/configure"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stencil",
		Short: "Directory template manager",
		Long: "Stencil captures directories as named templates " +
			"and instantiates them as new project directories",
		Example: `$ stencil capture go-service -d "gRPC service skeleton" -e "bin/"
  $ stencil create go-service --name payments
  $ stencil list`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cmdCtx.Cli.HomeDir, "home", "",
		"Stencil home directory (default $STENCIL_HOME or the user config directory)")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose logging")
	rootCmd.PersistentFlags().BoolVar(&cmdCtx.Cli.NoColor, "no-color",
		false, "Disable color output")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewInitCmd(),
		NewCaptureCmd(),
		NewCreateCmd(),
		NewListCmd(),
		NewTreeCmd(),
		NewRemoveCmd(),
		NewEditCmd(),
		NewDoctorCmd(),
		NewCfgCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes global flags and configures the CLI environment.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if cmdCtx.Cli.NoColor {
		color.NoColor = true
	}

	// Configure Stencil CLI.
	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure Stencil CLI: %s", err)
	}

	var err error
	cliOpts, err = configure.GetCliOpts(&cmdCtx)
	if err != nil {
		log.Fatalf("Failed to get Stencil CLI configuration: %s", err)
	}
}

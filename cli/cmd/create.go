package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/create"
)

var (
	createName      string
	createDstDir    string
	createForceMode bool
)

// NewCreateCmd creates a project directory from a captured template.
func NewCreateCmd() *cobra.Command {
	var createCmd = &cobra.Command{
		Use:     "create <TEMPLATE_NAME> [flags]",
		Aliases: []string{"new"},
		Short:   "Create a project directory from a template",
		Run:     RunModuleFunc(internalCreateModule),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires template name argument")
			}
			return nil
		},
		ValidArgsFunction: completeTemplateNames,
		Example: `
# Materialize the "go-service" template in the current directory.

    $ stencil create go-service

# Pick the project directory name and the parent directory.

    $ stencil create go-service --name payments --dst ~/src`,
	}

	createCmd.Flags().StringVarP(&createName, "name", "n", "",
		"Project directory name (default is the template name)")
	createCmd.Flags().StringVarP(&createDstDir, "dst", "d", "",
		"Directory to create the project in (default is the current directory)")
	createCmd.Flags().BoolVarP(&createForceMode, "force", "f", false,
		"Copy into a non-empty destination, overwriting files the template also has")

	return createCmd
}

// internalCreateModule is a default create module.
func internalCreateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	var createCtx create.CreateCtx
	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}

	createCtx.Name = createName
	createCtx.DestinationDir = createDstDir
	createCtx.ForceMode = createForceMode
	createCtx.RegistryPath = configure.RegistryPath(cmdCtx)

	progress, stopProgress := startProgress()
	defer stopProgress()
	createCtx.Progress = progress

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return create.Run(ctx, &createCtx)
}

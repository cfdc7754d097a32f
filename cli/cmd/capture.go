package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/stencil-cli/stencil/cli/capture"
	capture_ctx "github.com/stencil-cli/stencil/cli/capture/context"
	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/configure"
)

var (
	captureLocation    string
	captureDescription string
	captureExcludes    []string
	captureExcludeFrom string
	captureForceMode   bool
)

// NewCaptureCmd creates capture command.
func NewCaptureCmd() *cobra.Command {
	var captureCmd = &cobra.Command{
		Use:   "capture <TEMPLATE_NAME> [flags]",
		Short: "Capture a directory as a named template",
		Long: `Capture a directory as a named template.

The directory tree is copied into the template storage, minus the
entries matched by the exclude patterns, and recorded in the registry
under the given name.`,
		Run: RunModuleFunc(internalCaptureModule),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires template name argument")
			}
			return nil
		},
		Example: `
# Capture the current directory as "go-service".

    $ stencil capture go-service -d "gRPC service skeleton"

# Capture another directory, skipping build artifacts.

    $ stencil capture webapp -l ~/src/webapp -e "node_modules/" -e "dist/"`,
	}

	captureCmd.Flags().StringVarP(&captureLocation, "location", "l", "",
		"Directory to capture (default is the current directory)")
	captureCmd.Flags().StringVarP(&captureDescription, "description", "d", "",
		"Template description")
	captureCmd.Flags().StringArrayVarP(&captureExcludes, "exclude", "e", nil,
		"Pattern of entries to leave out, can be repeated")
	captureCmd.Flags().StringVar(&captureExcludeFrom, "exclude-from", "",
		"File with exclude patterns, one per line")
	captureCmd.Flags().BoolVarP(&captureForceMode, "force", "f", false,
		"Replace the template if it already exists")

	return captureCmd
}

// internalCaptureModule is a default capture module.
func internalCaptureModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	var captureCtx capture_ctx.CaptureCtx
	if err := capture.FillCtx(cliOpts, &captureCtx, args); err != nil {
		return err
	}

	captureCtx.SourceDir = captureLocation
	captureCtx.Description = captureDescription
	captureCtx.ExcludePatterns = captureExcludes
	captureCtx.ExcludeFrom = captureExcludeFrom
	captureCtx.ForceMode = captureForceMode
	captureCtx.RegistryPath = configure.RegistryPath(cmdCtx)

	progress, stopProgress := startProgress()
	defer stopProgress()
	captureCtx.Progress = progress

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return capture.Run(ctx, &captureCtx)
}

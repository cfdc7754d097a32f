package cmdcontext

// CmdCtx is the main structure of the program context.
// It is filled once at startup and passed down to command
// implementations.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting
	// Stencil CLI and some other parameters.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting
// Stencil CLI and some other parameters.
type CliCtx struct {
	// HomeDir is the resolved stencil home directory. All state
	// (config file, registry, template storage) lives under it.
	HomeDir string
	// ConfigPath is the path to the stencil config (stencil.yaml)
	// inside the home directory. The file may not exist.
	ConfigPath string
	// NoColor disables colored output.
	NoColor bool
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}

package cmd

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/stencil-cli/stencil/cli/util"
	"golang.org/x/term"
)

// startProgress returns a per-entry progress callback for copy
// operations and a stop function. On a non-TTY stdout, or in verbose
// mode where the debug log already narrates the copy, both are no-ops.
func startProgress() (func(relPath string), func()) {
	if cmdCtx.Cli.Verbose || !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil, func() {}
	}

	copySpinner := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	copySpinner.Start()

	maxSuffix := 0
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		maxSuffix = width - 4
	}

	progress := func(relPath string) {
		suffix := " " + relPath
		if maxSuffix > 4 && len(suffix) > maxSuffix {
			// Keep the tail of the path, that is the part that changes.
			suffix = " …" + suffix[len(suffix)-util.Min(len(suffix), maxSuffix-2):]
		}
		copySpinner.Suffix = suffix
	}

	return progress, func() { copySpinner.Stop() }
}

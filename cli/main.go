package main

import (
	"log"

	"github.com/stencil-cli/stencil/cli/cmd"
	"github.com/stencil-cli/stencil/cli/util"
	"github.com/stencil-cli/stencil/cli/version"
)

func main() {
	defer func() {
		// In case the program panics, recover captures the value given
		// to panic and resumes normal execution, handling the error below.
		if r := recover(); r != nil {
			log.Fatalf("%s", util.InternalError("Unhandled internal error: %s",
				version.Short(false), r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}

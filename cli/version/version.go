// Package version reports the CLI version injected at build time.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const unknownVersion = "<unknown>"

// These are set via ldflags, see the magefile.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// normalize strips prefixes and pre-release garbage from a git tag,
// leaving dotted version numbers. Unparsable tags pass through as is.
func normalize(tag string) string {
	parsed, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}

	segments := make([]string, 0, len(parsed.Segments()))
	for _, num := range parsed.Segments() {
		segments = append(segments, strconv.Itoa(num))
	}

	return strings.Join(segments, ".")
}

// Short returns the bare version string, optionally suffixed
// with the commit hash.
func Short(withCommit bool) string {
	if gitTag == "" {
		if withCommit && gitCommit != "" {
			return fmt.Sprintf("%s.%s", unknownVersion, gitCommit)
		}
		return unknownVersion
	}

	version := normalize(gitTag)
	if versionLabel != "" {
		version = fmt.Sprintf("%s/%s", version, versionLabel)
	}
	if withCommit {
		version = fmt.Sprintf("%s.%s", version, gitCommit)
	}

	return version
}

// Full returns the human readable version line printed by
// "stencil version".
func Full() string {
	return fmt.Sprintf("stencil version %s, %s/%s. commit: %s",
		Short(false), runtime.GOOS, runtime.GOARCH, gitCommit)
}

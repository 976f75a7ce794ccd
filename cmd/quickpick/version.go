package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X main.Version=...".
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = ""
)

// versionLine renders the one-line version banner shown by -version.
func versionLine() string {
	var b strings.Builder
	b.WriteString("quickpick " + Version)
	if Build != "" && Build != "unknown" {
		fmt.Fprintf(&b, " (build %s)", Build)
	}
	if BuildTime != "" {
		fmt.Fprintf(&b, " built %s", BuildTime)
	}
	return b.String()
}

// vcsRevision returns the short commit of a dev build, if the toolchain
// recorded one.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) > 7 {
			return setting.Value[:7]
		}
	}
	return ""
}

func writeVersion(w io.Writer) {
	fmt.Fprintln(w, versionLine())
	fmt.Fprintf(w, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if Version == "dev" {
		if rev := vcsRevision(); rev != "" {
			fmt.Fprintf(w, "commit %s\n", rev)
		}
	}
}

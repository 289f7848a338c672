// Command submerge muxes a directory of subtitle files into a directory of
// video files, pairing them by sorted order and running one ffmpeg stream
// copy per pair.
package main

import (
	"errors"
	"fmt"
	"os"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errReported marks an error the logger already printed; main only sets the
// exit status for it.
var errReported = errors.New("reported")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		// Before the logger exists errors go directly to stderr.
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "submerge: %v\n", err)
		}
		return 1
	}
	return 0
}

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionString returns the version information in a single line, e.g.
// "submerge version 1.0.0 (commit: abcdefg) built with go1.25.0 on linux/amd64".
func versionString() string {
	return fmt.Sprintf("submerge version %s (commit: %s) built with %s on %s/%s",
		version, commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// newVersionCommand displays the current version; --short prints only the
// version number.
func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of submerge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), versionString())
			}
			return nil
		},
	}
	cmd.Flags().BoolP("short", "s", false, "Print the version number only")
	return cmd
}

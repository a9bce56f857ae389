package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X main.Version=1.0.0"
var (
	Version   = "dev"
	GitCommit = ""
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  Go:      %s\n", runtime.Version())
			if GitCommit != "" {
				fmt.Fprintf(out, "  Git:     %s\n", GitCommit)
			}
			fmt.Fprintf(out, "  Version: %s\n", Version)
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "fridgectl",
		Short:         "Smart fridge inventory tooling",
		Long:          `Replay fridge scenarios to get restock reports, or publish them to a running fridgekeeper.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level for stderr output (debug, info, warn, error)")

	// Commands ordered logically: info → offline → online
	root.AddCommand(newVersionCmd())
	root.AddCommand(newReportCmd(opts))
	root.AddCommand(newPublishCmd(opts))
	return root
}

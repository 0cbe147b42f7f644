package cmd

import (
	"github.com/spf13/cobra"
)

// screensetCmd groups the screenset subcommands.
var screensetCmd = newScreensetCmd()

func newScreensetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screenset",
		Short: "Work with screensets",
		Long:  "Inspect and copy the screensets of a HAI3 project.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newScreensetCopyCmd(), newScreensetIDsCmd())

	return cmd
}

func init() {
	rootCmd.AddCommand(screensetCmd)
}

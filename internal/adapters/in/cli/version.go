package cli

import (
	"github.com/spf13/cobra"
)

func newVersionCommand(version string) *cobra.Command {
	if version == "" {
		version = "dev"
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("orderimport version %s\n", version)
		},
	}
}

package cli

import (
	"fmt"

	"orderimport/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

func newParseCommand(deps Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an order and print its items and totals",
		Long: `Parses an order text read from file, or from stdin when no file is given.
Lines that look like items but cannot be read are reported with their line number.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseFormat(opts.format)
			if err != nil {
				return err
			}

			text, err := readOrderText(cmd, args)
			if err != nil {
				return err
			}

			result, err := deps.ParseHandler.Handle(cmd.Context(), queries.NewParseOrderTextQuery(text))
			if err != nil {
				return fmt.Errorf("parse failed: %w", err)
			}

			return writeOrder(cmd.OutOrStdout(), format, result)
		},
	}
}

package cli

import (
	"errors"
	"fmt"
	"time"

	"orderimport/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

type importOptions struct {
	customerCode  string
	customersFile string
	latency       time.Duration
}

func newImportCommand(deps Dependencies, opts *rootOptions) *cobra.Command {
	importOpts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Parse an order for a customer",
		Long: `Parses an order text and resolves the customer's tax id from the directory.
Unknown customers do not stop the import: the tax id is shown as "Cliente inexistente".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseFormat(opts.format)
			if err != nil {
				return err
			}

			if deps.NewImportHandler == nil {
				return errors.New("customer directory not configured")
			}

			text, err := readOrderText(cmd, args)
			if err != nil {
				return err
			}

			query, err := queries.NewImportOrderQuery(importOpts.customerCode, text)
			if err != nil {
				return err
			}

			handler, err := deps.NewImportHandler(importOpts.customersFile, importOpts.latency)
			if err != nil {
				return fmt.Errorf("failed to open customer directory: %w", err)
			}

			response, err := handler.Handle(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			return writeImport(cmd.OutOrStdout(), format, response)
		},
	}

	cmd.Flags().StringVarP(&importOpts.customerCode, "customer", "c", "", "customer code (required)")
	cmd.Flags().StringVar(&importOpts.customersFile, "customers", "", "YAML file with the customer directory")
	cmd.Flags().DurationVar(&importOpts.latency, "latency", deps.DefaultLatency, "simulated directory latency")
	_ = cmd.MarkFlagRequired("customer")

	return cmd
}

// Package cli is the command line driving adapter. It reads order text from a
// file or stdin, runs the parse and import use cases and prints the outcome as
// a table, JSON or YAML.
package cli

import (
	"time"

	"orderimport/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

// ImportHandlerFactory builds an import handler over a customer directory seeded
// from seedFile (built-in customers when empty) that answers after latency.
type ImportHandlerFactory func(seedFile string, latency time.Duration) (queries.ImportOrderQueryHandler, error)

type Dependencies struct {
	ParseHandler     queries.ParseOrderTextQueryHandler
	NewImportHandler ImportHandlerFactory
	DefaultLatency   time.Duration
	Version          string
}

type rootOptions struct {
	format string
}

// NewRootCommand assembles the orderimport command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "orderimport",
		Short: "Turn free-text orders into line items and totals",
		Long: `orderimport reads orders written one product per line, e.g.

  2x Widget A - PC - R$10,00 - Peso total: 1,00kg - 1001
  Taxa de entrega: R$5,00

and prints the recognised items, the lines it could not read and the order totals.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.format, "format", "f", string(FormatTable), "output format: table, json or yaml")

	root.AddCommand(
		newParseCommand(deps, opts),
		newImportCommand(deps, opts),
		newVersionCommand(deps.Version),
	)

	return root
}

package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/ports"
	"orderimport/internal/pkg/errs"
)

// ImportOrderQueryHandler parses the order text and looks the customer up. The
// lookup runs in its own goroutine while the text is parsed; neither depends on
// the other.
type ImportOrderQueryHandler struct {
	parser    OrderTextParser
	directory ports.CustomerDirectory
	logger    *slog.Logger
}

func NewImportOrderQueryHandler(
	parser OrderTextParser,
	directory ports.CustomerDirectory,
	logger *slog.Logger,
) ImportOrderQueryHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return ImportOrderQueryHandler{
		parser:    parser,
		directory: directory,
		logger:    logger.With("component", "import_order_query_handler"),
	}
}

type lookupOutcome struct {
	customer *customer.Customer
	err      error
}

// Handle returns the review model. An unknown customer is not an error: the
// response carries UnknownCustomerTaxID and a warning. Other directory failures,
// including ctx cancellation, are returned.
func (h ImportOrderQueryHandler) Handle(ctx context.Context, query ImportOrderQuery) (*ImportOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lookup := make(chan lookupOutcome, 1)
	go func() {
		c, err := h.directory.Lookup(ctx, query.CustomerCode())
		lookup <- lookupOutcome{customer: c, err: err}
	}()

	result := h.parser.Parse(query.OrderText())
	outcome := <-lookup

	response := &ImportOrderQueryResponse{
		CustomerCode: query.CustomerCode(),
		Result:       result,
		Warnings:     make([]string, 0),
	}

	switch {
	case outcome.err == nil:
		response.Customer = outcome.customer
		response.CustomerTaxID = outcome.customer.TaxID()
	case errors.Is(outcome.err, errs.ErrObjectNotFound):
		response.CustomerTaxID = UnknownCustomerTaxID
		response.Warnings = append(response.Warnings, fmt.Sprintf("customer %s not found", query.CustomerCode()))
	default:
		return nil, fmt.Errorf("customer lookup: %w", outcome.err)
	}

	if !result.HasItems() {
		response.Warnings = append(response.Warnings, WarningNoValidItems)
	}
	if n := len(result.Errors()); n > 0 {
		response.Warnings = append(response.Warnings, fmt.Sprintf("%d line(s) could not be parsed", n))
	}

	h.logger.InfoContext(ctx, "order imported",
		"customer_code", query.CustomerCode(),
		"customer_found", response.CustomerFound(),
		"items", len(result.Items()),
		"errors", len(result.Errors()))

	return response, nil
}

package order

import (
	"slices"

	"github.com/shopspring/decimal"
)

// ParseResult is the outcome of parsing one order text. It has no identity:
// every parse yields a fresh value.
type ParseResult struct {
	items   []LineItem
	errors  []ParseError
	summary Summary
}

// NewParseResult bundles the parsed items and collected errors and computes the summary.
// The slices are copied so later changes by the caller do not leak in.
func NewParseResult(items []LineItem, parseErrors []ParseError, deliveryFee decimal.Decimal) *ParseResult {
	items = slices.Clone(items)
	parseErrors = slices.Clone(parseErrors)
	if items == nil {
		items = []LineItem{}
	}
	if parseErrors == nil {
		parseErrors = []ParseError{}
	}

	return &ParseResult{
		items:   items,
		errors:  parseErrors,
		summary: NewSummary(items, deliveryFee),
	}
}

// Items returns a copy of the parsed line items in input order.
func (r *ParseResult) Items() []LineItem {
	return slices.Clone(r.items)
}

// Errors returns a copy of the per-line errors in input order.
func (r *ParseResult) Errors() []ParseError {
	return slices.Clone(r.errors)
}

// Summary returns the order aggregates.
func (r *ParseResult) Summary() Summary {
	return r.summary
}

// HasItems reports whether at least one line parsed into an item.
func (r *ParseResult) HasItems() bool {
	return len(r.items) > 0
}

// HasErrors reports whether any line was rejected.
func (r *ParseResult) HasErrors() bool {
	return len(r.errors) > 0
}

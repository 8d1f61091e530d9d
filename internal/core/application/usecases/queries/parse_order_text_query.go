// Package queries contains read operations: parsing order text, importing an
// order for a customer and reading the customer directory. None of them change
// stored state.
package queries

import (
	"context"
	"errors"

	"orderimport/internal/core/domain/model/order"
	"orderimport/internal/pkg/guard"
)

var ErrParseOrderTextQueryIsNotConstructed = errors.New(
	"ParseOrderTextQuery must be created via NewParseOrderTextQuery constructor",
)

// OrderTextParser turns order text into a parse result. The domain
// services.OrderTextParser satisfies it.
type OrderTextParser interface {
	Parse(text string) *order.ParseResult
}

// ParseOrderTextQuery asks for the structured form of a pasted order text.
// Any text is accepted, including the empty string.
type ParseOrderTextQuery struct {
	text string

	guard guard.ConstructorGuard
}

func NewParseOrderTextQuery(text string) ParseOrderTextQuery {
	return ParseOrderTextQuery{text: text, guard: guard.NewConstructorGuard()}
}

func (q ParseOrderTextQuery) Validate() error {
	return q.guard.Validate(ErrParseOrderTextQueryIsNotConstructed)
}

func (q ParseOrderTextQuery) Text() string {
	return q.text
}

// ParseOrderTextQueryHandler runs the parser.
//
// Example:
//
//	handler := NewParseOrderTextQueryHandler(services.NewOrderTextParser(logger))
//	result, err := handler.Handle(ctx, NewParseOrderTextQuery(text))
//	if err != nil {
//	    return err
//	}
//	for _, parseErr := range result.Errors() {
//	    fmt.Println(parseErr)
//	}
type ParseOrderTextQueryHandler struct {
	parser OrderTextParser
}

func NewParseOrderTextQueryHandler(parser OrderTextParser) ParseOrderTextQueryHandler {
	return ParseOrderTextQueryHandler{parser: parser}
}

// Handle returns the parse result. The only error is an unconstructed query;
// line problems are reported inside the result.
func (h ParseOrderTextQueryHandler) Handle(_ context.Context, query ParseOrderTextQuery) (*order.ParseResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.parser.Parse(query.Text()), nil
}

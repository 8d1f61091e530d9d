package queries

import (
	"errors"
	"strings"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/domain/model/order"
	"orderimport/internal/pkg/errs"
	"orderimport/internal/pkg/guard"
)

var ErrImportOrderQueryIsNotConstructed = errors.New(
	"ImportOrderQuery must be created via NewImportOrderQuery constructor",
)

const (
	// UnknownCustomerTaxID is shown in place of a tax id when the customer code is unknown.
	UnknownCustomerTaxID = "Cliente inexistente"

	// WarningNoValidItems is reported when the text produced no line item.
	WarningNoValidItems = "no valid items found in order"
)

// ImportOrderQuery pairs an order text with the customer placing it.
//
// Example:
//
//	query, err := NewImportOrderQuery("1001", pastedText)
//	if err != nil {
//	    return fmt.Errorf("invalid import request: %w", err)
//	}
//	response, err := handler.Handle(ctx, query)
type ImportOrderQuery struct {
	customerCode string
	orderText    string

	guard guard.ConstructorGuard
}

// NewImportOrderQuery requires a customer code and a non-blank order text.
func NewImportOrderQuery(customerCode, orderText string) (ImportOrderQuery, error) {
	query := ImportOrderQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setCustomerCode(customerCode),
		query.setOrderText(orderText),
	); err != nil {
		return ImportOrderQuery{}, err
	}

	return query, nil
}

func (q ImportOrderQuery) Validate() error {
	return q.guard.Validate(ErrImportOrderQueryIsNotConstructed)
}

func (q ImportOrderQuery) CustomerCode() string {
	return q.customerCode
}

func (q ImportOrderQuery) OrderText() string {
	return q.orderText
}

func (q *ImportOrderQuery) setCustomerCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("customer code")
	}
	q.customerCode = code
	return nil
}

func (q *ImportOrderQuery) setOrderText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("order text")
	}
	q.orderText = text
	return nil
}

// ImportOrderQueryResponse is the review model of an imported order.
type ImportOrderQueryResponse struct {
	CustomerCode string
	// Customer is nil when the code is not in the directory.
	Customer *customer.Customer
	// CustomerTaxID is the customer's tax id or UnknownCustomerTaxID.
	CustomerTaxID string
	Result        *order.ParseResult
	Warnings      []string
}

// CustomerFound reports whether the directory knew the customer code.
func (r ImportOrderQueryResponse) CustomerFound() bool {
	return r.Customer != nil
}

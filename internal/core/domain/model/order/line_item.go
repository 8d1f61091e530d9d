package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"orderimport/internal/core/domain/model/kernel"
	"orderimport/internal/pkg/errs"
	"orderimport/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created through
	// NewUnitPricedLineItem or NewLineTotalLineItem.
	ErrLineItemIsNotConstructed = errors.New(
		"LineItem must be created via NewUnitPricedLineItem or NewLineTotalLineItem constructor")

	productCode = regexp.MustCompile(`^\d+$`)
)

// LineItem is one product entry parsed from a line of order text.
//
// LineItem follows these invariants:
//   - code is a non-empty digit sequence
//   - description is non-empty and trimmed
//   - quantity, lineTotal and totalWeight are non-negative
//   - unitPrice is present only when the line carried an explicit unit field,
//     in which case lineTotal == quantity × unitPrice
type LineItem struct { //nolint:recvcheck //using for validation
	code        string
	quantity    decimal.Decimal
	description string
	unit        Unit
	unitPrice   decimal.NullDecimal
	lineTotal   decimal.Decimal
	totalWeight decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUnitPricedLineItem creates a line item whose price is per unit. The line total
// is computed as quantity × unitPrice.
//
// Example:
//
//	qty := decimal.NewFromInt(6)
//	price := decimal.RequireFromString("18.3")
//	weight := decimal.RequireFromString("5.10")
//	item, err := order.NewUnitPricedLineItem("20001", "SALG FESTA COXINHA", order.Piece, qty, price, weight)
//	// item.LineTotal() == 109.8
func NewUnitPricedLineItem(
	code, description string,
	unit Unit,
	quantity, unitPrice, totalWeight decimal.Decimal,
) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setCode(code),
		item.setDescription(description),
		item.setUnit(unit),
		item.setQuantity(quantity),
		item.setTotalWeight(totalWeight),
		kernel.ValidateNonNegative("unit price", unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.unitPrice = decimal.NewNullDecimal(unitPrice)
	item.lineTotal = quantity.Mul(unitPrice)
	return item, nil
}

// NewLineTotalLineItem creates a line item whose parsed price already is the line
// total. No unit price is recorded.
func NewLineTotalLineItem(
	code, description string,
	unit Unit,
	quantity, lineTotal, totalWeight decimal.Decimal,
) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setCode(code),
		item.setDescription(description),
		item.setUnit(unit),
		item.setQuantity(quantity),
		item.setTotalWeight(totalWeight),
		item.setLineTotal(lineTotal),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was built by one of its constructors.
func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// Code returns the product code.
func (l LineItem) Code() string {
	return l.code
}

// Quantity returns the number of units or packages ordered.
func (l LineItem) Quantity() decimal.Decimal {
	return l.quantity
}

// Description returns the trimmed product description.
func (l LineItem) Description() string {
	return l.description
}

// Unit returns how the item is counted.
func (l LineItem) Unit() Unit {
	return l.unit
}

// UnitPrice returns the price per unit and whether the line carried one.
func (l LineItem) UnitPrice() (decimal.Decimal, bool) {
	return l.unitPrice.Decimal, l.unitPrice.Valid
}

// LineTotal returns the value of the line.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.lineTotal
}

// TotalWeight returns the total weight of the line in kilograms.
func (l LineItem) TotalWeight() decimal.Decimal {
	return l.totalWeight
}

// DisplayQuantity is what a review table shows in its quantity column: the total
// weight for KG items and the quantity for everything else.
func (l LineItem) DisplayQuantity() decimal.Decimal {
	if l.unit.IsKilogram() {
		return l.totalWeight
	}
	return l.quantity
}

func (l *LineItem) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if !productCode.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q is not a digit sequence", code))
	}

	l.code = code
	return nil
}

func (l *LineItem) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	l.description = description
	return nil
}

func (l *LineItem) setUnit(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	l.unit = unit
	return nil
}

func (l *LineItem) setQuantity(quantity decimal.Decimal) error {
	if err := kernel.ValidateNonNegative("quantity", quantity); err != nil {
		return err
	}

	l.quantity = quantity
	return nil
}

func (l *LineItem) setTotalWeight(totalWeight decimal.Decimal) error {
	if err := kernel.ValidateNonNegative("total weight", totalWeight); err != nil {
		return err
	}

	l.totalWeight = totalWeight
	return nil
}

func (l *LineItem) setLineTotal(lineTotal decimal.Decimal) error {
	if err := kernel.ValidateNonNegative("line total", lineTotal); err != nil {
		return err
	}

	l.lineTotal = lineTotal
	return nil
}

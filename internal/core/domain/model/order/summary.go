package order

import "github.com/shopspring/decimal"

// Summary holds the order-level aggregates. It is derived once from the full list
// of line items and never updated incrementally.
type Summary struct {
	totalWeightKg decimal.Decimal
	totalPackages decimal.Decimal
	totalValue    decimal.Decimal
	deliveryFee   decimal.Decimal
	grandTotal    decimal.Decimal
}

// NewSummary aggregates items:
//   - totalWeightKg sums total weight over KG items
//   - totalPackages sums quantity over PC items
//   - totalValue sums line totals over every item
//   - grandTotal is totalValue + deliveryFee
func NewSummary(items []LineItem, deliveryFee decimal.Decimal) Summary {
	s := Summary{
		totalWeightKg: decimal.Zero,
		totalPackages: decimal.Zero,
		totalValue:    decimal.Zero,
		deliveryFee:   deliveryFee,
	}

	for _, item := range items {
		switch {
		case item.Unit().IsKilogram():
			s.totalWeightKg = s.totalWeightKg.Add(item.TotalWeight())
		case item.Unit().IsPiece():
			s.totalPackages = s.totalPackages.Add(item.Quantity())
		}
		s.totalValue = s.totalValue.Add(item.LineTotal())
	}

	s.grandTotal = s.totalValue.Add(deliveryFee)
	return s
}

// TotalWeightKg returns the summed weight of KG items.
func (s Summary) TotalWeightKg() decimal.Decimal {
	return s.totalWeightKg
}

// TotalPackages returns the summed quantity of PC items.
func (s Summary) TotalPackages() decimal.Decimal {
	return s.totalPackages
}

// TotalValue returns the summed line totals.
func (s Summary) TotalValue() decimal.Decimal {
	return s.totalValue
}

// DeliveryFee returns the parsed delivery fee, zero when the text had none.
func (s Summary) DeliveryFee() decimal.Decimal {
	return s.deliveryFee
}

// GrandTotal returns TotalValue plus DeliveryFee.
func (s Summary) GrandTotal() decimal.Decimal {
	return s.grandTotal
}

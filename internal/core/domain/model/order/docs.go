// Package order provides the value objects produced by importing a pasted order text.
//
// The package includes:
//   - LineItem: One product entry parsed from a single line of order text
//   - Unit: How a line item is counted, PC (piece/package) or KG (priced by kilogram)
//   - ParseError: A per-line failure, either an invalid format or invalid numeric values
//   - Summary: Order-level aggregates derived from the line items and the delivery fee
//   - ParseResult: The bundle of items, errors and summary returned for one parse
//
// Key business rules:
//   - Quantity, line total and total weight are never negative
//   - A line item priced per unit carries its unit price and a line total of quantity × unit price
//   - A line item written without a unit field carries only its line total
//   - Total weight sums KG items only, total packages sums PC quantities only
//   - Grand total is the sum of line totals plus the delivery fee
//
// All values are immutable once constructed. Monetary and weight arithmetic uses
// github.com/shopspring/decimal.
package order

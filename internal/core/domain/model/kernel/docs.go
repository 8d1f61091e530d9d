// Package kernel provides domain primitives shared by the order import model.
//
// The package includes:
//   - UUID: A value object for unique identifiers used by the customer directory
//   - ParseAmount: Normalisation of the decimal tokens found in pasted order text,
//     accepting both "18,30" and "18.30" and rejecting negatives and malformed input
//
// Amounts are represented with github.com/shopspring/decimal so that sums of
// prices and weights are exact.
package kernel

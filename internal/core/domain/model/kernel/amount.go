package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"orderimport/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// plainDecimal is the only shape accepted after the decimal comma has been
// replaced: digits with an optional fractional part. Signs, exponents and
// thousands separators are rejected.
var plainDecimal = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// NormalizeDecimalSeparator turns a Brazilian decimal comma into a period.
// "18,30" becomes "18.30"; "18.30" is returned unchanged.
func NormalizeDecimalSeparator(token string) string {
	return strings.ReplaceAll(strings.TrimSpace(token), ",", ".")
}

// ParseAmount parses a quantity, price or weight token written in order text.
// Both "18,30" and "18.30" yield 18.3. Anything that is not a finite,
// non-negative plain decimal is rejected with a ValueIsInvalidError.
//
// Example:
//
//	price, err := kernel.ParseAmount("18,30")
//	if err != nil {
//	    // token was malformed, e.g. "1,2,3" or "-4"
//	}
func ParseAmount(token string) (decimal.Decimal, error) {
	normalized := NormalizeDecimalSeparator(token)
	if !plainDecimal.MatchString(normalized) {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%q is not a non-negative decimal", token))
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return d, nil
}

// ValidateNonNegative returns a ValueIsOutOfRangeError naming paramName when d < 0.
func ValidateNonNegative(paramName string, d decimal.Decimal) error {
	if d.IsNegative() {
		return errs.NewValueIsOutOfRangeError(paramName, d.String(), "0", "unbounded")
	}
	return nil
}

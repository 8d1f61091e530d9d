package order

import (
	"fmt"
	"regexp"
	"strings"

	"orderimport/internal/pkg/errs"
)

// Unit tells how a line item is counted.
//
// PC and KG are the units the order text normally carries. When a line states an
// explicit unit, any alphabetic token is kept verbatim in upper case, so values
// such as "CX" are possible; they count toward the order value only.
type Unit string

const (
	// Piece means the quantity counts discrete pieces or packages.
	Piece Unit = "PC"

	// Kilogram means the item is priced and weighed by kilogram.
	Kilogram Unit = "KG"
)

var (
	unitToken = regexp.MustCompile(`^[A-Za-z]+$`)

	// kilogramHint is searched in descriptions of lines that carry no unit field.
	kilogramHint = regexp.MustCompile(`(?i)kg|kilo`)
)

// ParseUnit validates an explicit unit field and returns it upper-cased.
//
// Returns:
//   - the unit, e.g. "pc" -> Piece
//   - ValueIsInvalidError when the token is empty or not purely alphabetic
func ParseUnit(token string) (Unit, error) {
	token = strings.TrimSpace(token)
	if !unitToken.MatchString(token) {
		return "", errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("%q is not an alphabetic token", token))
	}
	return Unit(strings.ToUpper(token)), nil
}

// InferUnit derives the unit of a line written without a unit field: KG when the
// description mentions "kg" or "kilo" in any case, PC otherwise.
func InferUnit(description string) Unit {
	if kilogramHint.MatchString(description) {
		return Kilogram
	}
	return Piece
}

// IsKilogram reports whether the item is priced by kilogram.
func (u Unit) IsKilogram() bool {
	return u == Kilogram
}

// IsPiece reports whether the item is counted in pieces or packages.
func (u Unit) IsPiece() bool {
	return u == Piece
}

// Validate rejects the empty unit and tokens that ParseUnit would not produce.
func (u Unit) Validate() error {
	if u == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	if !unitToken.MatchString(string(u)) || strings.ToUpper(string(u)) != string(u) {
		return errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("%q is not an upper-case alphabetic token", u))
	}
	return nil
}

func (u Unit) String() string {
	return string(u)
}

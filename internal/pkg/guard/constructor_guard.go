// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to tell constructor-built values from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was produced by its constructor.
// The zero value is "not constructed".
//
// Example:
//
//	var ErrLineItemNotConstructed = errors.New("LineItem must be created via NewLineItem")
//
//	type LineItem struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewLineItem(code string) (LineItem, error) {
//	    if code == "" {
//	        return LineItem{}, errors.New("code is required")
//	    }
//	    return LineItem{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (l LineItem) Validate() error {
//	    return l.guard.Validate(ErrLineItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
// Call it only from the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

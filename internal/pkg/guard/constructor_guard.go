// Package guard holds ConstructorGuard, used by commands and queries to reject
// zero-value instances that skipped their validating constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in a struct,
// set it with NewConstructorGuard in the constructor, and check it in Validate.
//
// Example:
//
//	type CheckoutCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c CheckoutCommand) Validate() error {
//	    return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the
// guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

package order

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderLocked is returned when items are added to or removed from an order that
	// has left draft.
	ErrOrderLocked = errors.New("order is locked")

	// ErrEmptyOrder is returned by Checkout for an order without items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrInvalidTransition is matched by every TransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned for status values outside the lifecycle.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidQuantity is returned for quantities outside 1..MaxQuantity and for
	// lines that would push the order subtotal past what Money can hold.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// TransitionError describes a rejected status change.
type TransitionError struct {
	From   Status
	To     Status
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %s", ErrInvalidTransition, e.From, e.To, e.Reason)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func lockedError(status Status) error {
	return fmt.Errorf("%w: items can only change while the order is %s, it is %s", ErrOrderLocked, Draft, status)
}

package order

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle state of an order.
// The transition rules live here so every caller (checkout, admin updates,
// persistence) goes through the same table.
//
// State transitions:
//
//	Draft ──> Placed ──┬──> Preparing ──┐
//	                   └──> Baking <────┤
//	                                    ├──> OutForDelivery ──> Delivered   (delivery)
//	                                    └──> ReadyForPickup ──> Delivered   (pickup)
//
// Draft -> Placed happens only through checkout. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status; the only one in which items may change.
	Draft

	// Placed is set by checkout.
	Placed

	Preparing
	Baking

	// OutForDelivery is only reachable for delivery orders.
	OutForDelivery

	// ReadyForPickup is only reachable for pickup orders.
	ReadyForPickup

	// Delivered is the final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Draft:          "draft",
		Placed:         "placed",
		Preparing:      "preparing",
		Baking:         "baking",
		OutForDelivery: "out_for_delivery",
		ReadyForPickup: "ready_for_pickup",
		Delivered:      "delivered",
	}
}

// stage orders the lifecycle; statuses on alternative paths share a stage.
func (s Status) stage() int {
	switch s {
	case Draft:
		return 0
	case Placed:
		return 1
	case Preparing:
		return 2
	case Baking:
		return 3
	case OutForDelivery, ReadyForPickup:
		return 4
	case Delivered:
		return 5
	case Unknown:
	}
	return -1
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Draft, Placed, Preparing, Baking, OutForDelivery, ReadyForPickup, Delivered}
}

// ParseStatus maps the persisted / wire name back to a Status. Matching ignores case
// and surrounding spaces. Unrecognized names return ErrInvalidStatus.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a recognized status", ErrInvalidStatus, s)
}

// Validate checks that the Status is one of the lifecycle values.
func (s Status) Validate() error {
	if s.stage() < 0 {
		return fmt.Errorf("%w: %d is not a recognized status", ErrInvalidStatus, int(s))
	}
	return nil
}

// String returns the snake_case name used in storage and tool payloads.
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// IsMutable reports whether items may still be added or removed.
func (s Status) IsMutable() bool {
	return s == Draft
}

// onPath reports whether the status belongs to the lifecycle of the delivery type.
func (s Status) onPath(deliveryType DeliveryType) bool {
	switch s {
	case OutForDelivery:
		return deliveryType == Delivery
	case ReadyForPickup:
		return deliveryType == Pickup
	default:
		return true
	}
}

// Place transitions Draft to Placed. Any other starting status is rejected.
func (s Status) Place() (Status, error) {
	if s != Draft {
		return Unknown, &TransitionError{From: s, To: Placed, Reason: "only draft orders can be placed"}
	}
	return Placed, nil
}

// ValidateAdvance checks an admin-driven transition to without performing it.
//
// Under ForwardOnly the target must be strictly later in the lifecycle and on the
// order's own path (out_for_delivery for delivery orders, ready_for_pickup for pickup).
// Under Permissive any recognized status except draft is accepted.
// In both modes draft orders must go through checkout and delivered orders are final.
func (s Status) ValidateAdvance(to Status, deliveryType DeliveryType, policy TransitionPolicy) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return &TransitionError{From: s, To: to, Reason: fmt.Sprintf("%s is terminal", s)}
	}
	if s == Draft {
		return &TransitionError{From: s, To: to, Reason: "draft orders are placed through checkout"}
	}
	if to == Draft {
		return &TransitionError{From: s, To: to, Reason: "orders cannot return to draft"}
	}
	if policy == Permissive {
		return nil
	}
	if to.stage() <= s.stage() {
		return &TransitionError{From: s, To: to, Reason: "status can only move forward"}
	}
	if !to.onPath(deliveryType) {
		return &TransitionError{From: s, To: to, Reason: fmt.Sprintf("not a step of a %s order", deliveryType)}
	}
	return nil
}

// Advance returns the new status after an admin-driven transition.
func (s Status) Advance(to Status, deliveryType DeliveryType, policy TransitionPolicy) (Status, error) {
	if err := s.ValidateAdvance(to, deliveryType, policy); err != nil {
		return Unknown, err
	}
	return to, nil
}

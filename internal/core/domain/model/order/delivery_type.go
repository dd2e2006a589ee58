package order

import (
	"fmt"
	"strings"

	"pizzabot/internal/pkg/errs"
)

// DeliveryType selects the fulfillment path and whether the delivery fee applies.
type DeliveryType int

const (
	UnknownDeliveryType DeliveryType = iota
	Delivery
	Pickup
)

// ParseDeliveryType accepts "delivery" or "pickup", ignoring case and spaces.
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delivery":
		return Delivery, nil
	case "pickup":
		return Pickup, nil
	}
	return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
		"delivery type",
		fmt.Errorf("%q must be delivery or pickup", s),
	)
}

func (d DeliveryType) Validate() error {
	if d != Delivery && d != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%d is not a valid delivery type", int(d)))
	}
	return nil
}

func (d DeliveryType) String() string {
	switch d {
	case Delivery:
		return "delivery"
	case Pickup:
		return "pickup"
	case UnknownDeliveryType:
	}
	return "unknown"
}

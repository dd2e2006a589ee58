package order

import (
	"fmt"
	"strings"

	"pizzabot/internal/pkg/errs"
)

// TransitionPolicy decides how strictly admin status updates follow the lifecycle.
type TransitionPolicy int

const (
	// ForwardOnly accepts only later statuses on the order's own path.
	ForwardOnly TransitionPolicy = iota

	// Permissive accepts any recognized non-draft status from a non-terminal,
	// placed order, including moves backward.
	Permissive
)

// ParseTransitionPolicy reads "forward" or "permissive"; empty means ForwardOnly.
func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward":
		return ForwardOnly, nil
	case "permissive":
		return Permissive, nil
	}
	return ForwardOnly, errs.NewValueIsInvalidErrorWithCause(
		"transition policy",
		fmt.Errorf("%q is not one of forward, permissive", s),
	)
}

func (p TransitionPolicy) String() string {
	if p == Permissive {
		return "permissive"
	}
	return "forward"
}

package queries

import (
	"errors"
	"strings"
	"time"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery selects the newest orders, optionally only those in one status.
type ListOrdersQuery struct {
	status    order.Status
	hasStatus bool
	limit     int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status for "any". A limit of zero means
// DefaultListLimit; anything above MaxListLimit or below zero is rejected.
func NewListOrdersQuery(status string, limit int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(status) != "" {
		s, err := order.ParseStatus(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = s
		q.hasStatus = true
	}

	if limit == 0 {
		q.limit = DefaultListLimit
	}
	if q.limit < 1 || q.limit > MaxListLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status reports the filter and whether one was given.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// OrderSummary is one row of the admin order table.
type OrderSummary struct {
	ID           kernel.UUID
	CustomerName string
	Status       order.Status
	DeliveryType order.DeliveryType
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ItemCount    int
	Subtotal     kernel.Money
}

type ListOrdersQueryResponse struct {
	Orders []OrderSummary
}

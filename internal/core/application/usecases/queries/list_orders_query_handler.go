package queries

import (
	"context"
	"database/sql"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns summaries newest first. Item count and subtotal are aggregated
// from order_items at query time.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var (
		filter string
		args   []any
	)
	if status, ok := query.Status(); ok {
		filter = "WHERE o.status = ?"
		args = append(args, status.String())
	}
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			c.name,
			o.status,
			o.delivery_type,
			o.address,
			o.created_at,
			o.updated_at,
			COUNT(i.id),
			COALESCE(SUM(i.unit_price * i.qty), 0)
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		LEFT JOIN order_items i ON i.order_id = o.id
		`+filter+`
		GROUP BY o.id, c.name, o.status, o.delivery_type, o.address, o.created_at, o.updated_at
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ?
	`, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary              OrderSummary
			id                   uuid.UUID
			name, address        sql.NullString
			status, deliveryType string
			subtotal             int64
		)
		err = rows.Scan(
			&id,
			&name,
			&status,
			&deliveryType,
			&address,
			&summary.CreatedAt,
			&summary.UpdatedAt,
			&summary.ItemCount,
			&subtotal,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if summary.Status, err = order.ParseStatus(status); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if summary.DeliveryType, err = order.ParseDeliveryType(deliveryType); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		summary.CustomerName = name.String
		summary.Address = address.String
		summary.Subtotal = kernel.Money(subtotal)

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{Orders: orders}, nil
}

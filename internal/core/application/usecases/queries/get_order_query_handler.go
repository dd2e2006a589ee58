package queries

import (
	"context"
	"database/sql"
	"errors"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and prices it with the catalog's fee and tax.
type GetOrderQueryHandler struct {
	db   *gorm.DB
	menu *catalog.Catalog
}

func NewGetOrderQueryHandler(db *gorm.DB, menu *catalog.Catalog) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, menu: menu}
}

// Handle returns errs.ObjectNotFoundError for an unknown order. The header, items
// and updates are read in one read-only transaction so they describe the same
// moment.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		header, err := h.header(tx, query.OrderID())
		if err != nil {
			return err
		}

		items, views, err := h.items(tx, query.OrderID())
		if err != nil {
			return err
		}

		updates, err := h.updates(tx, query.OrderID())
		if err != nil {
			return err
		}

		totals, err := order.ComputeTotals(items, header.DeliveryType, h.menu)
		if err != nil {
			return err
		}

		response = GetOrderQueryResponse{
			Order:   header,
			Items:   views,
			Updates: updates,
			Totals:  totals,
		}
		return nil
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) header(tx *gorm.DB, orderID kernel.UUID) (OrderView, error) {
	row := tx.Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			c.phone,
			o.status,
			o.delivery_type,
			o.address,
			o.notes,
			o.created_at,
			o.updated_at
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	var (
		view                        OrderView
		id                          uuid.UUID
		customerID                  uuid.NullUUID
		name, phone, address, notes sql.NullString
		status, deliveryType        string
	)
	err := row.Scan(
		&id,
		&customerID,
		&name,
		&phone,
		&status,
		&deliveryType,
		&address,
		&notes,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if customerID.Valid {
		cID, idErr := kernel.UUIDFromBytes(customerID.UUID[:])
		if idErr != nil {
			return OrderView{}, idErr
		}
		view.CustomerID = &cID
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, err
	}
	if view.DeliveryType, err = order.ParseDeliveryType(deliveryType); err != nil {
		return OrderView{}, err
	}
	view.CustomerName = name.String
	view.CustomerPhone = phone.String
	view.Address = address.String
	view.Notes = notes.String

	return view, nil
}

func (h GetOrderQueryHandler) items(tx *gorm.DB, orderID kernel.UUID) ([]order.Item, []ItemView, error) {
	rows, err := tx.Raw(`
		SELECT
			id,
			item_type,
			item_id,
			item_name,
			size,
			qty,
			unit_price,
			created_at
		FROM order_items
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := make([]order.Item, 0)
	views := make([]ItemView, 0)
	for rows.Next() {
		var (
			id                     uuid.UUID
			itemType, itemID, name string
			size                   sql.NullString
			qty                    int
			unitPrice              int64
			view                   ItemView
		)
		if err = rows.Scan(&id, &itemType, &itemID, &name, &size, &qty, &unitPrice, &view.CreatedAt); err != nil {
			return nil, nil, err
		}

		item, itemErr := restoreItem(id, itemType, itemID, name, size, qty, unitPrice, view.CreatedAt)
		if itemErr != nil {
			return nil, nil, itemErr
		}

		view.ID = item.ID()
		view.ItemType = item.Type()
		view.ItemID = item.CatalogID()
		view.ItemName = item.Name()
		view.Size = item.Size()
		view.Qty = item.Quantity()
		view.UnitPrice = item.UnitPrice()
		if view.LineTotal, err = item.LineTotal(); err != nil {
			return nil, nil, err
		}

		items = append(items, item)
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return items, views, nil
}

func (h GetOrderQueryHandler) updates(tx *gorm.DB, orderID kernel.UUID) ([]UpdateView, error) {
	rows, err := tx.Raw(`
		SELECT
			id,
			status,
			message,
			created_at
		FROM order_updates
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := make([]UpdateView, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			status  string
			message sql.NullString
			view    UpdateView
		)
		if err = rows.Scan(&id, &status, &message, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		view.Message = message.String
		updates = append(updates, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return updates, nil
}

// Package orderrepo maps the order aggregate to the orders, order_items and
// order_updates tables. Items and updates cascade-delete with their order.
package orderrepo

import (
	"time"

	"pizzabot/internal/adapters/out/persistence/customerrepo"
	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row shape of the orders table. Status and delivery type are kept
// as their snake_case names so the table reads well from a SQL shell.
type OrderDTO struct {
	ID           uuid.UUID                 `gorm:"size:36;primaryKey"`
	CustomerID   *uuid.UUID                `gorm:"size:36;index"`
	Customer     *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	Status       string                    `gorm:"size:32;not null;index"`
	DeliveryType string                    `gorm:"size:16;not null"`
	Address      *string                   `gorm:"size:512"`
	Notes        *string                   `gorm:"size:1024"`
	CreatedAt    time.Time                 `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt    time.Time                 `gorm:"not null;autoUpdateTime:false"`
	Items        []ItemDTO                 `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Updates      []UpdateDTO               `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one row of order_items. Size is NULL for extras.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"size:36;primaryKey"`
	OrderID   uuid.UUID `gorm:"size:36;not null;index"`
	ItemType  string    `gorm:"size:16;not null"`
	ItemID    string    `gorm:"size:64;not null"`
	ItemName  string    `gorm:"size:255;not null"`
	Size      *string   `gorm:"size:16"`
	Qty       int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// UpdateDTO is one row of the append-only order_updates history.
type UpdateDTO struct {
	ID        uuid.UUID `gorm:"size:36;primaryKey"`
	OrderID   uuid.UUID `gorm:"size:36;not null;index"`
	Status    string    `gorm:"size:32;not null"`
	Message   *string   `gorm:"size:1024"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (UpdateDTO) TableName() string {
	return "order_updates"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fromDomain(o *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := o.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	dto := OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerID:   customerID,
		Status:       o.Status().String(),
		DeliveryType: o.DeliveryType().String(),
		Address:      optional(o.Address()),
		Notes:        optional(o.Notes()),
		CreatedAt:    o.CreatedAt().UTC(),
		UpdatedAt:    o.UpdatedAt().UTC(),
	}
	for _, item := range o.Items() {
		dto.Items = append(dto.Items, itemFromDomain(o.ID(), item))
	}
	for _, update := range o.Updates() {
		dto.Updates = append(dto.Updates, updateFromDomain(o.ID(), update))
	}
	return dto
}

func itemFromDomain(orderID kernel.UUID, item order.Item) ItemDTO {
	var size *string
	if item.Size() != catalog.NoSize {
		size = optional(item.Size().String())
	}
	return ItemDTO{
		ID:        item.ID().Bytes(),
		OrderID:   orderID.Bytes(),
		ItemType:  item.Type().String(),
		ItemID:    item.CatalogID(),
		ItemName:  item.Name(),
		Size:      size,
		Qty:       item.Quantity(),
		UnitPrice: int64(item.UnitPrice()),
		CreatedAt: item.CreatedAt().UTC(),
	}
}

func updateFromDomain(orderID kernel.UUID, update order.Update) UpdateDTO {
	return UpdateDTO{
		ID:        update.ID().Bytes(),
		OrderID:   orderID.Bytes(),
		Status:    update.Status().String(),
		Message:   optional(update.Message()),
		CreatedAt: update.CreatedAt().UTC(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	deliveryType, err := order.ParseDeliveryType(dto.DeliveryType)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	updates := make([]order.Update, 0, len(dto.Updates))
	for _, updateDTO := range dto.Updates {
		update, updateErr := updateToDomain(updateDTO)
		if updateErr != nil {
			return nil, updateErr
		}
		updates = append(updates, update)
	}

	return order.RestoreOrder(
		id,
		customerID,
		status,
		deliveryType,
		deref(dto.Address),
		deref(dto.Notes),
		dto.CreatedAt,
		dto.UpdatedAt,
		items,
		updates,
	)
}

// itemToDomain rebuilds an order item from its row.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	itemType, err := order.ParseItemType(dto.ItemType)
	if err != nil {
		return order.Item{}, err
	}
	size := catalog.NoSize
	if dto.Size != nil {
		if size, err = catalog.ParseSize(*dto.Size); err != nil {
			return order.Item{}, err
		}
	}
	return order.RestoreItem(
		id,
		itemType,
		dto.ItemID,
		dto.ItemName,
		size,
		dto.Qty,
		kernel.Money(dto.UnitPrice),
		dto.CreatedAt,
	)
}

func updateToDomain(dto UpdateDTO) (order.Update, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Update{}, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.Update{}, err
	}
	return order.NewUpdate(id, status, deref(dto.Message), dto.CreatedAt)
}

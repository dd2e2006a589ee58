package orderrepo

import (
	"context"
	"errors"
	"time"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository on db, which is either the root
// connection or an open transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its items and status history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(ctx, id, false)
}

// GetForUpdate retrieves an order by ID and locks its row.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(ctx, id, true)
}

// GetByItemForUpdate locks and retrieves the order owning itemID.
func (r *GormOrderRepository) GetByItemForUpdate(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var item ItemDTO
	if err := r.db.WithContext(ctx).Select("order_id").First(&item, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order item", itemID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(item.OrderID[:])
	if err != nil {
		return nil, err
	}
	return r.load(ctx, orderID, true)
}

// AddItem inserts item and touches the order.
func (r *GormOrderRepository) AddItem(ctx context.Context, aggregate *order.Order, item order.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate.ID(), item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	return r.touch(ctx, aggregate, map[string]any{"updated_at": aggregate.UpdatedAt().UTC()})
}

// RemoveItem deletes the item row and touches the order.
func (r *GormOrderRepository) RemoveItem(ctx context.Context, aggregate *order.Order, itemID kernel.UUID) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND order_id = ?", itemID.Bytes(), aggregate.ID().Bytes()).
		Delete(&ItemDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order item", itemID.String())
	}
	return r.touch(ctx, aggregate, map[string]any{"updated_at": aggregate.UpdatedAt().UTC()})
}

// AppendUpdate inserts the history row and stores the new status.
func (r *GormOrderRepository) AppendUpdate(ctx context.Context, aggregate *order.Order, update order.Update) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := updateFromDomain(aggregate.ID(), update)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	return r.touch(ctx, aggregate, map[string]any{
		"status":     aggregate.Status().String(),
		"updated_at": aggregate.UpdatedAt().UTC(),
	})
}

// Delete removes an order. Items and updates are removed by the foreign key cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteDraftsUpdatedBefore removes abandoned drafts.
func (r *GormOrderRepository) DeleteDraftsUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", order.Draft.String(), cutoff.UTC()).
		Delete(&OrderDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormOrderRepository) load(ctx context.Context, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		Preload("Updates", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) touch(ctx context.Context, aggregate *order.Order, columns map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}

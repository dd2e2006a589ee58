package order

import (
	"time"

	"pizzabot/internal/core/domain/model/kernel"
)

// Update is one entry of the order's append-only status history.
type Update struct {
	id        kernel.UUID
	status    Status
	message   string
	createdAt time.Time
}

// NewUpdate records status with an optional human-readable message.
func NewUpdate(id kernel.UUID, status Status, message string, createdAt time.Time) (Update, error) {
	if err := id.Validate(); err != nil {
		return Update{}, err
	}
	if err := status.Validate(); err != nil {
		return Update{}, err
	}
	return Update{id: id, status: status, message: message, createdAt: createdAt}, nil
}

func (u Update) ID() kernel.UUID      { return u.id }
func (u Update) Status() Status       { return u.status }
func (u Update) Message() string      { return u.message }
func (u Update) CreatedAt() time.Time { return u.createdAt }

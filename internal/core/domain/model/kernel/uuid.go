package kernel

import (
	"pizzabot/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, order items, order updates and customers. The zero value
// is the nil UUID and never valid; build one with NewUUID or parse it with
// UUIDFromString (tool arguments, HTTP paths) or UUIDFromBytes (store rows).
type UUID struct {
	id uuid.UUID
}

func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString accepts anything uuid.Parse does, braced and urn forms included.
// Identifiers made up by the dialogue model fail here as ValueIsInvalid.
func UUIDFromString(s string) (UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", err)
	}
	return fromParsed(parsed)
}

func UUIDFromBytes(b []byte) (UUID, error) {
	parsed, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", err)
	}
	return fromParsed(parsed)
}

func fromParsed(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// MarshalText lets payloads embed UUID directly.
func (u UUID) MarshalText() ([]byte, error) {
	return u.id.MarshalText()
}

// Bytes exposes the wrapped value for persistence DTOs.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"pizzabot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessagesAndSentinels(t *testing.T) {
	dbDown := errors.New("database connection failed")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("order", "123"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: order 123",
		},
		{
			name:     "order not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("order", "123", dbDown),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: order 123 (cause: database connection failed)",
		},
		{
			name:     "numeric identifier",
			err:      errs.NewObjectNotFoundError("order item", 456),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: order item 456",
		},
		{
			name:     "invalid delivery type",
			err:      errs.NewValueIsInvalidError("delivery type"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: delivery type",
		},
		{
			name:     "invalid delivery type with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("delivery type", errors.New("must be delivery or pickup")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: delivery type (cause: must be delivery or pickup)",
		},
		{
			name:     "limit out of range",
			err:      errs.NewValueIsOutOfRangeError("limit", 900, 1, 500),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 900 is limit, min value is 1, max value is 500",
		},
		{
			name:     "limit out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("limit", -5, 1, 500, errors.New("negative")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -5 is limit, min value is 1, max value is 500 (cause: negative)",
		},
		{
			name:     "customer name required",
			err:      errs.NewValueIsRequiredError("customer name"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: customer name",
		},
		{
			name:     "customer name required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("customer name", errors.New("blank")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: customer name (cause: blank)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.sentinel)
		})
	}
}

func TestObjectNotFoundError_FieldsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading order: %w", errs.NewObjectNotFoundError("order", "1"))

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "order", notFound.ParamName)
	assert.Equal(t, "1", notFound.ID)
	assert.NoError(t, notFound.Cause)
}

func TestValuesAreFlattenedToOneLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("text", "hello\r\nworld\nagain", 0, 10)

	assert.Contains(t, err.Error(), "hello world again")
	assert.NotContains(t, err.Error(), "\n")
}

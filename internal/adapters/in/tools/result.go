package tools

import (
	"errors"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"
)

// Code classifies a failed tool call for the caller.
type Code string

const (
	CodeNotFound           Code = "not_found"
	CodeUnknownCatalogItem Code = "unknown_catalog_item"
	CodeInvalidQuantity    Code = "invalid_quantity"
	CodeEmptyOrder         Code = "empty_order"
	CodeInvalidTransition  Code = "invalid_transition"
	CodeOrderLocked        Code = "order_locked"
	CodeInvalidStatus      Code = "invalid_status"
	CodeInvalidArgument    Code = "invalid_argument"
	CodeUnknownTool        Code = "unknown_tool"
	CodeInternal           Code = "internal"
)

// Result is what every tool call returns. Data is set when OK is true, Error otherwise.
type Result struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func success(data any) Result {
	return Result{OK: true, Data: data}
}

func failure(code Code, message string) Result {
	return Result{Error: &Error{Code: code, Message: message}}
}

// CodeOf maps an error from the order engine to its tool error code. Domain kinds
// are checked before the generic ones because domain errors may also carry a
// generic cause.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, order.ErrOrderLocked):
		return CodeOrderLocked
	case errors.Is(err, order.ErrEmptyOrder):
		return CodeEmptyOrder
	case errors.Is(err, order.ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, order.ErrInvalidStatus):
		return CodeInvalidStatus
	case errors.Is(err, order.ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, catalog.ErrUnknownItem):
		return CodeUnknownCatalogItem
	case errors.Is(err, errs.ErrObjectNotFound):
		return CodeNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return CodeInvalidArgument
	}
	return CodeInternal
}

// errorResult hides the text of internal failures; everything else is safe to show
// to the model and the user.
func errorResult(err error) Result {
	code := CodeOf(err)
	if code == CodeInternal {
		return failure(code, "internal error")
	}
	return failure(code, err.Error())
}

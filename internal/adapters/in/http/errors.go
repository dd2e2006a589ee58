package http

import (
	"net/http"

	"pizzabot/internal/adapters/in/tools"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	codeChatUnavailable = "chat_unavailable"
	codeModelError      = "model_error"
)

// statusOf maps a tool error code to its HTTP status.
func statusOf(code tools.Code) int {
	switch code {
	case tools.CodeNotFound, tools.CodeUnknownTool:
		return http.StatusNotFound
	case tools.CodeOrderLocked, tools.CodeEmptyOrder, tools.CodeInvalidTransition:
		return http.StatusConflict
	case tools.CodeUnknownCatalogItem, tools.CodeInvalidQuantity, tools.CodeInvalidStatus:
		return http.StatusUnprocessableEntity
	case tools.CodeInvalidArgument:
		return http.StatusBadRequest
	case tools.CodeInternal:
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(c echo.Context, err error) error {
	code := tools.CodeOf(err)
	message := err.Error()
	if code == tools.CodeInternal {
		s.logger.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("request failed")
		message = "internal error"
	}
	return c.JSON(statusOf(code), ErrorResponse{Code: string(code), Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: string(tools.CodeInvalidArgument), Message: message})
}

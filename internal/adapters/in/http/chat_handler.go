package http

import (
	"errors"
	"net/http"

	"pizzabot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	OrderID   string `json:"order_id,omitempty"`
}

// Chat godoc
//
//	@Summary	Send one message to PizzaBot
//	@Tags		chat
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ChatRequest	true	"Message and optional session"
//	@Success	200		{object}	ChatResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/api/v1/chat [post]
func (s *Server) Chat(c echo.Context) error {
	if s.chat == nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    codeChatUnavailable,
			Message: "no dialogue model is configured",
		})
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	reply, err := s.chat.Reply(c.Request().Context(), req.SessionID, req.Message)
	if errors.Is(err, errs.ErrValueIsRequired) {
		return badRequest(c, err.Error())
	}
	if err != nil {
		s.logger.Error().Err(err).Str("session", req.SessionID).Msg("chat turn failed")
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    codeModelError,
			Message: "the assistant could not answer, please try again",
		})
	}

	return c.JSON(http.StatusOK, ChatResponse{
		SessionID: reply.SessionID,
		Reply:     reply.Text,
		OrderID:   reply.OrderID,
	})
}

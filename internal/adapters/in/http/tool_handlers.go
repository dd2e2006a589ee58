package http

import (
	"encoding/json"
	"io"
	"net/http"

	"pizzabot/internal/adapters/in/tools"

	"github.com/labstack/echo/v4"
)

// GetMenu godoc
//
//	@Summary	Menu with prices, extras and the delivery fee
//	@Tags		menu
//	@Produce	json
//	@Success	200	{object}	tools.MenuPayload
//	@Router		/api/v1/menu [get]
func (s *Server) GetMenu(c echo.Context) error {
	return c.JSON(http.StatusOK, tools.NewMenuPayload(s.handlers.GetMenu.Handle()))
}

// ListTools godoc
//
//	@Summary	Declarations of the tools the dialogue model may call
//	@Tags		tools
//	@Produce	json
//	@Success	200	{array}	tools.Declaration
//	@Router		/api/v1/tools [get]
func (s *Server) ListTools(c echo.Context) error {
	return c.JSON(http.StatusOK, s.registry.Declarations())
}

// InvokeTool godoc
//
//	@Summary	Call a tool with JSON arguments
//	@Tags		tools
//	@Accept		json
//	@Produce	json
//	@Param		name	path		string	true	"Tool name"
//	@Success	200		{object}	tools.Result
//	@Failure	400		{object}	tools.Result
//	@Failure	404		{object}	tools.Result
//	@Failure	409		{object}	tools.Result
//	@Failure	422		{object}	tools.Result
//	@Router		/api/v1/tools/{name} [post]
func (s *Server) InvokeTool(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return badRequest(c, "unreadable request body")
	}

	result := s.registry.Invoke(c.Request().Context(), c.Param("name"), json.RawMessage(body))
	if !result.OK {
		return c.JSON(statusOf(result.Error.Code), result)
	}
	return c.JSON(http.StatusOK, result)
}

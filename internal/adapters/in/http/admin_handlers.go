package http

import (
	"net/http"
	"time"

	"pizzabot/internal/adapters/in/tools"
	"pizzabot/internal/adapters/out/export"
	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/application/usecases/queries"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type OrderSummary struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Status       string    `json:"status"`
	DeliveryType string    `json:"delivery_type"`
	Address      string    `json:"address,omitempty"`
	ItemCount    int       `json:"item_count"`
	Subtotal     int64     `json:"subtotal"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type OrderList struct {
	Orders []OrderSummary `json:"orders"`
}

type StatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListOrders godoc
//
//	@Summary	Most recent orders, newest first
//	@Tags		admin
//	@Produce	json
//	@Param		status	query		string	false	"Only orders in this status"
//	@Param		limit	query		int		false	"Maximum rows (1-500, default 50)"
//	@Success	200		{object}	OrderList
//	@Failure	400		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/api/v1/admin/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.listOrders(c)
	if err != nil {
		return s.fail(c, err)
	}

	response := OrderList{Orders: make([]OrderSummary, 0, len(orders))}
	for _, o := range orders {
		response.Orders = append(response.Orders, OrderSummary{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			Status:       o.Status.String(),
			DeliveryType: o.DeliveryType.String(),
			Address:      o.Address,
			ItemCount:    o.ItemCount,
			Subtotal:     int64(o.Subtotal),
			CreatedAt:    o.CreatedAt,
			UpdatedAt:    o.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, response)
}

// ExportOrders godoc
//
//	@Summary	Order list as an Excel workbook
//	@Tags		admin
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		status	query	string	false	"Only orders in this status"
//	@Param		limit	query	int		false	"Maximum rows (1-500, default 50)"
//	@Success	200
//	@Router		/api/v1/admin/orders/export [get]
func (s *Server) ExportOrders(c echo.Context) error {
	orders, err := s.listOrders(c)
	if err != nil {
		return s.fail(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, export.ContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteOrders(c.Response(), orders)
}

func (s *Server) listOrders(c echo.Context) ([]queries.OrderSummary, error) {
	var status string
	var limit int
	if err := echo.QueryParamsBinder(c).String("status", &status).Int("limit", &limit).BindError(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("limit", err)
	}

	query, err := queries.NewListOrdersQuery(status, limit)
	if err != nil {
		return nil, err
	}
	response, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return nil, err
	}
	return response.Orders, nil
}

// GetOrder godoc
//
//	@Summary	Order with items, status history and totals
//	@Tags		admin
//	@Produce	json
//	@Param		orderId	path		string	true	"Order id"	Format(uuid)
//	@Success	200		{object}	tools.OrderPayload
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/v1/admin/orders/{orderId} [get]
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return s.writeOrder(c, orderID)
}

// UpdateOrderStatus godoc
//
//	@Summary	Move an order along its status flow
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string			true	"Order id"	Format(uuid)
//	@Param		request	body		StatusRequest	true	"New status and optional message"
//	@Success	200		{object}	tools.OrderPayload
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/api/v1/admin/orders/{orderId}/status [post]
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req StatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status, req.Message)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.UpdateStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.writeOrder(c, orderID)
}

// DeleteOrder godoc
//
//	@Summary	Delete an order with its items and history
//	@Tags		admin
//	@Param		orderId	path	string	true	"Order id"	Format(uuid)
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/admin/orders/{orderId} [delete]
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	deleted, err := s.deleteOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    string(tools.CodeNotFound),
			Message: "order " + orderID.String() + " not found",
		})
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) writeOrder(c echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	details, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, tools.NewOrderPayload(details))
}

func bindOrderID(c echo.Context) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", c.Param("orderId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(id[:])
}

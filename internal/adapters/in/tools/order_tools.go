package tools

import (
	"context"
	"fmt"
	"strings"

	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"

	"github.com/getkin/kin-openapi/openapi3"
)

func idSchema(description string) *openapi3.Schema {
	s := openapi3.NewStringSchema().WithMinLength(1)
	s.Description = description
	return s
}

func textSchema(description string) *openapi3.Schema {
	s := openapi3.NewStringSchema()
	s.Description = description
	return s
}

func qtySchema() *openapi3.Schema {
	s := openapi3.NewIntegerSchema().WithDefault(1).WithMin(1).WithMax(order.MaxQuantity)
	s.Description = fmt.Sprintf("How many to add, 1 to %d. Defaults to 1.", order.MaxQuantity)
	return s
}

type startOrderArgs struct {
	DeliveryType string `json:"delivery_type"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
}

func (h Handlers) startOrderTool() Tool {
	deliveryType := openapi3.NewStringSchema().WithEnum(order.Delivery.String(), order.Pickup.String())
	deliveryType.Description = "delivery or pickup"

	params := openapi3.NewObjectSchema().
		WithProperty("delivery_type", deliveryType).
		WithProperty("customer_name", textSchema("Customer display name, if known.")).
		WithProperty("phone", textSchema("Customer phone number.")).
		WithProperty("address", textSchema("Delivery address.")).
		WithProperty("notes", textSchema("Free-form notes for the kitchen or rider.")).
		WithRequired([]string{"delivery_type"})

	return newTool("start_order", "Create a new draft order and return its order_id.", params,
		func(ctx context.Context, args startOrderArgs) (any, error) {
			orderID := kernel.NewUUID()
			cmd, err := commands.NewStartOrderCommand(
				orderID,
				args.DeliveryType,
				args.CustomerName,
				args.Phone,
				args.Address,
				args.Notes,
			)
			if err != nil {
				return nil, err
			}
			if err = h.StartOrder.Handle(ctx, cmd); err != nil {
				return nil, err
			}
			return StartOrderPayload{OrderID: orderID.String()}, nil
		})
}

type addPizzaArgs struct {
	OrderID string `json:"order_id"`
	PizzaID string `json:"pizza_id"`
	Size    string `json:"size"`
	Qty     *int   `json:"qty"`
}

func (h Handlers) addPizzaTool() Tool {
	size := openapi3.NewStringSchema()
	size.Description = "small, medium or large"

	params := openapi3.NewObjectSchema().
		WithProperty("order_id", idSchema("Order id returned by start_order.")).
		WithProperty("pizza_id", idSchema("Pizza id from the menu.")).
		WithProperty("size", size).
		WithProperty("qty", qtySchema()).
		WithRequired([]string{"order_id", "pizza_id", "size"})

	return newTool("add_pizza", "Add a pizza to a draft order. Returns the updated order.", params,
		func(ctx context.Context, args addPizzaArgs) (any, error) {
			orderID, err := kernel.UUIDFromString(args.OrderID)
			if err != nil {
				return nil, err
			}
			cmd, err := commands.NewAddPizzaCommand(orderID, kernel.NewUUID(), args.PizzaID, args.Size, quantity(args.Qty))
			if err != nil {
				return nil, err
			}
			if err = h.AddPizza.Handle(ctx, cmd); err != nil {
				return nil, err
			}
			return h.orderPayload(ctx, orderID)
		})
}

type addExtraArgs struct {
	OrderID string `json:"order_id"`
	ExtraID string `json:"extra_id"`
	Qty     *int   `json:"qty"`
}

func (h Handlers) addExtraTool() Tool {
	params := openapi3.NewObjectSchema().
		WithProperty("order_id", idSchema("Order id returned by start_order.")).
		WithProperty("extra_id", idSchema("Extra id from the menu.")).
		WithProperty("qty", qtySchema()).
		WithRequired([]string{"order_id", "extra_id"})

	return newTool("add_extra", "Add an extra to a draft order. Returns the updated order.", params,
		func(ctx context.Context, args addExtraArgs) (any, error) {
			orderID, err := kernel.UUIDFromString(args.OrderID)
			if err != nil {
				return nil, err
			}
			cmd, err := commands.NewAddExtraCommand(orderID, kernel.NewUUID(), args.ExtraID, quantity(args.Qty))
			if err != nil {
				return nil, err
			}
			if err = h.AddExtra.Handle(ctx, cmd); err != nil {
				return nil, err
			}
			return h.orderPayload(ctx, orderID)
		})
}

type removeItemArgs struct {
	OrderItemID string `json:"order_item_id"`
}

func (h Handlers) removeItemTool() Tool {
	params := openapi3.NewObjectSchema().
		WithProperty("order_item_id", idSchema("Item id as listed in the order's items.")).
		WithRequired([]string{"order_item_id"})

	return newTool("remove_item", "Remove an item from a draft order by its order_item_id.", params,
		func(ctx context.Context, args removeItemArgs) (any, error) {
			itemID, err := kernel.UUIDFromString(args.OrderItemID)
			if err != nil {
				return nil, err
			}
			cmd, err := commands.NewRemoveItemCommand(itemID)
			if err != nil {
				return nil, err
			}
			removed, err := h.RemoveItem.Handle(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return RemoveItemPayload{OK: removed}, nil
		})
}

type orderIDArgs struct {
	OrderID string `json:"order_id"`
}

func orderIDParams() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("order_id", idSchema("Order id returned by start_order.")).
		WithRequired([]string{"order_id"})
}

func (h Handlers) checkoutTool() Tool {
	return newTool("checkout", "Finalize a draft order: set it to placed and return the totals.", orderIDParams(),
		func(ctx context.Context, args orderIDArgs) (any, error) {
			orderID, err := kernel.UUIDFromString(args.OrderID)
			if err != nil {
				return nil, err
			}
			cmd, err := commands.NewCheckoutCommand(orderID)
			if err != nil {
				return nil, err
			}
			totals, err := h.Checkout.Handle(ctx, cmd)
			if err != nil {
				return nil, err
			}
			payload, err := h.orderPayload(ctx, orderID)
			if err != nil {
				return nil, err
			}
			return CheckoutPayload{Order: payload, Totals: NewTotalsPayload(totals)}, nil
		})
}

func (h Handlers) getOrderStatusTool() Tool {
	return newTool("get_order_status", "Get an order with its items, status history and totals.", orderIDParams(),
		func(ctx context.Context, args orderIDArgs) (any, error) {
			orderID, err := kernel.UUIDFromString(args.OrderID)
			if err != nil {
				return nil, err
			}
			return h.orderPayload(ctx, orderID)
		})
}

type adminUpdateStatusArgs struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h Handlers) adminUpdateStatusTool() Tool {
	statuses := make([]string, 0, len(order.Statuses()))
	for _, s := range order.Statuses() {
		statuses = append(statuses, s.String())
	}
	status := openapi3.NewStringSchema()
	status.Description = "New status, one of " + strings.Join(statuses, ", ")

	params := openapi3.NewObjectSchema().
		WithProperty("order_id", idSchema("Order id.")).
		WithProperty("status", status).
		WithProperty("message", textSchema("Note stored with the status change.")).
		WithRequired([]string{"order_id", "status"})

	return newTool("admin_update_status", "Admin tool: move an order to a new status.", params,
		func(ctx context.Context, args adminUpdateStatusArgs) (any, error) {
			orderID, err := kernel.UUIDFromString(args.OrderID)
			if err != nil {
				return nil, err
			}
			cmd, err := commands.NewUpdateOrderStatusCommand(orderID, args.Status, args.Message)
			if err != nil {
				return nil, err
			}
			if err = h.UpdateStatus.Handle(ctx, cmd); err != nil {
				return nil, err
			}
			return h.orderPayload(ctx, orderID)
		})
}

package commands_test

import (
	"errors"
	"testing"
	"time"

	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderFactory(uow *MockUoW) *MockOrderUoWFactory {
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func TestStartOrderCommandHandler_Handle_Anonymous(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewStartOrderCommand(id, "pickup", "", "", "", "")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(id) && o.CustomerID() == nil && o.Status() == order.Draft
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "CustomerRepository")
	factory.AssertExpectations(t)
}

func TestStartOrderCommandHandler_Handle_CreatesCustomerInSameTransaction(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartOrderCommand(kernel.NewUUID(), "delivery", "Ayesha", "0300", "12 Mall Road", "")
	require.NoError(t, err)

	var created *customer.Customer
	customers := new(MockCustomerRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*customer.Customer) }).
			Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.CustomerID() != nil && o.CustomerID().IsEqual(created.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	assert.Equal(t, "Ayesha", created.Name())
	customers.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartOrderCommandHandler_Handle_CustomerErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartOrderCommand(kernel.NewUUID(), "delivery", "Ayesha", "", "", "")
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Add", ctx, mock.Anything).Return(errors.New("disk full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))

	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestStartOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartOrderCommand(kernel.NewUUID(), "delivery", "", "", "", "")
	require.NoError(t, err)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestAddPizzaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	menu := testMenu(t)
	o := draftOrder(t)
	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddPizzaCommand(o.ID(), itemID, "Margherita", "large", 2)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("AddItem", ctx, o, mock.MatchedBy(func(item order.Item) bool {
			return item.ID().IsEqual(itemID) && item.UnitPrice() == 1399 && item.Quantity() == 2
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := orderFactory(uow)

	h := commands.NewAddPizzaCommandHandler(factory, menu)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, o.Items(), 1)
	totals, err := o.Totals(menu)
	require.NoError(t, err)
	assert.Equal(t, kernel.Money(2798), totals.Subtotal)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddPizzaCommandHandler_Handle_UnknownPizzaNeverOpensTransaction(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddPizzaCommand(kernel.NewUUID(), kernel.NewUUID(), "hawaiian", "small", 1)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewAddPizzaCommandHandler(factory, testMenu(t))

	require.ErrorIs(t, h.Handle(ctx, cmd), catalog.ErrUnknownItem)
	factory.AssertNotCalled(t, "Create")
}

func TestAddPizzaCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAddPizzaCommand(orderID, kernel.NewUUID(), "margherita", "small", 1)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddPizzaCommandHandler(orderFactory(uow), testMenu(t))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestAddExtraCommandHandler_Handle_LockedOrder(t *testing.T) {
	ctx := t.Context()
	menu := testMenu(t)
	o := placedOrder(t, menu)
	cmd, err := commands.NewAddExtraCommand(o.ID(), kernel.NewUUID(), "cheese", 1)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddExtraCommandHandler(orderFactory(uow), menu)

	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrOrderLocked)
	assert.Len(t, o.Items(), 1)
	orders.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddExtraCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	menu := testMenu(t)
	o := draftOrder(t)
	cmd, err := commands.NewAddExtraCommand(o.ID(), kernel.NewUUID(), "CHEESE", 1)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("AddItem", ctx, o, mock.AnythingOfType("order.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddExtraCommandHandler(orderFactory(uow), menu)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, o.Items(), 1)
	assert.Equal(t, "cheese", o.Items()[0].CatalogID())
	assert.Equal(t, kernel.Money(150), o.Items()[0].UnitPrice())
	uow.AssertExpectations(t)
}

func TestAddExtraCommandHandler_Handle_StampsItemAfterTakingTheLock(t *testing.T) {
	ctx := t.Context()
	o := draftOrder(t)
	cmd, err := commands.NewAddExtraCommand(o.ID(), kernel.NewUUID(), "cheese", 2)
	require.NoError(t, err)

	var lockedAt time.Time
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID()).Run(func(mock.Arguments) {
			time.Sleep(5 * time.Millisecond)
			lockedAt = time.Now()
		}).Return(o, nil).Once(),
		orders.On("AddItem", ctx, o, mock.AnythingOfType("order.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddExtraCommandHandler(orderFactory(uow), testMenu(t))
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, o.Items(), 1)
	assert.False(t, o.Items()[0].CreatedAt().Before(lockedAt), "item created before the lock was taken")
	assert.False(t, o.UpdatedAt().Before(lockedAt), "updated_at older than the lock")
	uow.AssertExpectations(t)
}

func TestRemoveItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remove item from draft", func(t *testing.T) {
		ctx := t.Context()
		o, item := draftWithPizza(t, testMenu(t))
		cmd, err := commands.NewRemoveItemCommand(item.ID())
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetByItemForUpdate", ctx, item.ID()).Return(o, nil).Once(),
			orders.On("RemoveItem", ctx, o, item.ID()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		removed, err := commands.NewRemoveItemCommandHandler(orderFactory(uow)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Empty(t, o.Items())
		uow.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	t.Run("unknown item reports false without error", func(t *testing.T) {
		ctx := t.Context()
		itemID := kernel.NewUUID()
		cmd, err := commands.NewRemoveItemCommand(itemID)
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetByItemForUpdate", ctx, itemID).
				Return(nil, errs.NewObjectNotFoundError("order item", itemID)).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		removed, err := commands.NewRemoveItemCommandHandler(orderFactory(uow)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, removed)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("placed order is locked", func(t *testing.T) {
		ctx := t.Context()
		menu := testMenu(t)
		o := placedOrder(t, menu)
		itemID := o.Items()[0].ID()
		cmd, err := commands.NewRemoveItemCommand(itemID)
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetByItemForUpdate", ctx, itemID).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		removed, err := commands.NewRemoveItemCommandHandler(orderFactory(uow)).Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrOrderLocked)
		assert.False(t, removed)
		assert.Len(t, o.Items(), 1)
	})
}

func TestCheckoutCommandHandler_Handle(t *testing.T) {
	t.Run("should place order and return totals", func(t *testing.T) {
		ctx := t.Context()
		menu := testMenu(t)
		o, _ := draftWithPizza(t, menu)
		cmd, err := commands.NewCheckoutCommand(o.ID())
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			orders.On("AppendUpdate", ctx, o, mock.MatchedBy(func(u order.Update) bool {
				return u.Status() == order.Placed && u.Message() == order.MessagePlaced
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		totals, err := commands.NewCheckoutCommandHandler(orderFactory(uow), menu).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Totals{Subtotal: 2798, DeliveryFee: 200, Tax: 0, Total: 2998}, totals)
		assert.Equal(t, order.Placed, o.Status())
		uow.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	t.Run("empty order fails without writing", func(t *testing.T) {
		ctx := t.Context()
		o := draftOrder(t)
		cmd, err := commands.NewCheckoutCommand(o.ID())
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		_, err = commands.NewCheckoutCommandHandler(orderFactory(uow), testMenu(t)).Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrEmptyOrder)
		assert.Equal(t, order.Draft, o.Status())
		orders.AssertNotCalled(t, "AppendUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("commit error is returned", func(t *testing.T) {
		ctx := t.Context()
		menu := testMenu(t)
		o, _ := draftWithPizza(t, menu)
		cmd, err := commands.NewCheckoutCommand(o.ID())
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			orders.On("AppendUpdate", ctx, o, mock.Anything).Return(nil).Once(),
			uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		_, err = commands.NewCheckoutCommandHandler(orderFactory(uow), menu).Handle(ctx, cmd)

		require.Error(t, err)
		uow.AssertExpectations(t)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should append one update with the message", func(t *testing.T) {
		ctx := t.Context()
		o := placedOrder(t, testMenu(t))
		cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "baking", "in the oven")
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			orders.On("AppendUpdate", ctx, o, mock.MatchedBy(func(u order.Update) bool {
				return u.Status() == order.Baking && u.Message() == "in the oven"
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewUpdateOrderStatusCommandHandler(orderFactory(uow), order.ForwardOnly)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, order.Baking, o.Status())
		assert.Len(t, o.Updates(), 3)
		orders.AssertExpectations(t)
	})

	t.Run("forward policy rejects moving back", func(t *testing.T) {
		ctx := t.Context()
		o := placedOrder(t, testMenu(t))
		_, err := o.AdvanceStatus(order.Baking, "", order.ForwardOnly, time.Now())
		require.NoError(t, err)
		cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "preparing", "")
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewUpdateOrderStatusCommandHandler(orderFactory(uow), order.ForwardOnly)

		require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrInvalidTransition)
		assert.Equal(t, order.Baking, o.Status())
	})

	t.Run("permissive policy allows moving back", func(t *testing.T) {
		ctx := t.Context()
		o := placedOrder(t, testMenu(t))
		_, err := o.AdvanceStatus(order.Baking, "", order.ForwardOnly, time.Now())
		require.NoError(t, err)
		cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "preparing", "")
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			orders.On("AppendUpdate", ctx, o, mock.Anything).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewUpdateOrderStatusCommandHandler(orderFactory(uow), order.Permissive)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(id)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Delete", ctx, id).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	deleted, err := commands.NewDeleteOrderCommandHandler(orderFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, deleted)
	uow.AssertExpectations(t)
}

func TestDeleteStaleDraftsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteStaleDraftsCommand(time.Hour)
	require.NoError(t, err)

	expectedCutoff := time.Now().UTC().Add(-time.Hour)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("DeleteDraftsUpdatedBefore", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			return cutoff.Sub(expectedCutoff).Abs() < time.Minute
		})).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	n, err := commands.NewDeleteStaleDraftsCommandHandler(orderFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	orders.AssertExpectations(t)
}

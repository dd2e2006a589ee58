package commands_test

import (
	"context"
	"testing"
	"time"

	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByItemForUpdate(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) AddItem(ctx context.Context, o *order.Order, item order.Item) error {
	args := m.Called(ctx, o, item)
	return args.Error(0)
}

func (m *MockOrderRepository) RemoveItem(ctx context.Context, o *order.Order, itemID kernel.UUID) error {
	args := m.Called(ctx, o, itemID)
	return args.Error(0)
}

func (m *MockOrderRepository) AppendUpdate(ctx context.Context, o *order.Order, update order.Update) error {
	args := m.Called(ctx, o, update)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) DeleteDraftsUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

// MockUoW satisfies both commands.UoW and commands.OrderUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testMenu(t *testing.T) *catalog.Catalog {
	t.Helper()
	menu, err := catalog.New("PKR",
		[]catalog.Pizza{{
			ID:     "margherita",
			Name:   "Margherita",
			Prices: map[catalog.Size]kernel.Money{catalog.Small: 899, catalog.Medium: 1199, catalog.Large: 1399},
		}},
		[]catalog.Extra{{ID: "cheese", Name: "Extra cheese", Price: 150}},
		200, 0,
	)
	require.NoError(t, err)
	return menu
}

func draftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), nil, order.Delivery, "12 Mall Road", "", time.Now())
	require.NoError(t, err)
	return o
}

func draftWithPizza(t *testing.T, menu *catalog.Catalog) (*order.Order, order.Item) {
	t.Helper()
	o := draftOrder(t)
	item, err := order.NewPizzaItem(kernel.NewUUID(), menu, "margherita", catalog.Large, 2, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item, time.Now()))
	return o, item
}

func placedOrder(t *testing.T, menu *catalog.Catalog) *order.Order {
	t.Helper()
	o, _ := draftWithPizza(t, menu)
	_, _, err := o.Checkout(menu, time.Now())
	require.NoError(t, err)
	return o
}

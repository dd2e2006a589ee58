package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzabot/internal/adapters/out/persistence/customerrepo"
	"pizzabot/internal/adapters/out/persistence/orderrepo"
	"pizzabot/internal/adapters/out/persistence/persistencetest"
	"pizzabot/internal/core/application/usecases/queries"
	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type QueriesTestSuite struct {
	suite.Suite
	db     *gorm.DB
	orders *orderrepo.GormOrderRepository
	menu   *catalog.Catalog
	now    time.Time
}

func (suite *QueriesTestSuite) SetupTest() {
	suite.db = persistencetest.NewSQLiteDB(suite.T())
	suite.orders = orderrepo.NewGormOrderRepository(suite.db)
	suite.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	menu, err := catalog.New("PKR",
		[]catalog.Pizza{{
			ID:          "margherita",
			Name:        "Margherita",
			Description: "Tomato, mozzarella, basil",
			Prices: map[catalog.Size]kernel.Money{
				catalog.Small:  899,
				catalog.Medium: 1199,
				catalog.Large:  1399,
			},
		}},
		[]catalog.Extra{{ID: "cheese", Name: "Extra cheese", Price: 150}},
		200, 0,
	)
	suite.Require().NoError(err)
	suite.menu = menu
}

func (suite *QueriesTestSuite) newOrder(customerID *kernel.UUID, deliveryType order.DeliveryType, at time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customerID, deliveryType, "12 Mall Road", "ring twice", at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(suite.T().Context(), o))
	return o
}

func (suite *QueriesTestSuite) addItem(o *order.Order, item order.Item) {
	suite.Require().NoError(o.AddItem(item, item.CreatedAt()))
	suite.Require().NoError(suite.orders.AddItem(suite.T().Context(), o, item))
}

func (suite *QueriesTestSuite) pizza(size catalog.Size, qty int, at time.Time) order.Item {
	item, err := order.NewPizzaItem(kernel.NewUUID(), suite.menu, "margherita", size, qty, at)
	suite.Require().NoError(err)
	return item
}

func (suite *QueriesTestSuite) extra(qty int, at time.Time) order.Item {
	item, err := order.NewExtraItem(kernel.NewUUID(), suite.menu, "cheese", qty, at)
	suite.Require().NoError(err)
	return item
}

func (suite *QueriesTestSuite) getOrder(id kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)
	return queries.NewGetOrderQueryHandler(suite.db, suite.menu).Handle(suite.T().Context(), query)
}

func (suite *QueriesTestSuite) TestGetOrder_ReturnsItemsUpdatesAndTotals() {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ayesha", "0300-1234567", suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(customerrepo.NewGormCustomerRepository(suite.db).Add(suite.T().Context(), c))

	customerID := c.ID()
	o := suite.newOrder(&customerID, order.Delivery, suite.now)
	first := suite.pizza(catalog.Large, 2, suite.now.Add(time.Minute))
	second := suite.extra(1, suite.now.Add(2*time.Minute))
	suite.addItem(o, first)
	suite.addItem(o, second)

	_, update, err := o.Checkout(suite.menu, suite.now.Add(3*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.AppendUpdate(suite.T().Context(), o, update))

	details, err := suite.getOrder(o.ID())
	suite.Require().NoError(err)

	suite.True(details.Order.ID.IsEqual(o.ID()))
	suite.Require().NotNil(details.Order.CustomerID)
	suite.True(details.Order.CustomerID.IsEqual(c.ID()))
	suite.Equal("Ayesha", details.Order.CustomerName)
	suite.Equal("0300-1234567", details.Order.CustomerPhone)
	suite.Equal(order.Placed, details.Order.Status)
	suite.Equal(order.Delivery, details.Order.DeliveryType)
	suite.Equal("12 Mall Road", details.Order.Address)
	suite.Equal("ring twice", details.Order.Notes)

	suite.Require().Len(details.Items, 2)
	suite.True(details.Items[0].ID.IsEqual(first.ID()))
	suite.Equal(order.PizzaItem, details.Items[0].ItemType)
	suite.Equal(catalog.Large, details.Items[0].Size)
	suite.Equal(kernel.Money(1399), details.Items[0].UnitPrice)
	suite.Equal(kernel.Money(2798), details.Items[0].LineTotal)
	suite.True(details.Items[1].ID.IsEqual(second.ID()))
	suite.Equal(order.ExtraItem, details.Items[1].ItemType)
	suite.Equal(catalog.NoSize, details.Items[1].Size)

	suite.Require().Len(details.Updates, 2)
	suite.Equal(order.Draft, details.Updates[0].Status)
	suite.Equal(order.MessageCreated, details.Updates[0].Message)
	suite.Equal(order.Placed, details.Updates[1].Status)
	suite.Equal(order.MessagePlaced, details.Updates[1].Message)

	suite.Equal(order.Totals{Subtotal: 2948, DeliveryFee: 200, Tax: 0, Total: 3148}, details.Totals)
}

func (suite *QueriesTestSuite) TestGetOrder_AnonymousPickupOrder() {
	o := suite.newOrder(nil, order.Pickup, suite.now)

	details, err := suite.getOrder(o.ID())
	suite.Require().NoError(err)

	suite.Nil(details.Order.CustomerID)
	suite.Empty(details.Order.CustomerName)
	suite.Empty(details.Items)
	suite.Equal(order.Totals{}, details.Totals)
}

func (suite *QueriesTestSuite) TestGetOrder_UnknownOrder() {
	_, err := suite.getOrder(kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestGetOrder_RejectsZeroQuery() {
	_, err := queries.NewGetOrderQueryHandler(suite.db, suite.menu).Handle(suite.T().Context(), queries.GetOrderQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (suite *QueriesTestSuite) listOrders(status string, limit int) []queries.OrderSummary {
	query, err := queries.NewListOrdersQuery(status, limit)
	suite.Require().NoError(err)
	response, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	return response.Orders
}

func (suite *QueriesTestSuite) TestListOrders_NewestFirstWithAggregates() {
	older := suite.newOrder(nil, order.Delivery, suite.now)
	suite.addItem(older, suite.pizza(catalog.Small, 3, suite.now.Add(time.Second)))
	suite.addItem(older, suite.extra(2, suite.now.Add(2*time.Second)))
	newer := suite.newOrder(nil, order.Pickup, suite.now.Add(time.Hour))

	summaries := suite.listOrders("", 0)

	suite.Require().Len(summaries, 2)
	suite.True(summaries[0].ID.IsEqual(newer.ID()))
	suite.Equal(0, summaries[0].ItemCount)
	suite.Equal(kernel.Money(0), summaries[0].Subtotal)
	suite.Equal(order.Pickup, summaries[0].DeliveryType)

	suite.True(summaries[1].ID.IsEqual(older.ID()))
	suite.Equal(2, summaries[1].ItemCount)
	suite.Equal(kernel.Money(3*899+2*150), summaries[1].Subtotal)
	suite.Equal(order.Draft, summaries[1].Status)
}

func (suite *QueriesTestSuite) TestListOrders_FiltersByStatusAndLimits() {
	placed := suite.newOrder(nil, order.Delivery, suite.now)
	suite.addItem(placed, suite.extra(1, suite.now))
	_, update, err := placed.Checkout(suite.menu, suite.now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.AppendUpdate(suite.T().Context(), placed, update))

	suite.newOrder(nil, order.Delivery, suite.now.Add(time.Hour))
	suite.newOrder(nil, order.Delivery, suite.now.Add(2*time.Hour))

	onlyPlaced := suite.listOrders("Placed", 0)
	suite.Require().Len(onlyPlaced, 1)
	suite.True(onlyPlaced[0].ID.IsEqual(placed.ID()))

	suite.Len(suite.listOrders("draft", 0), 2)
	suite.Len(suite.listOrders("", 1), 1)
	suite.Empty(suite.listOrders("delivered", 0))
}

func (suite *QueriesTestSuite) TestGetOrder_ReadsOneSnapshotWhileOrderIsDeleted() {
	o := suite.newOrder(nil, order.Delivery, suite.now)
	suite.addItem(o, suite.pizza(catalog.Large, 2, suite.now.Add(time.Minute)))
	suite.addItem(o, suite.extra(1, suite.now.Add(2*time.Minute)))

	deleted := make(chan error, 1)
	go func() {
		time.Sleep(5 * time.Millisecond)
		_, err := orderrepo.NewGormOrderRepository(suite.db).Delete(context.Background(), o.ID())
		deleted <- err
	}()

	for range 50 {
		details, err := suite.getOrder(o.ID())
		if err != nil {
			suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
			continue
		}
		suite.Len(details.Items, 2)
		suite.Len(details.Updates, 1)
		suite.Equal(kernel.Money(2948), details.Totals.Subtotal)
	}

	suite.Require().NoError(<-deleted)
	_, err := suite.getOrder(o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

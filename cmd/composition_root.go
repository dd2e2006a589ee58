package cmd

import (
	"context"
	"fmt"

	api "pizzabot/internal/adapters/in/http"
	"pizzabot/internal/adapters/in/tools"
	"pizzabot/internal/adapters/out/catalogfile"
	"pizzabot/internal/adapters/out/llm"
	"pizzabot/internal/adapters/out/persistence"
	"pizzabot/internal/adapters/out/sessions"
	"pizzabot/internal/agent"
	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/application/usecases/queries"
	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/jobs"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	menu       *catalog.Catalog
	policy     order.TransitionPolicy
	uowFactory *persistence.GormUnitOfWorkFactory
	logger     zerolog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, menu *catalog.Catalog, logger zerolog.Logger) (CompositionRoot, error) {
	policy, err := order.ParseTransitionPolicy(cfg.AdminTransitions)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		menu:       menu,
		policy:     policy,
		uowFactory: persistence.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}, nil
}

// OpenCompositionRoot loads the menu, opens and migrates the store and builds the
// root on top. The returned close function releases the store.
func OpenCompositionRoot(cfg Config, logger zerolog.Logger) (CompositionRoot, func(), error) {
	menu, err := catalogfile.Load(cfg.MenuPath)
	if err != nil {
		return CompositionRoot{}, nil, fmt.Errorf("failed to load menu: %w", err)
	}

	gormDB, err := persistence.Open(cfg.Store(), logger.With().Str("component", "store").Logger())
	if err != nil {
		return CompositionRoot{}, nil, err
	}
	closeDB := func() {
		if closeErr := persistence.Close(gormDB); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("failed to close store")
		}
	}

	if err = persistence.Migrate(gormDB); err != nil {
		closeDB()
		return CompositionRoot{}, nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	root, err := NewCompositionRoot(cfg, gormDB, menu, logger)
	if err != nil {
		closeDB()
		return CompositionRoot{}, nil, err
	}
	return root, closeDB, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddPizzaCommandHandler() commands.AddPizzaCommandHandler {
	return commands.NewAddPizzaCommandHandler(c.orderUoWFactory(), c.menu)
}

func (c *CompositionRoot) CreateAddExtraCommandHandler() commands.AddExtraCommandHandler {
	return commands.NewAddExtraCommandHandler(c.orderUoWFactory(), c.menu)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.orderUoWFactory(), c.menu)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteStaleDraftsCommandHandler() commands.DeleteStaleDraftsCommandHandler {
	return commands.NewDeleteStaleDraftsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menu)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.menu)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateToolHandlers() tools.Handlers {
	return tools.Handlers{
		GetMenu:      c.CreateGetMenuQueryHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		StartOrder:   c.CreateStartOrderCommandHandler(),
		AddPizza:     c.CreateAddPizzaCommandHandler(),
		AddExtra:     c.CreateAddExtraCommandHandler(),
		RemoveItem:   c.CreateRemoveItemCommandHandler(),
		Checkout:     c.CreateCheckoutCommandHandler(),
		UpdateStatus: c.CreateUpdateOrderStatusCommandHandler(),
	}
}

func (c *CompositionRoot) CreateToolRegistry() *tools.Registry {
	return tools.NewRegistry(c.CreateToolHandlers(), c.logger.With().Str("component", "tools").Logger())
}

// CreateSessionStore returns a redis store when REDIS_ADDR is set and an in-memory
// store otherwise. The close function releases the redis client.
func (c *CompositionRoot) CreateSessionStore(ctx context.Context) (agent.SessionStore, func(), error) {
	if c.cfg.RedisAddr == "" {
		return sessions.NewMemoryStore(), func() {}, nil
	}

	client, err := sessions.NewRedisClient(ctx, c.cfg.RedisAddr, c.cfg.RedisPassword, c.cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	store, err := sessions.NewRedisStore(client, c.cfg.SessionTTL)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return store, func() { _ = client.Close() }, nil
}

// CreateAgent fails when no API key is configured.
func (c *CompositionRoot) CreateAgent(ctx context.Context) (*agent.Agent, func(), error) {
	model, err := llm.NewClient(llm.Config{
		APIKey:  c.cfg.LLMAPIKey,
		Model:   c.cfg.LLMModel,
		BaseURL: c.cfg.LLMBaseURL,
	})
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := c.CreateSessionStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	a, err := agent.New(model, c.CreateToolRegistry(), store, c.cfg.LLMMaxSteps,
		c.logger.With().Str("component", "agent").Logger())
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return a, closeStore, nil
}

// CreateHTTPServer serves chat through chat; a nil chat answers chat requests with
// 503.
func (c *CompositionRoot) CreateHTTPServer(chat api.Chatter) *api.Server {
	return api.NewServer(
		c.CreateToolHandlers(),
		c.CreateToolRegistry(),
		c.CreateListOrdersQueryHandler(),
		c.CreateDeleteOrderCommandHandler(),
		chat,
		c.logger.With().Str("component", "http").Logger(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDeleteStaleDraftsCommandHandler(),
		c.cfg.SweepSchedule,
		c.cfg.DraftTTL,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

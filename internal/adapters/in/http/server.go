package http

import (
	"context"
	"net/http"

	"pizzabot/internal/adapters/in/http/docs"
	"pizzabot/internal/adapters/in/tools"
	"pizzabot/internal/agent"
	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Chatter answers one chat turn.
type Chatter interface {
	Reply(ctx context.Context, sessionID string, text string) (agent.Reply, error)
}

// Server serves the tools, the chat and the admin order API over HTTP.
type Server struct {
	handlers tools.Handlers
	registry *tools.Registry

	listOrdersHandler  queries.ListOrdersQueryHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// nil when no model is configured
	chat Chatter

	logger zerolog.Logger
}

func NewServer(
	handlers tools.Handlers,
	registry *tools.Registry,
	listOrdersHandler queries.ListOrdersQueryHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	chat Chatter,
	logger zerolog.Logger,
) *Server {
	return &Server{
		handlers:           handlers,
		registry:           registry,
		listOrdersHandler:  listOrdersHandler,
		deleteOrderHandler: deleteOrderHandler,
		chat:               chat,
		logger:             logger,
	}
}

// NewEcho returns an echo instance with recovery and zerolog request logging and
// the server's routes registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.ERROR)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			event := s.logger.Info()
			if v.Error != nil {
				event = s.logger.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	s.Register(e)
	return e
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	api := e.Group("/api/v1")
	api.GET("/menu", s.GetMenu)
	api.GET("/tools", s.ListTools)
	api.POST("/tools/:name", s.InvokeTool)
	api.POST("/chat", s.Chat)

	admin := api.Group("/admin/orders")
	admin.GET("", s.ListOrders)
	admin.GET("/export", s.ExportOrders)
	admin.GET("/:orderId", s.GetOrder)
	admin.POST("/:orderId/status", s.UpdateOrderStatus)
	admin.DELETE("/:orderId", s.DeleteOrder)
}

package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "pizzabot/internal/adapters/in/http"
	"pizzabot/internal/pkg/errs"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the background jobs",
	Long: `Start the HTTP API which provides:
- the tool surface at /api/v1/tools
- chat with the assistant at /api/v1/chat (needs LLM_API_KEY)
- order administration at /api/v1/admin/orders
- the stale draft sweeper`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, closeRoot, err := OpenCompositionRoot(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRoot()

	var chat api.Chatter
	assistant, closeAgent, err := root.CreateAgent(ctx)
	switch {
	case errors.Is(err, errs.ErrValueIsRequired):
		logger.Warn().Err(err).Msg("chat disabled")
	case err != nil:
		return err
	default:
		defer closeAgent()
		chat = assistant
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := api.NewEcho(root.CreateHTTPServer(chat))

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("http server listening")
		serveErr <- e.Start("0.0.0.0:" + cfg.HTTPPort)
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

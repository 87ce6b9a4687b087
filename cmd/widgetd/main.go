// Command widgetd serves the weather widget headless: the JSON API, health
// and metrics, with no window.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/urban-pulse-widget/internal/adapter/http"
	"github.com/couchcryptid/urban-pulse-widget/internal/config"
	"github.com/couchcryptid/urban-pulse-widget/internal/observability"
	"github.com/couchcryptid/urban-pulse-widget/internal/widget"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctrl := widget.NewController(logger, metrics)
	ctrl.Show(cfg.InitialCity)

	srv := httpadapter.NewServer(cfg.HTTPAddr, ctrl, ctrl, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

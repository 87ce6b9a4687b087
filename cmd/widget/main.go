// Command widget opens the Urban Pulse weather window. The ops listener
// (health, metrics and a read-only JSON API) runs alongside it on HTTP_ADDR.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/couchcryptid/urban-pulse-widget/internal/adapter/desktop"
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

	a := app.NewWithID("io.urbanpulse.widget")
	win := desktop.New(a, ctrl, metrics, logger, desktop.Options{
		Width:            float32(cfg.WindowWidth),
		Height:           float32(cfg.WindowHeight),
		FlashDuration:    cfg.FlashDuration,
		RadarPulsePeriod: cfg.RadarPulsePeriod,
		RadarSweepPeriod: cfg.RadarSweepPeriod,
	})
	ctrl.Show(cfg.InitialCity)

	// Read-only: the window owns submissions.
	srv := httpadapter.NewServer(cfg.HTTPAddr, ctrl, nil, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Blocks until the window is closed.
	win.ShowAndRun()
	logger.Info("window closed, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

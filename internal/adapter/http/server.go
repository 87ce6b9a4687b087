package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
	"github.com/couchcryptid/urban-pulse-widget/internal/widget"
)

// Display is the widget state the API reads.
type Display interface {
	sharedobs.ReadinessChecker
	Current() (domain.Bundle, bool)
}

// Submitter replaces the displayed city.
type Submitter interface {
	Submit(raw string) (domain.Bundle, error)
}

// Server exposes health, readiness, metrics, and the widget JSON API.
type Server struct {
	httpServer *http.Server
	display    Display
	submitter  Submitter
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and /api/v1
// routes. POST /api/v1/display is only mounted when submitter is non-nil;
// without it the API is read-only.
func NewServer(addr string, display Display, submitter Submitter, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		display:   display,
		submitter: submitter,
		logger:    logger,
	}

	r.Get("/healthz", sharedobs.LivenessHandler())
	r.Get("/readyz", sharedobs.ReadinessHandler(display))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/display", s.handleGetDisplay)
		if submitter != nil {
			r.Post("/display", s.handleSubmit)
		}
		r.Get("/forecast/{city}", s.handleForecast)
	})

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type displayResponse struct {
	Bundle domain.Bundle `json:"bundle"`
	View   widget.View   `json:"view"`
}

type submitRequest struct {
	City string `json:"city"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// GET /api/v1/display returns the bundle on screen.
func (s *Server) handleGetDisplay(w http.ResponseWriter, _ *http.Request) {
	b, ok := s.display.Current()
	if !ok {
		sharedobs.WriteJSON(w, http.StatusNotFound, errorResponse{Error: widget.ErrNothingDisplayed.Error()})
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, displayResponse{Bundle: b, View: widget.Render(b)})
}

// POST /api/v1/display replaces the bundle on screen, like pressing UPDATE WEATHER.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	b, err := s.submitter.Submit(req.City)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, displayResponse{Bundle: b, View: widget.Render(b)})
}

// GET /api/v1/forecast/{city} previews a city without touching the display.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	city, err := domain.Validate(chi.URLParam(r, "city"))
	if err != nil {
		writeValidationError(w, err)
		return
	}
	b := domain.Generate(city)
	sharedobs.WriteJSON(w, http.StatusOK, displayResponse{Bundle: b, View: widget.Render(b)})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		sharedobs.WriteJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Message(), Reason: string(verr.Reason)})
		return
	}
	sharedobs.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

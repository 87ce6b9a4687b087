package widget

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
	"github.com/couchcryptid/urban-pulse-widget/internal/observability"
)

// ErrNothingDisplayed is returned by readiness checks before the first bundle.
var ErrNothingDisplayed = errors.New("no city has been displayed yet")

// Controller owns the bundle currently on screen. Every shell (desktop,
// HTTP, terminal) goes through it: keystrokes are filtered with FilterRune,
// submissions validated and generated by Submit, and renderers are told
// about each new bundle through OnRender.
type Controller struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	current atomic.Pointer[domain.Bundle]

	mu       sync.Mutex
	onRender []func(View)
	onReject []func(error)
}

// NewController creates a Controller with nothing displayed.
func NewController(logger *slog.Logger, metrics *observability.Metrics) *Controller {
	return &Controller{logger: logger, metrics: metrics}
}

// OnRender registers fn to receive the view of every newly displayed bundle.
func (c *Controller) OnRender(fn func(View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRender = append(c.onRender, fn)
}

// OnReject registers fn to receive every rejection, from keystrokes or submits.
func (c *Controller) OnReject(fn func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onReject = append(c.onReject, fn)
}

// FilterRune reports whether a typed character may enter the city field.
// Blocked characters are reported to reject listeners.
func (c *Controller) FilterRune(r rune) bool {
	if domain.IsCityRune(r) {
		return true
	}
	c.metrics.KeystrokesBlocked.Inc()
	c.logger.Debug("keystroke blocked", "char", string(r))
	c.notifyReject(&domain.ValidationError{Reason: domain.ReasonIllegalCharacter, Input: string(r), Char: r})
	return false
}

// Submit validates raw (after trimming surrounding whitespace) and, when it
// is a valid city name, replaces the displayed bundle. On rejection the
// display is left untouched and a *domain.ValidationError is returned.
func (c *Controller) Submit(raw string) (domain.Bundle, error) {
	city, err := domain.Validate(strings.TrimSpace(raw))
	if err != nil {
		var verr *domain.ValidationError
		reason := "unknown"
		if errors.As(err, &verr) {
			reason = string(verr.Reason)
		}
		c.metrics.Submissions.WithLabelValues("rejected").Inc()
		c.metrics.ValidationRejections.WithLabelValues(reason).Inc()
		c.logger.Info("city rejected", "input", raw, "reason", reason)
		c.notifyReject(err)
		return domain.Bundle{}, err
	}

	b := c.Show(city)
	c.metrics.Submissions.WithLabelValues("accepted").Inc()
	return b, nil
}

// Show displays the bundle for an already validated city. It is not counted
// as a submission.
func (c *Controller) Show(city domain.CityName) domain.Bundle {
	start := time.Now()
	b := domain.Generate(city)
	c.metrics.GenerateDuration.Observe(time.Since(start).Seconds())

	c.current.Store(&b)
	c.metrics.DisplayedTemperature.Set(float64(b.TemperatureF))
	c.logger.Info("city displayed",
		"city", b.City,
		"temperature_f", b.TemperatureF,
		"condition", b.Condition.String(),
	)

	view := Render(b)
	for _, fn := range c.renderers() {
		fn(view)
	}
	return b
}

// Current returns the displayed bundle, if any.
func (c *Controller) Current() (domain.Bundle, bool) {
	b := c.current.Load()
	if b == nil {
		return domain.Bundle{}, false
	}
	return *b, true
}

// View returns the rendered form of the displayed bundle, if any.
func (c *Controller) View() (View, bool) {
	b, ok := c.Current()
	if !ok {
		return View{}, false
	}
	return Render(b), true
}

// CheckReadiness returns nil once a bundle is on screen.
func (c *Controller) CheckReadiness(_ context.Context) error {
	if c.current.Load() == nil {
		return ErrNothingDisplayed
	}
	return nil
}

func (c *Controller) renderers() []func(View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.onRender)
}

func (c *Controller) notifyReject(err error) {
	c.mu.Lock()
	fns := slices.Clone(c.onReject)
	c.mu.Unlock()

	for _, fn := range fns {
		fn(err)
	}
}

package widget_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
	"github.com/couchcryptid/urban-pulse-widget/internal/observability"
	"github.com/couchcryptid/urban-pulse-widget/internal/widget"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestController() (*widget.Controller, *observability.Metrics) {
	metrics := observability.NewMetricsForTesting()
	return widget.NewController(discardLogger(), metrics), metrics
}

func TestController_SubmitDisplaysBundle(t *testing.T) {
	c, metrics := newTestController()

	var rendered []widget.View
	c.OnRender(func(v widget.View) { rendered = append(rendered, v) })

	b, err := c.Submit("  New York ")
	require.NoError(t, err)
	assert.Equal(t, "NEW YORK", b.City)

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, b, cur)

	require.Len(t, rendered, 1)
	assert.Equal(t, "NEW YORK", rendered[0].Headline)
	assert.Equal(t, "57°F", rendered[0].Temperature)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Submissions.WithLabelValues("accepted")))
	assert.Equal(t, 57.0, testutil.ToFloat64(metrics.DisplayedTemperature))
}

func TestController_RejectionKeepsDisplay(t *testing.T) {
	c, metrics := newTestController()

	var rejections []error
	renders := 0
	c.OnReject(func(err error) { rejections = append(rejections, err) })
	c.OnRender(func(widget.View) { renders++ })

	before, err := c.Submit("London")
	require.NoError(t, err)

	for _, raw := range []string{"", "A", "7up", "New York!"} {
		_, err := c.Submit(raw)
		require.Error(t, err, raw)
	}

	after, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, 1, renders)
	require.Len(t, rejections, 4)
	assert.ErrorIs(t, rejections[0], domain.ErrTooShort)
	assert.ErrorIs(t, rejections[1], domain.ErrTooShort)
	assert.ErrorIs(t, rejections[2], domain.ErrInvalidStart)
	assert.ErrorIs(t, rejections[3], domain.ErrIllegalCharacter)

	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.Submissions.WithLabelValues("rejected")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ValidationRejections.WithLabelValues("too_short")))
}

func TestController_WhitespaceOnlyIsTooShort(t *testing.T) {
	c, _ := newTestController()
	_, err := c.Submit("   ")
	assert.ErrorIs(t, err, domain.ErrTooShort)
}

func TestController_FilterRune(t *testing.T) {
	c, metrics := newTestController()

	var rejected []error
	c.OnReject(func(err error) { rejected = append(rejected, err) })

	for _, r := range "Ab -'" {
		assert.True(t, c.FilterRune(r), "rune %q", r)
	}
	for _, r := range "7!\t" {
		assert.False(t, c.FilterRune(r), "rune %q", r)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.KeystrokesBlocked))
	require.Len(t, rejected, 3)
	assert.ErrorIs(t, rejected[0], domain.ErrIllegalCharacter)
}

func TestController_Readiness(t *testing.T) {
	c, _ := newTestController()

	err := c.CheckReadiness(context.Background())
	assert.ErrorIs(t, err, widget.ErrNothingDisplayed)
	_, ok := c.View()
	assert.False(t, ok)

	c.Show(domain.MustCity("NEW YORK"))

	require.NoError(t, c.CheckReadiness(context.Background()))
	v, ok := c.View()
	require.True(t, ok)
	assert.Equal(t, "NEW YORK", v.Headline)
}

func TestController_ReplacesWholesale(t *testing.T) {
	c, _ := newTestController()

	first, err := c.Submit("Paris")
	require.NoError(t, err)
	second, err := c.Submit("London")
	require.NoError(t, err)

	cur, _ := c.Current()
	assert.Equal(t, second, cur)
	assert.NotEqual(t, first.City, cur.City)
}

func TestController_ListenerAddedDuringNotifyWaitsForNext(t *testing.T) {
	c, _ := newTestController()

	var late, lateRejects int
	c.OnRender(func(widget.View) {
		c.OnRender(func(widget.View) { late++ })
	})
	c.OnReject(func(error) {
		c.OnReject(func(error) { lateRejects++ })
	})

	c.Show(domain.MustCity("Paris"))
	assert.Equal(t, 0, late)
	c.Show(domain.MustCity("London"))
	assert.Equal(t, 1, late)

	_, err := c.Submit("7up")
	require.Error(t, err)
	assert.Equal(t, 0, lateRejects)
	_, err = c.Submit("7up")
	require.Error(t, err)
	assert.Equal(t, 1, lateRejects)
}

func TestController_ShowIsNotASubmission(t *testing.T) {
	c, metrics := newTestController()

	c.Show(domain.MustCity("NEW YORK"))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.Submissions.WithLabelValues("accepted")))
	assert.Equal(t, 57.0, testutil.ToFloat64(metrics.DisplayedTemperature))

	_, err := c.Submit("London")
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Submissions.WithLabelValues("accepted")))
}

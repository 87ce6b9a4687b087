// Package desktop is the fyne window for the weather widget.
package desktop

import (
	"errors"
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
	"github.com/couchcryptid/urban-pulse-widget/internal/observability"
	pulse "github.com/couchcryptid/urban-pulse-widget/internal/widget"
)

// Options size and time the window.
type Options struct {
	Width, Height    float32
	FlashDuration    time.Duration
	RadarPulsePeriod time.Duration
	RadarSweepPeriod time.Duration
}

// Window is the widget's single window. All displayed text is replaced in
// one place, render, from the Controller's views.
type Window struct {
	win     fyne.Window
	ctrl    *pulse.Controller
	metrics *observability.Metrics
	logger  *slog.Logger
	opts    Options

	flash     *pulse.Flash
	radar     *pulse.Radar
	radarView *radarView
	anim      *fyne.Animation

	entry       *cityEntry
	submit      *widget.Button
	flashBorder *canvas.Rectangle

	cityText      *canvas.Text
	temperature   *canvas.Text
	condition     *canvas.Text
	uvIndex       *canvas.Text
	commute       *canvas.Text
	wind          *canvas.Text
	forecastStrip *fyne.Container
}

// New builds the window and subscribes it to ctrl. Nothing is shown until Show.
func New(app fyne.App, ctrl *pulse.Controller, metrics *observability.Metrics, logger *slog.Logger, opts Options) *Window {
	w := &Window{
		win:     app.NewWindow(pulse.Title),
		ctrl:    ctrl,
		metrics: metrics,
		logger:  logger,
		opts:    opts,
		radar:   pulse.NewRadar(opts.RadarPulsePeriod, opts.RadarSweepPeriod),
	}
	w.flash = pulse.NewFlash(opts.FlashDuration, w.setFlash)

	root := container.NewBorder(w.buildTop(), w.buildBottom(), nil, nil, w.buildCenter())
	bg := canvas.NewRectangle(colorBackground)
	w.win.SetContent(container.NewStack(bg, root))
	w.win.Resize(fyne.NewSize(opts.Width, opts.Height))

	ctrl.OnRender(w.render)
	ctrl.OnReject(w.showInputError)

	if v, ok := ctrl.View(); ok {
		w.render(v)
	}
	return w
}

// ShowAndRun starts the radar, shows the window and blocks until it closes.
func (w *Window) ShowAndRun() {
	w.startRadar()
	w.win.SetOnClosed(w.stopRadar)
	w.win.ShowAndRun()
}

func (w *Window) buildTop() fyne.CanvasObject {
	w.cityText = styledText("", 32, colorText, true)

	w.entry = newCityEntry(w.ctrl.FilterRune)
	w.submit = widget.NewButton("UPDATE WEATHER", w.onSubmit)
	w.submit.Importance = widget.HighImportance
	w.submit.Disable()

	w.entry.OnChanged = func(s string) {
		if s == "" {
			w.submit.Disable()
			return
		}
		w.submit.Enable()
	}
	w.entry.OnSubmitted = func(string) {
		if !w.submit.Disabled() {
			w.onSubmit()
		}
	}

	w.flashBorder = canvas.NewRectangle(color.Transparent)
	w.flashBorder.StrokeWidth = 2
	w.flashBorder.StrokeColor = colorAccent

	field := container.NewGridWrap(
		fyne.NewSize(250, w.entry.MinSize().Height),
		container.NewStack(w.entry, w.flashBorder),
	)
	input := container.NewHBox(layout.NewSpacer(), field, w.submit, layout.NewSpacer())

	return container.NewPadded(container.NewVBox(
		styledText(pulse.Brand, 14, colorAccent, true),
		w.cityText,
		widget.NewSeparator(),
		input,
	))
}

func (w *Window) buildCenter() fyne.CanvasObject {
	w.temperature = styledText("--°F", 72, colorText, true)
	w.condition = styledText("", 20, colorMuted, true)
	w.radarView = newRadarView()

	weather := container.NewVBox(
		w.temperature,
		w.condition,
		container.NewCenter(w.radarView.root),
	)

	w.uvIndex = styledText("", 18, colorUV, true)
	w.commute = styledText("", 18, colorGood, true)
	w.wind = styledText(pulse.WindLine, 16, colorMuted, false)

	panel := canvas.NewRectangle(colorPanel)
	panel.CornerRadius = 15
	metrics := container.NewStack(panel, container.NewPadded(container.NewVBox(
		w.uvIndex,
		w.commute,
		w.wind,
		container.NewCenter(buildings()),
	)))

	return container.NewCenter(container.NewHBox(weather, layout.NewSpacer(), metrics))
}

func (w *Window) buildBottom() fyne.CanvasObject {
	w.forecastStrip = container.NewHBox()

	panel := canvas.NewRectangle(colorPanel)
	return container.NewStack(panel, container.NewPadded(container.NewVBox(
		styledText(pulse.ForecastHead, 18, colorAccent, true),
		container.NewCenter(w.forecastStrip),
	)))
}

// buildings is the skyline silhouette under the urban metrics.
func buildings() fyne.CanvasObject {
	heights := []float32{40, 60, 80, 55, 35}
	widths := []float32{15, 20, 25, 20, 15}

	row := container.NewHBox()
	for i, h := range heights {
		r := canvas.NewRectangle(colorSurface)
		r.StrokeColor = colorAccent
		r.StrokeWidth = 1
		r.SetMinSize(fyne.NewSize(widths[i], h))
		row.Add(container.NewVBox(layout.NewSpacer(), r))
	}
	return row
}

func (w *Window) onSubmit() {
	if _, err := w.ctrl.Submit(w.entry.Text); err != nil {
		return
	}
	w.entry.SetText("")
}

// render replaces every displayed field with v.
func (w *Window) render(v pulse.View) {
	setText(w.cityText, v.Headline)
	setText(w.temperature, v.Temperature)
	setText(w.condition, v.Condition)
	setText(w.uvIndex, v.UVIndex)
	setText(w.commute, v.Commute)
	setText(w.wind, v.Wind)

	cards := make([]fyne.CanvasObject, 0, len(v.Cards))
	for _, c := range v.Cards {
		cards = append(cards, newForecastCard(c))
	}
	w.forecastStrip.Objects = cards
	w.forecastStrip.Refresh()
}

func (w *Window) showInputError(err error) {
	msg := "Please enter a valid city name"
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		msg = verr.Message()
	}
	w.flash.Trigger()
	dialog.ShowInformation("Invalid Input", "City Name Error\n\n"+msg, w.win)
}

func (w *Window) setFlash(active bool) {
	if active {
		w.flashBorder.StrokeColor = colorAlert
	} else {
		w.flashBorder.StrokeColor = colorAccent
	}
	w.flashBorder.Refresh()
}

func (w *Window) startRadar() {
	w.radar.Start()
	w.anim = fyne.NewAnimation(w.opts.RadarSweepPeriod, func(float32) {
		w.radarView.apply(w.radar.Frame())
	})
	w.anim.Curve = fyne.AnimationLinear
	w.anim.RepeatCount = fyne.AnimationRepeatForever
	w.anim.Start()
	w.metrics.RadarAnimating.Set(1)
	w.logger.Debug("radar animation started")
}

func (w *Window) stopRadar() {
	if w.anim != nil {
		w.anim.Stop()
	}
	w.flash.Stop()
	w.metrics.RadarAnimating.Set(0)
}

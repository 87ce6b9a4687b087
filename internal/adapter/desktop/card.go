package desktop

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	pulse "github.com/couchcryptid/urban-pulse-widget/internal/widget"
)

// forecastCard shows one day of the forecast strip and highlights its
// border while hovered.
type forecastCard struct {
	widget.BaseWidget
	bg      *canvas.Rectangle
	content fyne.CanvasObject
}

var _ fynedesktop.Hoverable = (*forecastCard)(nil)

func newForecastCard(v pulse.CardView) *forecastCard {
	bg := canvas.NewRectangle(colorSurface)
	bg.CornerRadius = 10
	bg.StrokeColor = colorAccent
	bg.StrokeWidth = 1

	c := &forecastCard{
		bg: bg,
		content: container.NewPadded(container.NewVBox(
			styledText(v.Day, 14, colorAccent, true),
			styledText(v.Range, 20, color.White, true),
			styledText(v.Icon, 24, color.White, false),
			styledText(v.Condition, 12, colorMuted, false),
			italicText(v.Suggestion, 11, colorGood),
		)),
	}
	c.ExtendBaseWidget(c)
	return c
}

func (c *forecastCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.bg, c.content))
}

func (c *forecastCard) MouseIn(*fynedesktop.MouseEvent) {
	c.bg.FillColor = colorSurfaceHover
	c.bg.StrokeColor = colorAlert
	c.bg.Refresh()
}

func (c *forecastCard) MouseMoved(*fynedesktop.MouseEvent) {}

func (c *forecastCard) MouseOut() {
	c.bg.FillColor = colorSurface
	c.bg.StrokeColor = colorAccent
	c.bg.Refresh()
}

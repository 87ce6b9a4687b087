package desktop

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	pulse "github.com/couchcryptid/urban-pulse-widget/internal/widget"
)

const (
	radarRadius = 50
	// Room for the circle at full pulse.
	radarBox = 2 * radarRadius * pulse.RadarMaxScale
)

// radarView draws the pulsing circle and its sweep line.
type radarView struct {
	circle *canvas.Circle
	sweep  *canvas.Line
	root   fyne.CanvasObject
}

func newRadarView() *radarView {
	circle := canvas.NewCircle(colorRadarFill)
	circle.StrokeColor = colorAccent
	circle.StrokeWidth = 2

	sweep := canvas.NewLine(colorAccent)
	sweep.StrokeWidth = 2

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(radarBox, radarBox))

	r := &radarView{
		circle: circle,
		sweep:  sweep,
		root:   container.NewStack(spacer, container.NewWithoutLayout(circle, sweep)),
	}
	r.apply(pulse.RadarFrame{Scale: pulse.RadarMinScale})
	return r
}

// apply positions the circle and sweep line for one frame.
func (r *radarView) apply(f pulse.RadarFrame) {
	center := float32(radarBox / 2)
	radius := float32(radarRadius * f.Scale)

	r.circle.Position1 = fyne.NewPos(center-radius, center-radius)
	r.circle.Position2 = fyne.NewPos(center+radius, center+radius)

	rad := f.Angle * math.Pi / 180
	r.sweep.Position1 = fyne.NewPos(center, center)
	r.sweep.Position2 = fyne.NewPos(
		center+radius*float32(math.Cos(rad)),
		center+radius*float32(math.Sin(rad)),
	)

	r.circle.Refresh()
	r.sweep.Refresh()
}

package widget

import (
	"sync"
	"time"
)

// Radar pulse bounds, as scale factors of the base circle.
const (
	RadarMinScale = 1.0
	RadarMaxScale = 1.3
)

// RadarFrame is the radar icon's transform at one instant.
type RadarFrame struct {
	Scale float64 // RadarMinScale..RadarMaxScale
	Angle float64 // sweep angle in degrees, 0..360
}

// Radar models the decorative radar animation: a pulse that grows and
// shrinks back over two pulse periods, and a sweep that turns a full circle
// every sweep period. Both run indefinitely and interpolate linearly.
type Radar struct {
	pulse time.Duration
	sweep time.Duration

	mu    sync.Mutex
	start time.Time
}

// NewRadar creates a radar; call Start before reading frames.
func NewRadar(pulse, sweep time.Duration) *Radar {
	return &Radar{pulse: pulse, sweep: sweep}
}

// Start resets the animation origin to now.
func (r *Radar) Start() {
	r.mu.Lock()
	r.start = clock.Now()
	r.mu.Unlock()
}

// Frame returns the transform for the current time.
func (r *Radar) Frame() RadarFrame {
	r.mu.Lock()
	start := r.start
	r.mu.Unlock()
	return r.FrameAt(clock.Since(start))
}

// FrameAt returns the transform elapsed after Start.
func (r *Radar) FrameAt(elapsed time.Duration) RadarFrame {
	if elapsed < 0 {
		elapsed = 0
	}

	var frac float64
	if r.pulse > 0 {
		frac = float64(elapsed%(2*r.pulse)) / float64(r.pulse)
		if frac > 1 {
			frac = 2 - frac
		}
	}

	var angle float64
	if r.sweep > 0 {
		angle = 360 * float64(elapsed%r.sweep) / float64(r.sweep)
	}

	return RadarFrame{
		Scale: RadarMinScale + (RadarMaxScale-RadarMinScale)*frac,
		Angle: angle,
	}
}

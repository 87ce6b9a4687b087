package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRadar_FrameAt(t *testing.T) {
	r := NewRadar(3*time.Second, 6*time.Second)

	tests := []struct {
		elapsed time.Duration
		scale   float64
		angle   float64
	}{
		{0, 1.0, 0},
		{1500 * time.Millisecond, 1.15, 90},
		{3 * time.Second, 1.3, 180},
		{4500 * time.Millisecond, 1.15, 270},
		{6 * time.Second, 1.0, 0},
		{7500 * time.Millisecond, 1.15, 90},
		{-time.Second, 1.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.elapsed.String(), func(t *testing.T) {
			f := r.FrameAt(tt.elapsed)
			assert.InDelta(t, tt.scale, f.Scale, 1e-9)
			assert.InDelta(t, tt.angle, f.Angle, 1e-9)
		})
	}
}

func TestRadar_FrameFollowsClock(t *testing.T) {
	fc := useFakeClock(t)
	r := NewRadar(3*time.Second, 6*time.Second)
	r.Start()

	assert.InDelta(t, RadarMinScale, r.Frame().Scale, 1e-9)

	fc.Advance(3 * time.Second)
	f := r.Frame()
	assert.InDelta(t, RadarMaxScale, f.Scale, 1e-9)
	assert.InDelta(t, 180, f.Angle, 1e-9)
}

func TestRadar_ZeroPeriods(t *testing.T) {
	f := NewRadar(0, 0).FrameAt(time.Second)
	assert.Equal(t, RadarFrame{Scale: RadarMinScale}, f)
}

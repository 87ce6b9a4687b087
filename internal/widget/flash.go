package widget

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Flash marks the city field as invalid for a fixed duration after a
// rejection. Triggering again while active restarts the countdown.
type Flash struct {
	duration time.Duration
	onChange func(active bool)

	mu     sync.Mutex
	active bool
	gen    uint64
	timer  clockwork.Timer
}

// NewFlash creates a Flash; onChange may be nil.
func NewFlash(d time.Duration, onChange func(active bool)) *Flash {
	if onChange == nil {
		onChange = func(bool) {}
	}
	return &Flash{duration: d, onChange: onChange}
}

// Trigger turns the flash on and schedules it off after the duration.
func (f *Flash) Trigger() {
	f.mu.Lock()
	if f.timer != nil {
		f.timer.Stop()
	}
	f.gen++
	gen := f.gen
	f.active = true
	f.timer = clock.AfterFunc(f.duration, func() { f.expire(gen) })
	f.mu.Unlock()

	f.onChange(true)
}

// Active reports whether the field is currently flagged.
func (f *Flash) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Stop cancels a pending reset and clears the flash.
func (f *Flash) Stop() {
	f.mu.Lock()
	wasActive := f.active
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
	f.active = false
	f.mu.Unlock()

	if wasActive {
		f.onChange(false)
	}
}

func (f *Flash) expire(gen uint64) {
	f.mu.Lock()
	// A newer Trigger or Stop owns the state now.
	if gen != f.gen {
		f.mu.Unlock()
		return
	}
	f.active = false
	f.timer = nil
	f.mu.Unlock()

	f.onChange(false)
}

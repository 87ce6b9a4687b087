package widget

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flashRecorder struct {
	mu     sync.Mutex
	events []bool
}

func (r *flashRecorder) record(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, active)
}

func (r *flashRecorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.events...)
}

func useFakeClock(t *testing.T) *clockwork.FakeClock {
	t.Helper()
	fc := clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC))
	SetClock(fc)
	t.Cleanup(func() { SetClock(nil) })
	return fc
}

func TestFlash_ResetsAfterDuration(t *testing.T) {
	fc := useFakeClock(t)
	rec := &flashRecorder{}
	f := NewFlash(time.Second, rec.record)

	f.Trigger()
	assert.True(t, f.Active())

	fc.Advance(999 * time.Millisecond)
	assert.True(t, f.Active())

	fc.Advance(time.Millisecond)
	require.Eventually(t, func() bool { return !f.Active() }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, []bool{true, false}, rec.snapshot())
}

func TestFlash_RetriggerRestartsCountdown(t *testing.T) {
	fc := useFakeClock(t)
	f := NewFlash(time.Second, nil)

	f.Trigger()
	fc.Advance(600 * time.Millisecond)
	f.Trigger()
	fc.Advance(600 * time.Millisecond)
	assert.True(t, f.Active(), "second trigger should extend the flash")

	fc.Advance(400 * time.Millisecond)
	require.Eventually(t, func() bool { return !f.Active() }, time.Second, time.Millisecond)
}

func TestFlash_Stop(t *testing.T) {
	fc := useFakeClock(t)
	rec := &flashRecorder{}
	f := NewFlash(time.Second, rec.record)

	f.Stop()
	assert.Empty(t, rec.snapshot(), "stopping an idle flash is silent")

	f.Trigger()
	f.Stop()
	assert.False(t, f.Active())
	fc.Advance(2 * time.Second)

	assert.Never(t, func() bool { return len(rec.snapshot()) > 2 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, []bool{true, false}, rec.snapshot())
}

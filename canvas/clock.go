package canvas

import (
	"sync"
	"time"
)

// Clock schedules sequencer callbacks. The sequencer never sleeps or owns
// timers directly - everything goes through this interface, so tests can
// drive ticks by hand without real delays.
type Clock interface {
	// Every invokes fn repeatedly at the given interval until the returned
	// stop function is called. Stop is safe to call more than once.
	Every(d time.Duration, fn func()) (stop func())

	// After invokes fn once after the delay, unless the returned cancel
	// function runs first. Cancel after firing is a no-op.
	After(d time.Duration, fn func()) (cancel func())
}

// TimerClock is the real-time Clock used outside of tests.
type TimerClock struct{}

func (TimerClock) Every(d time.Duration, fn func()) (stop func()) {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

func (TimerClock) After(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

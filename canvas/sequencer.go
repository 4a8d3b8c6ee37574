package canvas

import (
	"sync"
	"time"

	"sonastroke/audio"
	"sonastroke/debug"
)

// PlayState is the sequencer's current mode.
type PlayState int

const (
	StateIdle PlayState = iota
	StatePlaying
	StatePaused
)

func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "PLAY"
	case StatePaused:
		return "PAUSE"
	default:
		return "IDLE"
	}
}

const (
	// BaseTickInterval is the unscaled time between stroke triggers.
	BaseTickInterval = 500 * time.Millisecond
	// NoteLength is how long each triggered note sounds before the
	// deferred note-off, clamped to 80% of the effective tick interval.
	NoteLength = 300 * time.Millisecond

	minSpeed = 0.25
	maxSpeed = 4.0
)

// Sequencer replays a recorded color sequence in order at a fixed pace,
// one note per stroke, tracking which stroke is live for highlighting.
// All scheduling goes through the injected Clock; Stop cancels the tick
// source and any pending note-off before returning, so a stopped sequencer
// never emits a late note.
type Sequencer struct {
	mu    sync.Mutex
	out   audio.Output
	clock Clock

	state  PlayState
	colors []int // snapshot taken at Play
	active int   // index into colors, -1 when none

	speed      float64
	stopTick   func()
	cancelNote func()

	onChange func() // invoked after every observable transition
}

// NewSequencer creates an idle sequencer driving the given output.
func NewSequencer(out audio.Output, clock Clock) *Sequencer {
	return &Sequencer{
		out:    out,
		clock:  clock,
		state:  StateIdle,
		active: -1,
		speed:  1.0,
	}
}

// SetOnChange registers a callback fired after state or cursor changes.
// Must be set before playback starts.
func (s *Sequencer) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Play restarts playback from the first stroke. A run already in progress
// is fully halted first so there is never more than one tick source. An
// empty sequence is a no-op and the sequencer stays Idle.
func (s *Sequencer) Play(colors []int) {
	s.mu.Lock()
	s.haltLocked()
	if len(colors) == 0 {
		s.mu.Unlock()
		return
	}
	s.colors = append([]int(nil), colors...)
	s.state = StatePlaying
	s.active = 0
	s.triggerLocked(s.colors[0])
	s.startTickLocked()
	s.mu.Unlock()
	s.notify()
}

// Pause suspends the tick source, silences the output and retains the
// cursor. No-op unless Playing.
func (s *Sequencer) Pause() {
	s.mu.Lock()
	if s.state != StatePlaying {
		s.mu.Unlock()
		return
	}
	s.suspendLocked()
	s.state = StatePaused
	s.mu.Unlock()
	s.notify()
}

// Resume continues from the next unplayed stroke. No-op unless Paused.
// Resuming past the last stroke completes to Idle without re-triggering.
func (s *Sequencer) Resume() {
	s.mu.Lock()
	if s.state != StatePaused {
		s.mu.Unlock()
		return
	}
	s.active++
	if s.active >= len(s.colors) {
		s.finishLocked()
		s.mu.Unlock()
		s.notify()
		return
	}
	s.state = StatePlaying
	s.triggerLocked(s.colors[s.active])
	s.startTickLocked()
	s.mu.Unlock()
	s.notify()
}

// Stop halts playback from any state: tick source cancelled, pending
// note-off cancelled, output silenced, cursor cleared.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	changed := s.state != StateIdle || s.active != -1
	s.haltLocked()
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// SetSpeed scales the tick interval by 1/mult, clamped to 0.25x-4x.
// Takes effect immediately if playing.
func (s *Sequencer) SetSpeed(mult float64) {
	s.mu.Lock()
	if mult < minSpeed {
		mult = minSpeed
	}
	if mult > maxSpeed {
		mult = maxSpeed
	}
	s.speed = mult
	if s.state == StatePlaying {
		// Restart the tick source at the new interval.
		if s.stopTick != nil {
			s.stopTick()
		}
		s.startTickLocked()
	}
	s.mu.Unlock()
	s.notify()
}

// Speed returns the current speed multiplier.
func (s *Sequencer) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// State returns the current play state.
func (s *Sequencer) State() PlayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ActiveIndex returns the stroke index currently sounding, or -1.
func (s *Sequencer) ActiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateIdle {
		return -1
	}
	return s.active
}

// tick advances the cursor by one stroke. Fires from the Clock.
func (s *Sequencer) tick() {
	s.mu.Lock()
	if s.state != StatePlaying {
		// A tick raced a stop; the tick source is already cancelled.
		s.mu.Unlock()
		return
	}
	s.active++
	if s.active >= len(s.colors) {
		s.finishLocked()
		s.mu.Unlock()
		s.notify()
		return
	}
	s.triggerLocked(s.colors[s.active])
	s.mu.Unlock()
	s.notify()
}

// triggerLocked sounds one stroke and schedules its note-off.
func (s *Sequencer) triggerLocked(colorIndex int) {
	if s.cancelNote != nil {
		s.cancelNote()
	}
	s.out.StartNote(colorIndex)
	debug.Log("seq", "trigger idx=%d color=%d", s.active, colorIndex)
	out := s.out
	s.cancelNote = s.clock.After(s.noteLengthLocked(), func() {
		out.StopNote()
	})
}

// noteLengthLocked keeps the note-off inside the tick interval so notes
// release before the next trigger at high speeds.
func (s *Sequencer) noteLengthLocked() time.Duration {
	interval := s.intervalLocked()
	clamp := interval * 8 / 10
	if NoteLength < clamp {
		return NoteLength
	}
	return clamp
}

func (s *Sequencer) intervalLocked() time.Duration {
	return time.Duration(float64(BaseTickInterval) / s.speed)
}

func (s *Sequencer) startTickLocked() {
	s.stopTick = s.clock.Every(s.intervalLocked(), s.tick)
}

// suspendLocked cancels timers and silences output, keeping the cursor.
// StopNote only fires if a note was ever triggered this run, so stopping
// an idle sequencer emits nothing.
func (s *Sequencer) suspendLocked() {
	if s.stopTick != nil {
		s.stopTick()
		s.stopTick = nil
	}
	if s.cancelNote != nil {
		s.cancelNote()
		s.cancelNote = nil
		s.out.StopNote()
	}
}

// finishLocked ends a completed run: final stop, cursor cleared, Idle.
func (s *Sequencer) finishLocked() {
	s.suspendLocked()
	s.state = StateIdle
	s.active = -1
	debug.Log("seq", "run complete")
}

// haltLocked is finishLocked for any state, including mid-run.
func (s *Sequencer) haltLocked() {
	s.suspendLocked()
	s.state = StateIdle
	s.active = -1
	s.colors = nil
}

func (s *Sequencer) notify() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

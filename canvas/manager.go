package canvas

import (
	"sync"

	"sonastroke/audio"
	"sonastroke/debug"
)

// Manager is the single owner of everything drawn: the finalized stroke
// list, the in-progress gesture and the playback sequencer. The TUI and
// exporters read through accessors and subscribe to UpdateChan; nothing
// else mutates the document.
//
// Recorder operations are total: invalid preconditions are guarded no-ops,
// never errors. The audio output is shared between live drawing and
// playback - starting one stops the other.
type Manager struct {
	mu  sync.Mutex
	out audio.Output
	seq *Sequencer

	strokes []Stroke

	// In-progress gesture. Exists only between BeginStroke and EndStroke.
	current      []Point
	currentColor int
	drawing      bool

	// UpdateChan receives a signal after every observable change.
	// Buffered; sends never block.
	UpdateChan chan struct{}
}

// NewManager creates an empty canvas driving the given output.
func NewManager(out audio.Output, clock Clock) *Manager {
	m := &Manager{
		out:        out,
		UpdateChan: make(chan struct{}, 1),
	}
	m.seq = NewSequencer(out, clock)
	m.seq.SetOnChange(m.notify)
	return m
}

// BeginStroke starts a new gesture with one point and sounds the note for
// its color. A gesture already in progress is left untouched. Playback is
// stopped first - live drawing takes over the output.
func (m *Manager) BeginStroke(p Point, colorIndex int) {
	m.seq.Stop()

	m.mu.Lock()
	if m.drawing {
		m.mu.Unlock()
		return
	}
	m.drawing = true
	m.current = []Point{p}
	m.currentColor = colorIndex
	m.mu.Unlock()

	m.out.StartNote(colorIndex)
	m.notify()
}

// AppendPoint extends the in-progress gesture. Stray events with no
// gesture in progress are dropped.
func (m *Manager) AppendPoint(p Point) {
	m.mu.Lock()
	if !m.drawing {
		m.mu.Unlock()
		return
	}
	m.current = append(m.current, p)
	m.mu.Unlock()
	m.notify()
}

// EndStroke finalizes the gesture into an immutable Stroke and silences
// the live note. With nothing in progress it only clears state.
func (m *Manager) EndStroke() {
	m.mu.Lock()
	if !m.drawing {
		m.mu.Unlock()
		return
	}
	if len(m.current) > 0 {
		st := newStroke(m.current, m.currentColor)
		m.strokes = append(m.strokes, st)
		debug.Log("canvas", "stroke %s: %d points color=%d", st.ID, len(st.Points), st.ColorIndex)
	}
	m.current = nil
	m.drawing = false
	m.mu.Unlock()

	m.out.StopNote()
	m.notify()
}

// UndoLast removes the most recently finalized stroke. The in-progress
// gesture, if any, is unaffected. Stops playback first: the active index
// could otherwise point past the end of the shortened list.
func (m *Manager) UndoLast() {
	m.seq.Stop()

	m.mu.Lock()
	if n := len(m.strokes); n > 0 {
		m.strokes = m.strokes[:n-1]
	}
	m.mu.Unlock()
	m.notify()
}

// Clear wipes the document, cancels any gesture in progress, stops
// playback and silences the output.
func (m *Manager) Clear() {
	m.seq.Stop()

	m.mu.Lock()
	m.strokes = nil
	m.current = nil
	m.drawing = false
	m.mu.Unlock()

	m.out.StopNote()
	m.notify()
}

// Play replays the document from the first stroke. A gesture in flight is
// finalized first so it is neither lost nor left driving the output.
// Empty documents stay Idle.
func (m *Manager) Play() {
	m.EndStroke()

	m.mu.Lock()
	colors := make([]int, len(m.strokes))
	for i, st := range m.strokes {
		colors[i] = st.ColorIndex
	}
	m.mu.Unlock()

	m.seq.Play(colors)
}

// Pause suspends playback, retaining the cursor.
func (m *Manager) Pause() { m.seq.Pause() }

// Resume continues a paused run from the next unplayed stroke.
func (m *Manager) Resume() { m.seq.Resume() }

// StopPlayback halts playback and clears the cursor.
func (m *Manager) StopPlayback() { m.seq.Stop() }

// SetSpeed scales the playback pace.
func (m *Manager) SetSpeed(mult float64) { m.seq.SetSpeed(mult) }

// Speed returns the playback speed multiplier.
func (m *Manager) Speed() float64 { return m.seq.Speed() }

// PlayState returns the sequencer state.
func (m *Manager) PlayState() PlayState { return m.seq.State() }

// ActiveStrokeIndex returns the index of the stroke currently sounding
// during replay, or -1.
func (m *Manager) ActiveStrokeIndex() int { return m.seq.ActiveIndex() }

// Strokes returns a copy of the finalized stroke list in drawing order.
func (m *Manager) Strokes() []Stroke {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Stroke, len(m.strokes))
	copy(out, m.strokes)
	return out
}

// StrokeCount returns the number of finalized strokes.
func (m *Manager) StrokeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.strokes)
}

// CurrentStroke returns the in-progress point buffer, its color and
// whether a gesture is in flight, for live rendering.
func (m *Manager) CurrentStroke() (points []Point, colorIndex int, drawing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.drawing {
		return nil, 0, false
	}
	points = make([]Point, len(m.current))
	copy(points, m.current)
	return points, m.currentColor, true
}

// SetStrokes replaces the document, used when loading a saved sketch.
// Playback and any gesture in progress are cancelled.
func (m *Manager) SetStrokes(strokes []Stroke) {
	m.seq.Stop()

	m.mu.Lock()
	m.strokes = append([]Stroke(nil), strokes...)
	m.current = nil
	m.drawing = false
	m.mu.Unlock()

	m.out.StopNote()
	m.notify()
}

// notify signals UpdateChan without blocking.
func (m *Manager) notify() {
	select {
	case m.UpdateChan <- struct{}{}:
	default:
	}
}

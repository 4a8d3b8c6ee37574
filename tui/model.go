package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sonastroke/audio"
	"sonastroke/canvas"
	"sonastroke/debug"
	"sonastroke/export"
	"sonastroke/theme"
	"sonastroke/widgets"
)

// chromeRows is the number of terminal rows reserved around the canvas:
// top padding, header, gap, palette bar, help, status.
const chromeRows = 7

// layoutBounds holds cached layout info for mouse hit-testing.
type layoutBounds struct {
	canvasTop    int
	canvasHeight int
	paletteTop   int
}

type Model struct {
	Manager *canvas.Manager
	Out     audio.Output
	Theme   *theme.Theme

	easel   *widgets.Easel
	palette *widgets.PaletteBar
	bounds  *layoutBounds

	instruments []string
	instIdx     int

	dragging bool // mouse button held on the canvas
	tooltip  string
	status   string
	quitting bool
}

// UpdateMsg signals that the canvas changed outside the TUI loop
// (playback ticks, deferred note-offs).
type UpdateMsg struct{}

func NewModel(mgr *canvas.Manager, out audio.Output, th *theme.Theme, instrument string) Model {
	names := audio.InstrumentNames()
	idx := 0
	for i, n := range names {
		if n == instrument {
			idx = i
			break
		}
	}
	return Model{
		Manager:     mgr,
		Out:         out,
		Theme:       th,
		easel:       widgets.NewEasel(80, 20),
		palette:     widgets.NewPaletteBar(),
		bounds:      &layoutBounds{},
		instruments: names,
		instIdx:     idx,
	}
}

// ListenForUpdates re-subscribes to the manager's change channel.
func ListenForUpdates(mgr *canvas.Manager) tea.Cmd {
	return func() tea.Msg {
		<-mgr.UpdateChan
		return UpdateMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForUpdates(m.Manager)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.easel.Resize(msg.Width, msg.Height-chromeRows)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case UpdateMsg:
		return m, ListenForUpdates(m.Manager)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.Manager.StopPlayback()
		m.Out.StopNote()
		return m, tea.Quit

	case "1", "2", "3", "4", "5", "6", "7":
		m.palette.Selected = int(msg.String()[0] - '1')

	case " ":
		switch m.Manager.PlayState() {
		case canvas.StatePlaying:
			m.Manager.Pause()
		case canvas.StatePaused:
			m.Manager.Resume()
		default:
			m.Manager.Play()
		}

	case "esc":
		m.Manager.StopPlayback()

	case "u":
		m.Manager.UndoLast()

	case "c":
		m.Manager.Clear()

	case "i":
		m.instIdx = (m.instIdx + 1) % len(m.instruments)
		name := m.instruments[m.instIdx]
		m.Out.SetInstrument(name)
		m.status = "instrument: " + name

	case "+", "=":
		m.Manager.SetSpeed(m.Manager.Speed() * 2)

	case "-", "_":
		m.Manager.SetSpeed(m.Manager.Speed() / 2)

	case "s":
		if name, err := canvas.SaveSketch("", m.Manager.Strokes()); err != nil {
			m.status = "save failed: " + err.Error()
		} else {
			m.status = "saved " + name
		}

	case "l":
		m.loadLatest()

	case "x":
		path := exportName("png")
		if err := export.PNG(path, m.Manager.Strokes(), m.easel.Width(), m.easel.Height()); err != nil {
			m.status = "export failed: " + err.Error()
		} else {
			m.status = "exported " + path
		}

	case "X":
		path := exportName("pdf")
		if err := export.PDF(path, m.Manager.Strokes()); err != nil {
			m.status = "export failed: " + err.Error()
		} else {
			m.status = "exported " + path
		}
	}

	return m, nil
}

func (m *Model) loadLatest() {
	sketches, err := canvas.ListSketches()
	if err != nil || len(sketches) == 0 {
		m.status = "no saved sketches"
		return
	}
	strokes, err := canvas.LoadSketch(sketches[0].Filename)
	if err != nil {
		m.status = "load failed: " + err.Error()
		return
	}
	m.Manager.SetStrokes(strokes)
	m.status = "loaded " + sketches[0].Filename
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	canvasY := msg.Y - m.bounds.canvasTop
	onCanvas := canvasY >= 0 && canvasY < m.bounds.canvasHeight

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if msg.Y == m.bounds.paletteTop {
			if idx, ok := m.palette.HitTest(msg.X); ok {
				m.palette.Selected = idx
				m.tooltip = m.palette.Tooltip(idx)
			}
			return
		}
		if onCanvas {
			m.dragging = true
			m.Manager.BeginStroke(canvas.Point{X: float64(msg.X), Y: float64(canvasY)}, m.palette.Selected)
		}

	case tea.MouseActionMotion:
		if m.dragging {
			if onCanvas {
				m.Manager.AppendPoint(canvas.Point{X: float64(msg.X), Y: float64(canvasY)})
			}
			debug.LogEvery(100, "mouse", "drag x=%d y=%d", msg.X, msg.Y)
			return
		}
		if msg.Y == m.bounds.paletteTop {
			if idx, ok := m.palette.HitTest(msg.X); ok {
				m.tooltip = m.palette.Tooltip(idx)
				return
			}
		}
		m.tooltip = ""

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.Manager.EndStroke()
		}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	statusStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())

	header := headerStyle.Render(fmt.Sprintf(
		"sonastroke  %s  %.2gx  %s  %d strokes",
		m.Manager.PlayState(),
		m.Manager.Speed(),
		m.instruments[m.instIdx],
		m.Manager.StrokeCount(),
	))

	live, liveColor, drawing := m.Manager.CurrentStroke()
	if !drawing {
		live = nil
	}
	canvasView := m.easel.View(m.Manager.Strokes(), live, liveColor, m.Manager.ActiveStrokeIndex(), m.Theme)

	paletteView := m.palette.View(m.Theme)

	help := dimStyle.Render("draw:mouse  1-7:color  space:play/pause  esc:stop  u:undo  c:clear  i:instrument  +/-:speed  s:save  l:load  x:png  X:pdf  q:quit")

	// Cache layout for mouse hit-testing
	headerHeight := lipgloss.Height(header)
	m.bounds.canvasTop = 1 + headerHeight + 1
	m.bounds.canvasHeight = lipgloss.Height(canvasView)
	m.bounds.paletteTop = m.bounds.canvasTop + m.bounds.canvasHeight

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(canvasView)
	out.WriteString("\n")
	out.WriteString(paletteView)
	out.WriteString("\n")
	out.WriteString(help)

	line := m.status
	if line == "" {
		line = m.tooltip
	}
	if line != "" {
		out.WriteString("\n")
		out.WriteString(statusStyle.Render(line))
	}

	return out.String()
}

func exportName(ext string) string {
	return fmt.Sprintf("sonastroke-%s.%s", time.Now().Format("20060102-150405"), ext)
}

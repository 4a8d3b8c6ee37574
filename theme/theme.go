package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"sonastroke/scale"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Brush    rune // ● plotted stroke cell
	Live     rune // ◉ in-progress stroke cell
	Active   rune // ◆ cell of the stroke currently sounding
	EmptyDot rune // · canvas grid texture
	Swatch   rune // ■ palette strip swatch
	Cursor   rune // ▶ selected swatch marker
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Brush:    '●',
			Live:     '◉',
			Active:   '◆',
			EmptyDot: '·',
			Swatch:   '■',
			Cursor:   '▶',
		},
	}
}

// Chrome color roles mapped to palette positions (0-1)
const (
	RoleBG     = 0.0
	RoleMuted  = 0.35
	RoleFG     = 0.7
	RoleAccent = 1.0
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

// Color returns a lipgloss color for any normalized value 0-1.
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

// StrokeColor returns the display color for a palette/scale index. These
// come from the fixed note table, not the chrome palette: theming never
// moves a color to a different note.
func (t *Theme) StrokeColor(colorIndex int) lipgloss.Color {
	return lipgloss.Color(scale.Get(colorIndex).Hex)
}

// StrokeStyle returns the style for finalized stroke cells.
func (t *Theme) StrokeStyle(colorIndex int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.StrokeColor(colorIndex))
}

// ActiveStrokeStyle highlights the stroke currently sounding.
func (t *Theme) ActiveStrokeStyle(colorIndex int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.StrokeColor(colorIndex)).Bold(true).Reverse(true)
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}

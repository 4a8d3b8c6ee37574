package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sonastroke/scale"
	"sonastroke/theme"
)

// swatchWidth is the number of terminal columns each palette swatch
// occupies, including trailing space. HitTest depends on it.
const swatchWidth = 4

// PaletteBar is the color strip under the canvas: one swatch per scale
// entry, the selected one marked. Mouse hits map back to color indexes.
type PaletteBar struct {
	Selected int
}

func NewPaletteBar() *PaletteBar {
	return &PaletteBar{}
}

// View renders the strip plus the selected entry's note and instrument.
func (p *PaletteBar) View(th *theme.Theme) string {
	var out strings.Builder
	for i := 0; i < scale.Size; i++ {
		style := lipgloss.NewStyle().Foreground(th.StrokeColor(i))
		marker := ' '
		if i == p.Selected {
			marker = th.Symbols.Cursor
		}
		out.WriteRune(marker)
		out.WriteString(style.Render(strings.Repeat(string(th.Symbols.Swatch), 2)))
		out.WriteByte(' ')
	}

	entry := scale.Get(p.Selected)
	label := lipgloss.NewStyle().Foreground(th.Muted()).
		Render(fmt.Sprintf("  %s %s", entry.Note, entry.Color))
	out.WriteString(label)
	return out.String()
}

// HitTest maps a column within the bar to a color index.
func (p *PaletteBar) HitTest(x int) (colorIndex int, ok bool) {
	if x < 0 {
		return 0, false
	}
	idx := x / swatchWidth
	if idx >= scale.Size {
		return 0, false
	}
	return idx, true
}

// Tooltip describes one swatch for the hover line.
func (p *PaletteBar) Tooltip(colorIndex int) string {
	entry := scale.Get(colorIndex)
	return fmt.Sprintf("%s · %s · %s", entry.Color, entry.Note, entry.Instrument)
}

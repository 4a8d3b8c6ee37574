package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sonastroke/canvas"
	"sonastroke/theme"
)

// Easel renders the stroke document onto a cell grid. Strokes are plotted
// as line segments between consecutive points, later strokes drawn over
// earlier ones, the in-progress gesture on top of everything. During
// replay the active stroke is re-plotted in highlight style.
type Easel struct {
	width  int
	height int
}

type cell struct {
	r     rune
	style lipgloss.Style
	set   bool
}

func NewEasel(width, height int) *Easel {
	return &Easel{width: width, height: height}
}

// Resize adjusts the grid to the terminal region reserved for the canvas.
func (e *Easel) Resize(width, height int) {
	if width > 0 {
		e.width = width
	}
	if height > 0 {
		e.height = height
	}
}

func (e *Easel) Width() int  { return e.width }
func (e *Easel) Height() int { return e.height }

// View renders the grid. live holds the in-progress point buffer (nil when
// no gesture is in flight); activeIdx is the stroke currently sounding
// during replay, -1 for none.
func (e *Easel) View(strokes []canvas.Stroke, live []canvas.Point, liveColor int, activeIdx int, th *theme.Theme) string {
	grid := make([][]cell, e.height)
	for y := range grid {
		grid[y] = make([]cell, e.width)
	}

	for i, st := range strokes {
		style := th.StrokeStyle(st.ColorIndex)
		r := th.Symbols.Brush
		if i == activeIdx {
			style = th.ActiveStrokeStyle(st.ColorIndex)
			r = th.Symbols.Active
		}
		e.plotStroke(grid, st.Points, r, style)
	}

	if len(live) > 0 {
		style := th.StrokeStyle(liveColor)
		e.plotStroke(grid, live, th.Symbols.Live, style)
	}

	dotStyle := lipgloss.NewStyle().Foreground(th.Muted())
	dot := dotStyle.Render(string(th.Symbols.EmptyDot))

	var out strings.Builder
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			c := grid[y][x]
			if c.set {
				out.WriteString(c.style.Render(string(c.r)))
			} else if x%8 == 4 && y%4 == 2 {
				// sparse grid texture so the empty canvas reads as a surface
				out.WriteString(dot)
			} else {
				out.WriteByte(' ')
			}
		}
		if y < e.height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (e *Easel) plotStroke(grid [][]cell, points []canvas.Point, r rune, style lipgloss.Style) {
	if len(points) == 0 {
		return
	}
	prev := points[0]
	e.plotCell(grid, int(prev.X), int(prev.Y), r, style)
	for _, p := range points[1:] {
		e.plotSegment(grid, int(prev.X), int(prev.Y), int(p.X), int(p.Y), r, style)
		prev = p
	}
}

// plotSegment draws a Bresenham line between two cells.
func (e *Easel) plotSegment(grid [][]cell, x0, y0, x1, y1 int, r rune, style lipgloss.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		e.plotCell(grid, x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (e *Easel) plotCell(grid [][]cell, x, y int, r rune, style lipgloss.Style) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = cell{r: r, style: style, set: true}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

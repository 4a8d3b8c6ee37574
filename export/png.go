// Package export renders a finished sketch to shareable files. The live
// TUI view draws cells; exports redraw the same strokes as real geometry.
package export

import (
	"github.com/gogpu/gg"

	"sonastroke/canvas"
	"sonastroke/scale"
)

// Terminal cells are roughly twice as tall as wide; exports scale canvas
// coordinates unevenly so sketches keep their drawn proportions.
const (
	cellPxX = 12
	cellPxY = 24
)

// PNG renders the strokes into a PNG file. cols and rows are the canvas
// size in cells that the strokes were drawn against.
func PNG(path string, strokes []canvas.Stroke, cols, rows int) error {
	width := cols * cellPxX
	height := rows * cellPxY

	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetLineWidth(4)
	for _, st := range strokes {
		if len(st.Points) == 0 {
			continue
		}
		dc.SetHexColor(scale.Get(st.ColorIndex).Hex)

		dc.MoveTo(st.Points[0].X*cellPxX, st.Points[0].Y*cellPxY)
		for _, p := range st.Points[1:] {
			dc.LineTo(p.X*cellPxX, p.Y*cellPxY)
		}
		if len(st.Points) == 1 {
			// a tap still leaves a mark
			dc.DrawPoint(st.Points[0].X*cellPxX, st.Points[0].Y*cellPxY, 3)
			if err := dc.Fill(); err != nil {
				return err
			}
			continue
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	return dc.SavePNG(path)
}

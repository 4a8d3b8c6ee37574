package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"sonastroke/canvas"
	"sonastroke/scale"
)

// pdfScale maps canvas cells to millimeters on a landscape A4 page.
const (
	pdfScaleX = 2.5
	pdfScaleY = 5.0
)

// PDF writes the strokes as colored line segments to a PDF file.
func PDF(path string, strokes []canvas.Stroke) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()
	p.SetLineWidth(0.8)
	p.SetLineCapStyle("round")

	for _, st := range strokes {
		r, g, b, err := hexToRGB(scale.Get(st.ColorIndex).Hex)
		if err != nil {
			return err
		}
		p.SetDrawColor(r, g, b)

		for i := 1; i < len(st.Points); i++ {
			p.Line(
				st.Points[i-1].X*pdfScaleX, st.Points[i-1].Y*pdfScaleY,
				st.Points[i].X*pdfScaleX, st.Points[i].Y*pdfScaleY,
			)
		}
	}
	return p.OutputFileAndClose(path)
}

func hexToRGB(hex string) (r, g, b int, err error) {
	_, err = fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return r, g, b, err
}

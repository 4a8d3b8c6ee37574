package export

import (
	"os"
	"path/filepath"
	"testing"

	"sonastroke/canvas"
)

func sampleStrokes() []canvas.Stroke {
	return []canvas.Stroke{
		{ID: "a", ColorIndex: 0, Points: []canvas.Point{{X: 1, Y: 1}, {X: 10, Y: 5}, {X: 20, Y: 2}}},
		{ID: "b", ColorIndex: 4, Points: []canvas.Point{{X: 5, Y: 8}}},
	}
}

func TestPNGWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := PNG(path, sampleStrokes(), 40, 12); err != nil {
		t.Fatalf("export: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("exported PNG is empty")
	}
}

func TestPNGEmptyCanvasStillExports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := PNG(path, nil, 40, 12); err != nil {
		t.Fatalf("export: %v", err)
	}
}

func TestPDFWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := PDF(path, sampleStrokes()); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Fatal("exported file is not a PDF")
	}
}

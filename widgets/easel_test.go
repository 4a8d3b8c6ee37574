package widgets

import (
	"strings"
	"testing"

	"sonastroke/canvas"
	"sonastroke/theme"
)

func testTheme() *theme.Theme {
	return theme.New(theme.DefaultPalette())
}

func countSet(grid [][]cell) int {
	n := 0
	for _, row := range grid {
		for _, c := range row {
			if c.set {
				n++
			}
		}
	}
	return n
}

func newGrid(w, h int) [][]cell {
	grid := make([][]cell, h)
	for y := range grid {
		grid[y] = make([]cell, w)
	}
	return grid
}

func TestViewHasOneLinePerRow(t *testing.T) {
	e := NewEasel(20, 5)
	out := e.View(nil, nil, 0, -1, testTheme())
	if lines := strings.Split(out, "\n"); len(lines) != 5 {
		t.Fatalf("view has %d lines, want 5", len(lines))
	}
}

func TestPlotSegmentConnectsEndpoints(t *testing.T) {
	e := NewEasel(10, 10)
	grid := newGrid(10, 10)

	e.plotSegment(grid, 0, 0, 9, 9, '●', testTheme().StrokeStyle(0))

	if !grid[0][0].set || !grid[9][9].set {
		t.Fatal("segment endpoints not plotted")
	}
	// A 45 degree line covers exactly one cell per row.
	if got := countSet(grid); got != 10 {
		t.Fatalf("diagonal set %d cells, want 10", got)
	}
}

func TestPlotSegmentHorizontalAndVertical(t *testing.T) {
	e := NewEasel(10, 10)

	grid := newGrid(10, 10)
	e.plotSegment(grid, 2, 4, 7, 4, '●', testTheme().StrokeStyle(0))
	for x := 2; x <= 7; x++ {
		if !grid[4][x].set {
			t.Fatalf("horizontal segment missing cell x=%d", x)
		}
	}

	grid = newGrid(10, 10)
	e.plotSegment(grid, 3, 8, 3, 1, '●', testTheme().StrokeStyle(0))
	for y := 1; y <= 8; y++ {
		if !grid[y][3].set {
			t.Fatalf("vertical segment missing cell y=%d", y)
		}
	}
}

func TestPlotClipsOutOfBounds(t *testing.T) {
	e := NewEasel(5, 5)
	grid := newGrid(5, 5)

	points := []canvas.Point{{X: -3, Y: 2}, {X: 8, Y: 2}}
	e.plotStroke(grid, points, '●', testTheme().StrokeStyle(0))

	for x := 0; x < 5; x++ {
		if !grid[2][x].set {
			t.Fatalf("in-bounds cell x=%d not plotted", x)
		}
	}
}

func TestSinglePointStrokePlotsOneCell(t *testing.T) {
	e := NewEasel(10, 10)
	grid := newGrid(10, 10)

	e.plotStroke(grid, []canvas.Point{{X: 4, Y: 6}}, '●', testTheme().StrokeStyle(3))

	if got := countSet(grid); got != 1 {
		t.Fatalf("set %d cells, want 1", got)
	}
	if !grid[6][4].set {
		t.Fatal("cell (4,6) not plotted")
	}
}

func TestResizeIgnoresNonPositiveSizes(t *testing.T) {
	e := NewEasel(40, 10)
	e.Resize(0, -5)
	if e.Width() != 40 || e.Height() != 10 {
		t.Fatalf("size = %dx%d, want 40x10", e.Width(), e.Height())
	}
	e.Resize(80, 24)
	if e.Width() != 80 || e.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", e.Width(), e.Height())
	}
}

package canvas

import "github.com/google/uuid"

// Point is a coordinate in canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one recorded gesture: the points in drawing order plus the
// palette color active when the gesture began. A Stroke is immutable once
// the gesture that produced it ends.
type Stroke struct {
	ID         string  `json:"id"`
	Points     []Point `json:"points"`
	ColorIndex int     `json:"colorIndex"`
}

// newStroke finalizes an in-progress point buffer into a Stroke. The ID is
// fresh on every call - an undone stroke never gets its ID back.
func newStroke(points []Point, colorIndex int) Stroke {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Stroke{
		ID:         uuid.NewString(),
		Points:     pts,
		ColorIndex: colorIndex,
	}
}

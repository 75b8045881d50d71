package robot

import "fmt"

// DefaultSize is the edge length of the standard table top.
const DefaultSize = 5

// Position is a cell on the table top.
type Position struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a square table top covering [0, Size-1] on both axes.
type Grid struct {
	Size int
}

// NewGrid returns a grid with the given edge length.
func NewGrid(size int) (Grid, error) {
	if size < 1 {
		return Grid{}, fmt.Errorf("grid size must be at least 1, got %d", size)
	}
	return Grid{Size: size}, nil
}

// Min is the smallest valid coordinate.
func (g Grid) Min() int { return 0 }

// Max is the largest valid coordinate.
func (g Grid) Max() int { return g.Size - 1 }

// InBounds reports whether p lies on the table.
func (g Grid) InBounds(p Position) bool {
	return p.X >= g.Min() && p.X <= g.Max() && p.Y >= g.Min() && p.Y <= g.Max()
}

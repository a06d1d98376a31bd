package raycast

import (
	"fmt"
)

// Grid is an immutable 2D occupancy map indexed [y][x].
// Cell values are non-negative: 0 is passable, anything greater is a
// wall. The grid is supplied at init and shared read-only by the
// raycaster and the systems; no runtime writer exists, so it is safe
// to share without synchronization.
type Grid struct {
	cells  [][]int
	width  int
	height int
}

// NewGrid validates and wraps an occupancy map. The backing slice is
// owned by the grid after the call; callers must not mutate it.
func NewGrid(cells [][]int) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("grid must have at least one row and column")
	}
	width := len(cells[0])
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("grid row %d has %d cells, want %d", y, len(row), width)
		}
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("grid cell (%d,%d) is negative", x, y)
			}
		}
	}
	return &Grid{cells: cells, width: width, height: len(cells)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the cell coordinates lie inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Cell returns the occupancy value at (x, y). Out-of-bounds cells read
// as walls, matching the raycaster's boundary-hit rule.
func (g *Grid) Cell(x, y int) int {
	if !g.InBounds(x, y) {
		return 1
	}
	return g.cells[y][x]
}

// Solid reports whether the cell blocks rays.
func (g *Grid) Solid(x, y int) bool {
	return g.Cell(x, y) > 0
}

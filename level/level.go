// Package level owns the occupancy-grid wire format and initial entity
// placement. The engine core consumes only the parsed Grid and the
// placement list.
package level

import (
	"fmt"

	"gridfire/raycast"
)

// PlacementKind tags a spawn marker found in a map.
type PlacementKind uint8

const (
	PlacementPlayer PlacementKind = iota
	PlacementEnemy
)

// Placement is a spawn point in world units, centered in its cell.
type Placement struct {
	Kind PlacementKind
	X, Y float64
}

// Parse builds a grid and spawn placements from an ASCII map.
//
//	'#'      wall (occupancy 1)
//	'1'-'9'  wall with that occupancy value
//	'.' ' '  passable floor
//	'P'      player spawn (floor)
//	'E'      enemy spawn (floor)
//
// All rows must have equal length.
func Parse(lines []string) (*raycast.Grid, []Placement, error) {
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("level: empty map")
	}

	width := len(lines[0])
	cells := make([][]int, len(lines))
	var placements []Placement

	for y, line := range lines {
		if len(line) != width {
			return nil, nil, fmt.Errorf("level: row %d has %d cells, want %d", y, len(line), width)
		}
		cells[y] = make([]int, width)
		for x, ch := range line {
			switch {
			case ch == '#':
				cells[y][x] = 1
			case ch >= '1' && ch <= '9':
				cells[y][x] = int(ch - '0')
			case ch == '.' || ch == ' ':
				// floor
			case ch == 'P':
				placements = append(placements, Placement{
					Kind: PlacementPlayer,
					X:    float64(x) + 0.5,
					Y:    float64(y) + 0.5,
				})
			case ch == 'E':
				placements = append(placements, Placement{
					Kind: PlacementEnemy,
					X:    float64(x) + 0.5,
					Y:    float64(y) + 0.5,
				})
			default:
				return nil, nil, fmt.Errorf("level: unknown map rune %q at (%d,%d)", ch, x, y)
			}
		}
	}

	grid, err := raycast.NewGrid(cells)
	if err != nil {
		return nil, nil, err
	}
	return grid, placements, nil
}

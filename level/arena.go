package level

import (
	"math/rand"
	"time"

	"gridfire/raycast"
)

// ArenaConfig controls procedural arena generation.
type ArenaConfig struct {
	Width, Height int

	// Braiding: 0.0 keeps the carved tree as-is (dead ends remain),
	// 1.0 opens a loop at every dead end that can safely take one.
	Braiding float64

	// Enemies is the number of enemy spawns scattered on floor cells.
	Enemies int

	Seed int64 // 0 = time-derived
}

// ArenaResult is a generated level: a bordered occupancy grid plus
// spawn placements (one player at the carve origin, enemies spread
// over distant floor cells).
type ArenaResult struct {
	Grid       *raycast.Grid
	Placements []Placement
}

// GenerateArena carves a braided maze arena with a recursive
// backtracker. Dimensions round down to odd so every corridor keeps a
// wall shell; the outer border is always solid.
func GenerateArena(cfg ArenaConfig) ArenaResult {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	cells := make([][]int, rows)
	for y := range cells {
		cells[y] = make([]int, cols)
		for x := range cells[y] {
			cells[y][x] = 1
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	carve(cells, 1, 1, rng)
	if cfg.Braiding > 0 {
		braid(cells, cfg.Braiding, rng)
	}

	placements := []Placement{{
		Kind: PlacementPlayer,
		X:    1.5,
		Y:    1.5,
	}}

	// Enemy spawns: floor cells outside the player corner, shuffled so
	// spawns spread over the arena instead of clustering near the origin
	floors := make([][2]int, 0, rows*cols/2)
	for y := 1; y < rows-1; y++ {
		for x := 1; x < cols-1; x++ {
			if cells[y][x] == 0 && (x > 2 || y > 2) {
				floors = append(floors, [2]int{x, y})
			}
		}
	}
	rng.Shuffle(len(floors), func(i, j int) {
		floors[i], floors[j] = floors[j], floors[i]
	})
	n := cfg.Enemies
	if n > len(floors) {
		n = len(floors)
	}
	for i := 0; i < n; i++ {
		placements = append(placements, Placement{
			Kind: PlacementEnemy,
			X:    float64(floors[i][0]) + 0.5,
			Y:    float64(floors[i][1]) + 0.5,
		})
	}

	grid, err := raycast.NewGrid(cells)
	if err != nil {
		// Unreachable: dimensions are validated by ensureOdd
		panic(err)
	}
	return ArenaResult{Grid: grid, Placements: placements}
}

// carve runs an iterative recursive backtracker over the odd-node
// lattice, knocking out the wall between visited nodes.
func carve(cells [][]int, startX, startY int, rng *rand.Rand) {
	rows, cols := len(cells), len(cells[0])
	type point struct{ x, y int }

	stack := []point{{startX, startY}}
	cells[startY][startX] = 0

	dirs := []point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := candidates4(cells, curr.x, curr.y, rows, cols)

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := dirs[candidates[rng.Intn(len(candidates))]]
		cells[curr.y+d.y/2][curr.x+d.x/2] = 0
		cells[curr.y+d.y][curr.x+d.x] = 0
		stack = append(stack, point{curr.x + d.x, curr.y + d.y})
	}
}

// candidates4 returns the indices of the four lattice directions whose
// target node is still solid and inside the border.
func candidates4(cells [][]int, x, y, rows, cols int) []int {
	dirs := [4][2]int{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	out := make([]int, 0, 4)
	for i, d := range dirs {
		nx, ny := x+d[0], y+d[1]
		if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && cells[ny][nx] == 1 {
			out = append(out, i)
		}
	}
	return out
}

// braid opens loops at dead ends with the given probability, skipping
// walls whose removal would create a 2x2 open plaza.
func braid(cells [][]int, probability float64, rng *rand.Rand) {
	rows, cols := len(cells), len(cells[0])

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if cells[y][x] != 0 {
				continue
			}
			exits := 0
			for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				if cells[y+d[1]][x+d[0]] == 0 {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			for _, d := range [4][2]int{{0, -2}, {0, 2}, {-2, 0}, {2, 0}} {
				nx, ny := x+d[0], y+d[1]
				wx, wy := x+d[0]/2, y+d[1]/2
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if cells[ny][nx] == 0 && cells[wy][wx] == 1 && !opensPlaza(cells, wx, wy) {
					cells[wy][wx] = 0
					break
				}
			}
		}
	}
}

// opensPlaza reports whether clearing (x, y) would complete a 2x2 open
// block in any surrounding quadrant.
func opensPlaza(cells [][]int, x, y int) bool {
	rows, cols := len(cells), len(cells[0])
	open := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return cells[ty][tx] == 0
	}
	if open(x-1, y-1) && open(x, y-1) && open(x-1, y) {
		return true
	}
	if open(x, y-1) && open(x+1, y-1) && open(x+1, y) {
		return true
	}
	if open(x-1, y) && open(x-1, y+1) && open(x, y+1) {
		return true
	}
	if open(x+1, y) && open(x, y+1) && open(x+1, y+1) {
		return true
	}
	return false
}

// ensureOdd rounds n down to the nearest odd value, minimum 5.
func ensureOdd(n int) int {
	if n < 5 {
		n = 5
	}
	if n%2 == 0 {
		n--
	}
	return n
}

package raycast

import (
	"math"
	"testing"

	"gridfire/vmath"
)

// borderedRoom builds an n×n grid with a solid outer ring and empty
// interior.
func borderedRoom(n int) *Grid {
	cells := make([][]int, n)
	for y := range cells {
		cells[y] = make([]int, n)
		for x := range cells[y] {
			if x == 0 || y == 0 || x == n-1 || y == n-1 {
				cells[y][x] = 1
			}
		}
	}
	g, err := NewGrid(cells)
	if err != nil {
		panic(err)
	}
	return g
}

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(nil); err == nil {
		t.Error("Expected error for empty grid")
	}
	if _, err := NewGrid([][]int{{0, 0}, {0}}); err == nil {
		t.Error("Expected error for ragged grid")
	}
	if _, err := NewGrid([][]int{{0, -1}}); err == nil {
		t.Error("Expected error for negative cell")
	}
}

// TestCastAxisDistance verifies the perpendicular distance for an
// axis-aligned ray is exact.
func TestCastAxisDistance(t *testing.T) {
	g := borderedRoom(5)
	hit, ok := Cast(g, Ray{
		Origin: vmath.Vec2F{X: 2.5, Y: 2.5},
		Dir:    vmath.Vec2F{X: 1, Y: 0},
	})
	if !ok {
		t.Fatal("Expected a wall hit")
	}
	// Wall ring cell starts at x=4: 4 - 2.5 = 1.5
	if math.Abs(hit.PerpDist-1.5) > 1e-9 {
		t.Errorf("Expected perp distance 1.5, got %v", hit.PerpDist)
	}
	if hit.Axis != AxisX {
		t.Errorf("Expected X axis hit, got %v", hit.Axis)
	}
	if hit.Boundary {
		t.Error("Expected interior wall, not boundary")
	}
	if math.Abs(hit.Point.X-4.0) > 1e-9 || math.Abs(hit.Point.Y-2.5) > 1e-9 {
		t.Errorf("Expected hit point (4, 2.5), got %v", hit.Point)
	}
}

// TestCastBoundedInRoom verifies rays from the center of a bordered
// room always hit, at a positive distance bounded by the room
// geometry: N/2 for cardinal rays, the corner diagonal for the rest.
func TestCastBoundedInRoom(t *testing.T) {
	const n = 11
	g := borderedRoom(n)
	center := vmath.Vec2F{X: n / 2.0, Y: n / 2.0}

	cardinalBound := n/2.0 + 1e-6
	diagBound := (n/2.0-1)*math.Sqrt2 + 1e-6

	for i := 0; i < 16; i++ {
		angle := float64(i) * math.Pi / 8
		dir := vmath.Vec2F{X: math.Cos(angle), Y: math.Sin(angle)}
		hit, ok := Cast(g, Ray{Origin: center, Dir: dir})
		if !ok {
			t.Fatalf("Expected hit for angle %v", angle)
		}
		if hit.PerpDist <= 0 {
			t.Errorf("Expected positive perp distance for angle %v, got %v", angle, hit.PerpDist)
		}
		if hit.PerpDist > diagBound {
			t.Errorf("Expected perp distance under %v for angle %v, got %v", diagBound, angle, hit.PerpDist)
		}
		if i%4 == 0 && hit.PerpDist > cardinalBound {
			t.Errorf("Expected cardinal perp distance under %v, got %v", cardinalBound, hit.PerpDist)
		}
	}
}

// TestCastLeavingGridIsBoundaryHit verifies a ray leaving an unbordered
// grid terminates normally as a boundary wall.
func TestCastLeavingGridIsBoundaryHit(t *testing.T) {
	cells := make([][]int, 4)
	for y := range cells {
		cells[y] = make([]int, 4)
	}
	g, _ := NewGrid(cells)

	hit, ok := Cast(g, Ray{
		Origin: vmath.Vec2F{X: 2.0, Y: 2.0},
		Dir:    vmath.Vec2F{X: 1, Y: 0},
	})
	if !ok {
		t.Fatal("Expected boundary hit")
	}
	if !hit.Boundary {
		t.Error("Expected Boundary flag on out-of-grid hit")
	}
	// First out-of-bounds cell is x=4, entered at distance 2
	if math.Abs(hit.PerpDist-2.0) > 1e-9 {
		t.Errorf("Expected perp distance 2, got %v", hit.PerpDist)
	}
}

// TestCastMaxDistanceMiss verifies exceeding the distance budget is a
// representable no-hit, distinct from a distance-zero hit.
func TestCastMaxDistanceMiss(t *testing.T) {
	g := borderedRoom(9)
	_, ok := Cast(g, Ray{
		Origin:      vmath.Vec2F{X: 4.5, Y: 4.5},
		Dir:         vmath.Vec2F{X: 1, Y: 0},
		MaxDistance: 1.0,
	})
	if ok {
		t.Error("Expected miss when wall is beyond max distance")
	}

	hit, ok := Cast(g, Ray{
		Origin:      vmath.Vec2F{X: 4.5, Y: 4.5},
		Dir:         vmath.Vec2F{X: 1, Y: 0},
		MaxDistance: 10.0,
	})
	if !ok || hit.PerpDist <= 0 {
		t.Errorf("Expected hit with positive distance inside budget, got ok=%v dist=%v", ok, hit.PerpDist)
	}
}

// TestCastDegenerateDirection verifies a zero-length direction is
// recovered locally as a miss instead of aborting.
func TestCastDegenerateDirection(t *testing.T) {
	g := borderedRoom(5)
	if _, ok := Cast(g, Ray{Origin: vmath.Vec2F{X: 2.5, Y: 2.5}}); ok {
		t.Error("Expected miss for zero direction")
	}
}

// TestCastOriginInsideWall verifies a ray starting inside a wall cell
// reports a hit with the epsilon-clamped distance, never zero or NaN.
func TestCastOriginInsideWall(t *testing.T) {
	g := borderedRoom(5)
	hit, ok := Cast(g, Ray{
		Origin: vmath.Vec2F{X: 0.5, Y: 0.5},
		Dir:    vmath.Vec2F{X: 1, Y: 0},
	})
	if !ok {
		t.Fatal("Expected immediate hit inside wall cell")
	}
	if hit.PerpDist <= 0 || math.IsNaN(hit.PerpDist) || math.IsInf(hit.PerpDist, 0) {
		t.Errorf("Expected clamped finite positive distance, got %v", hit.PerpDist)
	}
}

// TestCastNormalizesDirection verifies an unnormalized direction gives
// the same distances as its unit form.
func TestCastNormalizesDirection(t *testing.T) {
	g := borderedRoom(7)
	origin := vmath.Vec2F{X: 3.5, Y: 3.5}

	unit, ok1 := Cast(g, Ray{Origin: origin, Dir: vmath.Vec2F{X: 1, Y: 1}})
	scaled, ok2 := Cast(g, Ray{Origin: origin, Dir: vmath.Vec2F{X: 10, Y: 10}})

	if !ok1 || !ok2 {
		t.Fatal("Expected hits for both rays")
	}
	if math.Abs(unit.PerpDist-scaled.PerpDist) > 1e-9 {
		t.Errorf("Expected identical distances, got %v and %v", unit.PerpDist, scaled.PerpDist)
	}
}

package raycast

import (
	"math"

	"gridfire/vmath"
)

// perpEpsilon is the floor for perpendicular distances. A degenerate
// ray or grazing crossing clamps here instead of propagating zero, a
// negative value, NaN or Inf into projection math.
const perpEpsilon = 1e-6

// cellVisit is one DDA step: the cell being entered and the ray
// parameter range the ray spends inside it. Step and axis fields
// expose how the traversal entered the cell so visitors can compute
// perpendicular distances without re-deriving the setup.
type cellVisit struct {
	x, y         int
	enter, exit  float64
	axis         Axis
	stepX, stepY int
}

// traverse walks the grid cell-by-cell from the ray origin along a
// unit direction. It implements the DDA stepping loop exactly once;
// the render and hit-scan policies differ only in the visit callback,
// which returns false to stop.
//
// The caller must pass a normalized direction so ray parameters are
// Euclidean distances. The loop itself never terminates on distance;
// every policy stops via its visitor (wall, bounds or max distance),
// so visitors must bound their own traversal.
func traverse(origin, dir vmath.Vec2F, visit func(v cellVisit) bool) {
	mapX := int(math.Floor(origin.X))
	mapY := int(math.Floor(origin.Y))

	deltaDistX := math.Inf(1)
	if dir.X != 0 {
		deltaDistX = math.Abs(1 / dir.X)
	}
	deltaDistY := math.Inf(1)
	if dir.Y != 0 {
		deltaDistY = math.Abs(1 / dir.Y)
	}

	// Step sign and distance from the origin to the first grid line
	// on each axis
	stepX, stepY := 1, 1
	var sideDistX, sideDistY float64
	if dir.X < 0 {
		stepX = -1
		sideDistX = (origin.X - float64(mapX)) * deltaDistX
	} else {
		sideDistX = (float64(mapX) + 1 - origin.X) * deltaDistX
	}
	if dir.Y < 0 {
		stepY = -1
		sideDistY = (origin.Y - float64(mapY)) * deltaDistY
	} else {
		sideDistY = (float64(mapY) + 1 - origin.Y) * deltaDistY
	}

	enter := 0.0
	axis := AxisX

	for {
		exit := math.Min(sideDistX, sideDistY)
		if !visit(cellVisit{
			x: mapX, y: mapY,
			enter: enter, exit: exit,
			axis:  axis,
			stepX: stepX, stepY: stepY,
		}) {
			return
		}

		// Advance along whichever axis reaches the next grid line
		// soonest; record which axis was stepped
		if sideDistX < sideDistY {
			enter = sideDistX
			sideDistX += deltaDistX
			mapX += stepX
			axis = AxisX
		} else {
			enter = sideDistY
			sideDistY += deltaDistY
			mapY += stepY
			axis = AxisY
		}
	}
}

// perpDistance computes the perpendicular wall distance for a crossing
// into cell (mapX, mapY) along the stepped axis. Non-finite or
// non-positive results clamp to perpEpsilon rather than aborting the
// frame.
func perpDistance(origin, dir vmath.Vec2F, v cellVisit) float64 {
	var perp float64
	if v.axis == AxisX {
		perp = (float64(v.x) - origin.X + (1-float64(v.stepX))/2) / dir.X
	} else {
		perp = (float64(v.y) - origin.Y + (1-float64(v.stepY))/2) / dir.Y
	}
	if perp <= 0 || math.IsNaN(perp) || math.IsInf(perp, 0) {
		return perpEpsilon
	}
	return perp
}

// maxDistanceOf resolves a ray's distance bound; non-positive means
// unbounded.
func maxDistanceOf(ray Ray) float64 {
	if ray.MaxDistance <= 0 {
		return math.Inf(1)
	}
	return ray.MaxDistance
}

// Cast traces a ray against grid geometry only. It returns the wall or
// boundary hit and true, or a zero Hit and false when the ray exceeds
// its max distance without touching anything. A zero-length direction
// is recovered locally as a miss.
func Cast(g *Grid, ray Ray) (Hit, bool) {
	dir := vmath.V2FNormalize(ray.Dir)
	if dir.X == 0 && dir.Y == 0 {
		return Hit{}, false
	}
	maxDist := maxDistanceOf(ray)

	var hit Hit
	found := false

	traverse(ray.Origin, dir, func(v cellVisit) bool {
		if v.enter > maxDist {
			return false
		}
		if !g.InBounds(v.x, v.y) || g.cells[v.y][v.x] > 0 {
			perp := perpDistance(ray.Origin, dir, v)
			hit = Hit{
				Point:    vmath.V2FAdd(ray.Origin, vmath.V2FScale(dir, v.enter)),
				PerpDist: perp,
				Axis:     v.axis,
				Boundary: !g.InBounds(v.x, v.y),
			}
			found = true
			return false
		}
		return true
	})

	return hit, found
}

package raycast

import (
	"gridfire/core"
	"gridfire/vmath"
)

// DefaultHitRadiusSq is the squared proximity radius inside which a
// target counts as struck by a hit-scan ray. Radius 1.6 grid units:
// generous enough that aiming down a corridor registers targets a cell
// and a half off the exact ray line.
const DefaultHitRadiusSq = 2.56

// Target is a candidate entity for hit-scan resolution.
type Target struct {
	Entity core.Entity
	Pos    vmath.Vec2F
}

// CastHitScan traces a single ray and resolves it against both grid
// geometry and the given targets. At every DDA step the targets are
// tested for proximity to the ray's closest point on the traversed
// segment; the first target within hitRadiusSq at the smallest ray
// parameter wins. A wall cell still terminates the ray, so targets
// behind it are occluded.
//
// Returns the entity or wall hit and true, or a zero Hit and false
// when the ray runs out of distance.
func CastHitScan(g *Grid, ray Ray, targets []Target, hitRadiusSq float64) (Hit, bool) {
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

		// Wall test first: entering a solid cell stops the ray before
		// any target inside or behind it can be reached
		if !g.InBounds(v.x, v.y) || g.cells[v.y][v.x] > 0 {
			hit = Hit{
				Point:    vmath.V2FAdd(ray.Origin, vmath.V2FScale(dir, v.enter)),
				PerpDist: perpDistance(ray.Origin, dir, v),
				Axis:     v.axis,
				Boundary: !g.InBounds(v.x, v.y),
			}
			found = true
			return false
		}

		// Proximity test over the segment the ray spends in this cell
		segEnd := v.exit
		if segEnd > maxDist {
			segEnd = maxDist
		}
		bestT := segEnd + 1
		var bestTarget Target
		for _, t := range targets {
			// Closest approach of the ray to the target. A target whose
			// closest approach lies past this cell is deferred to a later
			// step; one behind the segment is tested at the cell entry.
			param := vmath.V2FDot(vmath.V2FSub(t.Pos, ray.Origin), dir)
			if param > segEnd {
				continue
			}
			if param < v.enter {
				param = v.enter
			}
			closest := vmath.V2FAdd(ray.Origin, vmath.V2FScale(dir, param))
			if vmath.V2FDistSq(closest, t.Pos) <= hitRadiusSq && param < bestT {
				bestT = param
				bestTarget = t
			}
		}
		if bestT <= segEnd {
			perp := bestT
			if perp < perpEpsilon {
				perp = perpEpsilon
			}
			hit = Hit{
				Entity:   bestTarget.Entity,
				Point:    vmath.V2FAdd(ray.Origin, vmath.V2FScale(dir, bestT)),
				PerpDist: perp,
				Axis:     v.axis,
			}
			found = true
			return false
		}

		return true
	})

	return hit, found
}

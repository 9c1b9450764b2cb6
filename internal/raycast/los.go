package raycast

import (
	"math"

	"gridcaster/internal/world"
)

// HasLineOfSight casts a single ray from (ox, oy) at theta and reports
// whether it reaches target before a wall.
//
// Each sweep stops at whichever comes first, the target tile or a wall, and
// records that distance. The two sweeps are combined by taking the larger
// distance of each kind: LOS holds when the target was seen (distance > 0)
// closer than the wall, or when neither sweep met a wall at all.
func (c *Caster) HasLineOfSight(ox, oy, theta float64, target world.Tile) bool {
	if world.TileAt(ox, oy) == target {
		return true
	}

	stop := func(t world.Tile) bool {
		return t == target || c.grid.IsWall(t)
	}
	sinA, cosA := math.Sincos(theta)

	var targetDist, wallDist float64
	for _, h := range []sweepHit{
		sweepVertical(ox, oy, sinA, cosA, c.maxDepth, stop),
		sweepHorizontal(ox, oy, sinA, cosA, c.maxDepth, stop),
	} {
		if !h.hit {
			continue
		}
		if h.tile == target {
			targetDist = math.Max(targetDist, h.depth)
		} else {
			wallDist = math.Max(wallDist, h.depth)
		}
	}

	return (targetDist > 0 && targetDist < wallDist) || wallDist == 0
}

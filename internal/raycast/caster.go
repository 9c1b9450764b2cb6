package raycast

import (
	"math"

	"gridcaster/internal/config"
	"gridcaster/internal/mathutil"
	"gridcaster/internal/player"
	"gridcaster/internal/threading/core"
	"gridcaster/internal/world"
)

// RayResult is what one ray found. Depth is the fish-eye corrected
// perpendicular distance; RawDepth is the distance along the ray.
type RayResult struct {
	Depth      float64
	ProjHeight float64
	TextureID  int     // 0 when nothing was hit within max depth
	Offset     float64 // position along the wall face, [0, 1)
	RawDepth   float64
	Vertical   bool // hit came from the vertical-line sweep
}

// Hit reports whether the ray found a wall.
func (r RayResult) Hit() bool {
	return r.TextureID != 0
}

// Caster casts the per-frame fan of rays over a read-only grid.
type Caster struct {
	grid     *world.GridMap
	proj     config.Projection
	maxDepth int
	angleEps float64
	depthEps float64
	pool     *core.WorkerPool
}

// NewCaster creates a caster for grid using the fixed projection constants.
func NewCaster(grid *world.GridMap, proj config.Projection, rc config.RaycastingConfig) *Caster {
	return &Caster{
		grid:     grid,
		proj:     proj,
		maxDepth: rc.MaxDepth,
		angleEps: rc.AngleEpsilon,
		depthEps: rc.DepthEpsilon,
	}
}

// UseWorkerPool spreads rays across pool. Pass nil to cast sequentially.
func (c *Caster) UseWorkerPool(pool *core.WorkerPool) {
	c.pool = pool
}

// Projection returns the constants the caster was built with.
func (c *Caster) Projection() config.Projection {
	return c.proj
}

// RayAngle returns the absolute angle of ray i for a viewer facing angle.
// The epsilon nudge is applied once to the whole fan so no ray starts
// exactly on an axis.
func (c *Caster) RayAngle(angle float64, i int) float64 {
	return angle - c.proj.HalfFOV + c.angleEps + float64(i)*c.proj.DeltaAngle
}

// CastRays returns NumRays results ordered left to right.
func (c *Caster) CastRays(s player.State) []RayResult {
	results := make([]RayResult, c.proj.NumRays)
	castOne := func(i int) {
		results[i] = c.castRay(s, c.RayAngle(s.Angle, i))
	}

	if c.pool != nil && c.pool.GetNumWorkers() > 1 {
		c.pool.ParallelFor(0, len(results), castOne)
		return results
	}
	for i := range results {
		castOne(i)
	}
	return results
}

// castRay resolves one ray at rayAngle for viewer s.
func (c *Caster) castRay(s player.State, rayAngle float64) RayResult {
	sinA, cosA := math.Sincos(rayAngle)

	vert := sweepVertical(s.X, s.Y, sinA, cosA, c.maxDepth, c.grid.IsWall)
	hor := sweepHorizontal(s.X, s.Y, sinA, cosA, c.maxDepth, c.grid.IsWall)

	var res RayResult
	switch {
	case !vert.hit && !hor.hit:
		res = RayResult{Depth: NoHitDepth, RawDepth: NoHitDepth}
		res.ProjHeight = c.proj.ScreenDist / (res.Depth + c.depthEps)
		return res
	case vert.depth <= hor.depth:
		// ties go to the vertical sweep
		res.RawDepth = vert.depth
		res.TextureID, _ = c.grid.Texture(vert.tile)
		res.Vertical = true
		y := mathutil.Frac(vert.coord)
		if cosA > 0 {
			res.Offset = y
		} else {
			res.Offset = mathutil.Frac(1 - y)
		}
	default:
		res.RawDepth = hor.depth
		res.TextureID, _ = c.grid.Texture(hor.tile)
		x := mathutil.Frac(hor.coord)
		if sinA > 0 {
			res.Offset = mathutil.Frac(1 - x)
		} else {
			res.Offset = x
		}
	}

	// distance to the projection plane, not along the ray
	res.Depth = res.RawDepth * math.Cos(s.Angle-rayAngle)
	res.ProjHeight = c.proj.ScreenDist / (res.Depth + c.depthEps)
	return res
}

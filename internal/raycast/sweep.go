package raycast

import (
	"math"

	"gridcaster/internal/world"
)

// NoHitDepth is reported by a sweep that ran out of steps.
const NoHitDepth = 1e6

// parallelLimit treats a direction component this small as parallel to the
// grid lines it would have to cross.
const parallelLimit = 1e-12

// sweepHit is where one DDA sweep stopped.
type sweepHit struct {
	depth float64    // Euclidean distance along the ray
	coord float64    // the free coordinate at the hit (y for vertical lines, x for horizontal)
	tile  world.Tile // tile that stopped the sweep
	hit   bool
}

var noHit = sweepHit{depth: NoHitDepth}

// sweepVertical walks the ray across vertical grid lines (x = const) for at
// most maxDepth steps, stopping at the first tile for which stop is true.
func sweepVertical(px, py, sinA, cosA float64, maxDepth int, stop func(world.Tile) bool) sweepHit {
	if math.Abs(cosA) < parallelLimit {
		return noHit
	}
	mapX := math.Floor(px)

	// xVert is the first grid line crossed; tileX is the column beyond it.
	var xVert, dx float64
	var tileX, stepX int
	if cosA > 0 {
		xVert, dx = mapX+1, 1
		tileX, stepX = int(mapX)+1, 1
	} else {
		xVert, dx = mapX, -1
		tileX, stepX = int(mapX)-1, -1
	}

	depth := (xVert - px) / cosA
	yVert := depth*sinA + py

	deltaDepth := dx / cosA
	dy := deltaDepth * sinA

	for i := 0; i < maxDepth; i++ {
		tile := world.Tile{X: tileX, Y: int(math.Floor(yVert))}
		if stop(tile) {
			return sweepHit{depth: depth, coord: yVert, tile: tile, hit: true}
		}
		tileX += stepX
		yVert += dy
		depth += deltaDepth
	}
	return noHit
}

// sweepHorizontal is sweepVertical for horizontal grid lines (y = const).
func sweepHorizontal(px, py, sinA, cosA float64, maxDepth int, stop func(world.Tile) bool) sweepHit {
	if math.Abs(sinA) < parallelLimit {
		return noHit
	}
	mapY := math.Floor(py)

	var yHor, dy float64
	var tileY, stepY int
	if sinA > 0 {
		yHor, dy = mapY+1, 1
		tileY, stepY = int(mapY)+1, 1
	} else {
		yHor, dy = mapY, -1
		tileY, stepY = int(mapY)-1, -1
	}

	depth := (yHor - py) / sinA
	xHor := depth*cosA + px

	deltaDepth := dy / sinA
	dx := deltaDepth * cosA

	for i := 0; i < maxDepth; i++ {
		tile := world.Tile{X: int(math.Floor(xHor)), Y: tileY}
		if stop(tile) {
			return sweepHit{depth: depth, coord: xHor, tile: tile, hit: true}
		}
		xHor += dx
		tileY += stepY
		depth += deltaDepth
	}
	return noHit
}

package world

import "math"

// Tile is an integer grid coordinate.
type Tile struct {
	X, Y int
}

// TileAt returns the tile containing the continuous position (x, y).
func TileAt(x, y float64) Tile {
	return Tile{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Center returns the continuous coordinates of the tile centre.
func (t Tile) Center() (float64, float64) {
	return float64(t.X) + 0.5, float64(t.Y) + 0.5
}

// GridMap is the static wall layout. A tile holding texture id 0 (or lying
// outside the grid) is open space; any other id is a wall with that texture.
type GridMap struct {
	width  int
	height int
	tiles  []uint8 // row-major, index y*width+x
}

// NewGridMap builds a map from rows of texture ids. Rows are assumed to be
// rectangular and ids in range; the loader validates both before calling.
func NewGridMap(rows [][]int) *GridMap {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	g := &GridMap{
		width:  width,
		height: height,
		tiles:  make([]uint8, width*height),
	}
	for y, row := range rows {
		for x, id := range row {
			g.tiles[y*width+x] = uint8(id)
		}
	}
	return g
}

// Width returns the number of columns.
func (g *GridMap) Width() int { return g.width }

// Height returns the number of rows.
func (g *GridMap) Height() int { return g.height }

// InBounds reports whether t lies on the grid.
func (g *GridMap) InBounds(t Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < g.width && t.Y < g.height
}

// Texture returns the wall texture id at t and whether t is a wall.
func (g *GridMap) Texture(t Tile) (int, bool) {
	if !g.InBounds(t) {
		return 0, false
	}
	id := g.tiles[t.Y*g.width+t.X]
	return int(id), id != 0
}

// IsWall reports whether t is a wall tile.
func (g *GridMap) IsWall(t Tile) bool {
	_, wall := g.Texture(t)
	return wall
}

// IsWallAt reports whether the tile containing (x, y) is a wall.
func (g *GridMap) IsWallAt(x, y float64) bool {
	return g.IsWall(TileAt(x, y))
}

// Walls returns every wall tile in row-major order.
func (g *GridMap) Walls() []Tile {
	var walls []Tile
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] != 0 {
				walls = append(walls, Tile{X: x, Y: y})
			}
		}
	}
	return walls
}

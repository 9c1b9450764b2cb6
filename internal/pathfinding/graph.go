package pathfinding

import "gridcaster/internal/world"

// neighbourOffsets is the fixed expansion order. BFS tie-breaking, and so
// the chosen path, depends on it.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Graph is the static 8-connected navigation graph of a grid map. Nodes are
// open tiles; edges never lead into a wall or off the map. Adjacency is
// stored in an arena indexed by y*width+x.
//
// A Graph reuses search scratch between calls and is not safe for concurrent
// use.
type Graph struct {
	width, height int
	adj           [][]int // nil for wall tiles
	scratch       searchScratch
}

// NewGraph builds adjacency for every open tile of grid.
func NewGraph(grid *world.GridMap) *Graph {
	g := &Graph{
		width:  grid.Width(),
		height: grid.Height(),
		adj:    make([][]int, grid.Width()*grid.Height()),
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			t := world.Tile{X: x, Y: y}
			if grid.IsWall(t) {
				continue
			}
			moves := make([]int, 0, len(neighbourOffsets))
			for _, off := range neighbourOffsets {
				n := world.Tile{X: x + off[0], Y: y + off[1]}
				if !grid.InBounds(n) || grid.IsWall(n) {
					continue
				}
				moves = append(moves, g.index(n))
			}
			g.adj[g.index(t)] = moves
		}
	}
	return g
}

func (g *Graph) index(t world.Tile) int {
	if t.X < 0 || t.Y < 0 || t.X >= g.width || t.Y >= g.height {
		return -1
	}
	return t.Y*g.width + t.X
}

func (g *Graph) coord(idx int) world.Tile {
	return world.Tile{X: idx % g.width, Y: idx / g.width}
}

// Contains reports whether t is a walkable node.
func (g *Graph) Contains(t world.Tile) bool {
	idx := g.index(t)
	return idx >= 0 && g.adj[idx] != nil
}

// Neighbours returns the walkable neighbours of t in expansion order.
func (g *Graph) Neighbours(t world.Tile) []world.Tile {
	idx := g.index(t)
	if idx < 0 {
		return nil
	}
	out := make([]world.Tile, 0, len(g.adj[idx]))
	for _, n := range g.adj[idx] {
		out = append(out, g.coord(n))
	}
	return out
}

// NodeCount returns the number of walkable tiles.
func (g *Graph) NodeCount() int {
	n := 0
	for _, moves := range g.adj {
		if moves != nil {
			n++
		}
	}
	return n
}

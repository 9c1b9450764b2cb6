package pathfinding

import "gridcaster/internal/world"

type searchScratch struct {
	cameFrom []int
	visited  []bool
	queue    []int
}

func (s *searchScratch) prepare(size int) {
	if cap(s.cameFrom) < size {
		s.cameFrom = make([]int, size)
		s.visited = make([]bool, size)
	} else {
		s.cameFrom = s.cameFrom[:size]
		s.visited = s.visited[:size]
	}
	for i := 0; i < size; i++ {
		s.cameFrom[i] = -1
		s.visited[i] = false
	}
	s.queue = s.queue[:0]
}

// NextStep returns the first tile on a shortest path from start to goal that
// avoids occupied tiles. It returns start when start == goal, when goal is
// not walkable or is occupied, or when no path exists.
func (g *Graph) NextStep(start, goal world.Tile, occ Occupancy) world.Tile {
	path := g.Path(start, goal, occ)
	if len(path) == 0 {
		return start
	}
	return path[0]
}

// Path returns the tiles from start (exclusive) to goal (inclusive), or nil
// when goal cannot be reached.
func (g *Graph) Path(start, goal world.Tile, occ Occupancy) []world.Tile {
	if start == goal || !g.Contains(start) || !g.Contains(goal) || occ.Has(goal) {
		return nil
	}

	startIdx := g.index(start)
	goalIdx := g.index(goal)

	s := &g.scratch
	s.prepare(len(g.adj))
	s.visited[startIdx] = true
	s.queue = append(s.queue, startIdx)

	found := false
	for head := 0; head < len(s.queue); head++ {
		cur := s.queue[head]
		if cur == goalIdx {
			found = true
			break
		}
		for _, next := range g.adj[cur] {
			if s.visited[next] || occ.Has(g.coord(next)) {
				continue
			}
			s.visited[next] = true
			s.cameFrom[next] = cur
			s.queue = append(s.queue, next)
		}
	}
	if !found {
		return nil
	}

	var path []world.Tile
	for cur := goalIdx; cur != startIdx; cur = s.cameFrom[cur] {
		path = append(path, g.coord(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

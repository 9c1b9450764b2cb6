package pathfinding

import (
	"testing"

	"gridcaster/internal/world"
)

func openGrid(w, h int) *world.GridMap {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
	}
	return world.NewGridMap(rows)
}

// walledGrid parses '#' as a wall and anything else as open floor.
func walledGrid(lines ...string) *world.GridMap {
	rows := make([][]int, len(lines))
	for y, line := range lines {
		rows[y] = make([]int, len(line))
		for x, c := range line {
			if c == '#' {
				rows[y][x] = 1
			}
		}
	}
	return world.NewGridMap(rows)
}

func TestNextStep_SameTile(t *testing.T) {
	g := NewGraph(openGrid(4, 4))
	tile := world.Tile{X: 2, Y: 2}

	if got := g.NextStep(tile, tile, nil); got != tile {
		t.Errorf("NextStep(T, T) = %v, want %v", got, tile)
	}
}

func TestNextStep_Adjacent(t *testing.T) {
	g := NewGraph(openGrid(4, 4))
	start := world.Tile{X: 1, Y: 1}

	for _, goal := range g.Neighbours(start) {
		if got := g.NextStep(start, goal, nil); got != goal {
			t.Errorf("adjacent goal %v: NextStep = %v", goal, got)
		}
	}
}

func TestNextStep_MovesCloser(t *testing.T) {
	g := NewGraph(walledGrid(
		"#######",
		"#.....#",
		"#.###.#",
		"#.#...#",
		"#.#.###",
		"#...#.#",
		"#######",
	))
	start := world.Tile{X: 3, Y: 4}
	goal := world.Tile{X: 5, Y: 1}

	full := g.Path(start, goal, nil)
	if len(full) == 0 {
		t.Fatal("expected a path")
	}
	next := g.NextStep(start, goal, nil)
	if next != full[0] {
		t.Errorf("NextStep %v disagrees with Path head %v", next, full[0])
	}
	rest := g.Path(next, goal, nil)
	if len(rest) != len(full)-1 {
		t.Errorf("BFS depth from next step = %d, want %d", len(rest), len(full)-1)
	}
}

func TestNextStep_CanonicalOrder(t *testing.T) {
	g := NewGraph(openGrid(5, 5))

	// several shortest paths exist; (3,1) is expanded first among the
	// depth-1 tiles that touch the goal
	got := g.NextStep(world.Tile{X: 2, Y: 2}, world.Tile{X: 4, Y: 2}, nil)
	if want := (world.Tile{X: 3, Y: 1}); got != want {
		t.Errorf("NextStep = %v, want %v", got, want)
	}
}

func TestNextStep_Deterministic(t *testing.T) {
	g := NewGraph(openGrid(8, 8))
	start := world.Tile{X: 0, Y: 0}
	goal := world.Tile{X: 7, Y: 5}
	occ := NewOccupancy(world.Tile{X: 1, Y: 1}, world.Tile{X: 3, Y: 2})

	first := g.NextStep(start, goal, occ)
	for i := 0; i < 20; i++ {
		if got := g.NextStep(start, goal, occ); got != first {
			t.Fatalf("call %d returned %v, first call returned %v", i, got, first)
		}
	}
}

func TestNextStep_ReturnsStart(t *testing.T) {
	grid := walledGrid(
		"#####",
		"#.#.#",
		"#.#.#",
		"#####",
	)
	g := NewGraph(grid)
	start := world.Tile{X: 1, Y: 1}

	testCases := []struct {
		name string
		goal world.Tile
		occ  Occupancy
	}{
		{"goal is a wall", world.Tile{X: 2, Y: 1}, nil},
		{"goal off the map", world.Tile{X: 9, Y: 9}, nil},
		{"goal unreachable", world.Tile{X: 3, Y: 2}, nil},
		{"goal occupied", world.Tile{X: 1, Y: 2}, NewOccupancy(world.Tile{X: 1, Y: 2})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.NextStep(start, tc.goal, tc.occ); got != start {
				t.Errorf("NextStep = %v, want start %v", got, start)
			}
		})
	}
}

func TestNextStep_DetoursAroundOccupied(t *testing.T) {
	g := NewGraph(openGrid(5, 3))
	start := world.Tile{X: 0, Y: 1}
	goal := world.Tile{X: 4, Y: 1}
	occ := NewOccupancy(world.Tile{X: 1, Y: 0}, world.Tile{X: 1, Y: 1})

	if got := g.NextStep(start, goal, occ); got != (world.Tile{X: 1, Y: 2}) {
		t.Errorf("NextStep = %v, want (1,2)", got)
	}
	for _, step := range g.Path(start, goal, occ) {
		if occ.Has(step) {
			t.Errorf("path walks through occupied tile %v", step)
		}
	}
}

func TestNewGraph_NoWallNodes(t *testing.T) {
	grid := walledGrid(
		"####",
		"#..#",
		"#.##",
		"####",
	)
	g := NewGraph(grid)

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", g.NodeCount())
	}
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tile := world.Tile{X: x, Y: y}
			if grid.IsWall(tile) && g.Contains(tile) {
				t.Errorf("wall %v present as a node", tile)
			}
			for _, n := range g.Neighbours(tile) {
				if grid.IsWall(n) || !grid.InBounds(n) {
					t.Errorf("neighbour %v of %v is not walkable", n, tile)
				}
			}
		}
	}

	// canonical order from (1,1): only (1,2) and (2,1) survive, in that order
	got := g.Neighbours(world.Tile{X: 1, Y: 1})
	want := []world.Tile{{X: 1, Y: 2}, {X: 2, Y: 1}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Neighbours(1,1) = %v, want %v", got, want)
	}
}

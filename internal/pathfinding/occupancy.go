package pathfinding

import "gridcaster/internal/world"

// Occupancy is the set of tiles held by living NPCs. It is rebuilt once per
// tick and read by every path query in that tick.
type Occupancy map[world.Tile]struct{}

// NewOccupancy builds a set from tiles.
func NewOccupancy(tiles ...world.Tile) Occupancy {
	occ := make(Occupancy, len(tiles))
	for _, t := range tiles {
		occ[t] = struct{}{}
	}
	return occ
}

// Add marks t occupied.
func (o Occupancy) Add(t world.Tile) {
	o[t] = struct{}{}
}

// Has reports whether t is occupied. A nil set holds nothing.
func (o Occupancy) Has(t world.Tile) bool {
	_, ok := o[t]
	return ok
}

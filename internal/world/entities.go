package world

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadPlacement is returned when a placement lies outside the map or inside a wall.
var ErrBadPlacement = errors.New("invalid entity placement")

// SpritePlacement places a static or animated decoration.
type SpritePlacement struct {
	Sprite          string     `yaml:"sprite"`
	Animated        bool       `yaml:"animated"`
	Pos             [2]float64 `yaml:"pos"`
	Scale           float64    `yaml:"scale,omitempty"`
	HeightShift     float64    `yaml:"height_shift,omitempty"`
	AnimationTimeMs int        `yaml:"animation_time_ms,omitempty"`
}

// NPCPlacement places an NPC of a YAML archetype.
type NPCPlacement struct {
	Type string     `yaml:"type"`
	Pos  [2]float64 `yaml:"pos"`
}

// Placements is the root of entities.yaml.
type Placements struct {
	Sprites []SpritePlacement `yaml:"sprites"`
	NPCs    []NPCPlacement    `yaml:"npcs"`
}

// LoadPlacements reads entity placements and checks them against grid.
func LoadPlacements(filename string, grid *GridMap) (*Placements, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read placements: %w", err)
	}

	var p Placements
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse placements: %w", err)
	}
	if err := p.Validate(grid); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &p, nil
}

// Validate checks every placement lands on open floor.
func (p *Placements) Validate(grid *GridMap) error {
	for i, s := range p.Sprites {
		if err := checkPlacement(grid, s.Pos); err != nil {
			return fmt.Errorf("sprite %d (%s): %w", i, s.Sprite, err)
		}
	}
	for i, n := range p.NPCs {
		if err := checkPlacement(grid, n.Pos); err != nil {
			return fmt.Errorf("npc %d (%s): %w", i, n.Type, err)
		}
	}
	return nil
}

func checkPlacement(grid *GridMap, pos [2]float64) error {
	t := TileAt(pos[0], pos[1])
	if !grid.InBounds(t) {
		return fmt.Errorf("%w: (%.2f, %.2f) outside %dx%d map", ErrBadPlacement, pos[0], pos[1], grid.Width(), grid.Height())
	}
	if grid.IsWall(t) {
		return fmt.Errorf("%w: (%.2f, %.2f) is inside a wall", ErrBadPlacement, pos[0], pos[1])
	}
	return nil
}

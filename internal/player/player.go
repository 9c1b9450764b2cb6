package player

import (
	"math"

	"gridcaster/internal/config"
	"gridcaster/internal/mathutil"
	"gridcaster/internal/world"
)

// State is the viewpoint the ray caster and projector read every frame.
type State struct {
	X, Y  float64 // tile units
	Angle float64 // radians, [0, 2π)
}

// Tile returns the grid tile the viewpoint stands in.
func (s State) Tile() world.Tile {
	return world.TileAt(s.X, s.Y)
}

// Intent is one tick of movement input, already decoded by the front end.
type Intent struct {
	Forward, Back           bool
	StrafeLeft, StrafeRight bool
	TurnLeft, TurnRight     bool
	Fire                    bool
}

// Player owns the viewpoint plus the few combat fields NPCs interact with.
type Player struct {
	State
	Health int
	Fired  bool // a shot is in flight this tick

	speed     float64
	rotSpeed  float64
	sizeScale float64
	grid      *world.GridMap
}

// NewPlayer places a player on grid using the start values from cfg.
func NewPlayer(cfg config.PlayerConfig, grid *world.GridMap) *Player {
	return &Player{
		State: State{
			X:     cfg.StartX,
			Y:     cfg.StartY,
			Angle: mathutil.NormalizeAngle(cfg.StartAngle),
		},
		Health:    cfg.MaxHealth,
		speed:     cfg.Speed,
		rotSpeed:  cfg.RotationSpeed,
		sizeScale: cfg.SizeScale,
		grid:      grid,
	}
}

// Move applies one tick of input. dtMs is the frame time in milliseconds.
func (p *Player) Move(in Intent, dtMs float64) {
	if dtMs <= 0 {
		return
	}
	sinA := math.Sin(p.Angle)
	cosA := math.Cos(p.Angle)
	speed := p.speed * dtMs
	speedSin := speed * sinA
	speedCos := speed * cosA

	var dx, dy float64
	if in.Forward {
		dx += speedCos
		dy += speedSin
	}
	if in.Back {
		dx -= speedCos
		dy -= speedSin
	}
	if in.StrafeRight {
		dx -= speedSin
		dy += speedCos
	}
	if in.StrafeLeft {
		dx += speedSin
		dy -= speedCos
	}
	p.checkWallCollision(dx, dy, dtMs)

	if in.TurnLeft {
		p.Angle -= p.rotSpeed * dtMs
	}
	if in.TurnRight {
		p.Angle += p.rotSpeed * dtMs
	}
	p.Angle = mathutil.NormalizeAngle(p.Angle)
}

// checkWallCollision moves each axis independently so the player slides
// along walls. The probe is scaled so the player keeps a body-sized gap.
func (p *Player) checkWallCollision(dx, dy, dtMs float64) {
	scale := p.sizeScale / dtMs
	if !p.grid.IsWallAt(p.X+dx*scale, p.Y) {
		p.X += dx
	}
	if !p.grid.IsWallAt(p.X, p.Y+dy*scale) {
		p.Y += dy
	}
}

// TakeDamage lowers health; it never goes below zero.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// Alive reports whether the player can keep playing.
func (p *Player) Alive() bool {
	return p.Health >= 1
}

package entity

import (
	"math/rand"
	"time"

	"gridcaster/internal/animation"
	"gridcaster/internal/config"
	"gridcaster/internal/pathfinding"
	"gridcaster/internal/player"
	"gridcaster/internal/projection"
	"gridcaster/internal/world"
)

// Kind selects which optional parts of an Entity are in use.
type Kind int

const (
	Static   Kind = iota // billboard only
	Animated             // billboard + frame ring
	NPC                  // billboard + clips + Brain
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Animated:
		return "animated"
	case NPC:
		return "npc"
	default:
		return "unknown"
	}
}

// FrameCounter reports how many frames a sprite key has.
type FrameCounter interface {
	FrameCount(key string) int
}

// SightChecker answers line-of-sight queries.
type SightChecker interface {
	HasLineOfSight(ox, oy, theta float64, target world.Tile) bool
}

// Router picks the next tile toward a goal.
type Router interface {
	NextStep(start, goal world.Tile, occ pathfinding.Occupancy) world.Tile
}

// Env is what an entity may read or touch during its update.
type Env struct {
	Player       *player.Player
	WeaponDamage int
	Grid         *world.GridMap
	Projection   config.Projection
	Projector    *projection.Projector
	Sizer        projection.TextureSizer
	Sight        SightChecker
	Router       Router
	Occupancy    pathfinding.Occupancy // snapshot taken before any NPC moved
	Rand         *rand.Rand
}

// Entity is a sprite in the world. Static sprites only carry billboard data;
// animated ones add Anim; NPCs add Brain on top.
type Entity struct {
	Kind        Kind
	X, Y        float64
	Sprite      string
	Scale       float64
	HeightShift float64

	Anim  *animation.Animation
	Brain *Brain

	// View is the projection computed during the latest Update.
	View projection.View
	// hitHalfWidth is the half width from the last update the entity was on
	// screen; it stays put while the entity is culled.
	hitHalfWidth float64
}

// NewStatic creates a non-animated decoration.
func NewStatic(sprite string, x, y, scale, shift float64) *Entity {
	return &Entity{Kind: Static, X: x, Y: y, Sprite: sprite, Scale: scale, HeightShift: shift}
}

// NewAnimated creates a looping decoration with frames frames.
func NewAnimated(sprite string, x, y, scale, shift float64, interval time.Duration, frames int) *Entity {
	e := NewStatic(sprite, x, y, scale, shift)
	e.Kind = Animated
	e.Anim = animation.New(interval, animation.Clip{Frames: frames})
	return e
}

// Tile returns the tile the entity stands in.
func (e *Entity) Tile() world.Tile {
	return world.TileAt(e.X, e.Y)
}

// SpriteKey names the image set currently shown: the base sprite, or
// "<sprite>/<clip>" while a named clip plays.
func (e *Entity) SpriteKey() string {
	if e.Anim == nil {
		return e.Sprite
	}
	return ClipKey(e.Sprite, e.Anim.Clip())
}

// ClipKey joins a sprite and clip into an asset key.
func ClipKey(sprite string, clip animation.Clip) string {
	if clip.Name == "" {
		return sprite
	}
	return sprite + "/" + clip.Name
}

// Billboard returns the projection input for the current frame.
func (e *Entity) Billboard(sizer projection.TextureSizer) projection.Billboard {
	key := e.SpriteKey()
	frame := 0
	if e.Anim != nil {
		frame = e.Anim.Frame()
	}
	w, h := sizer.SpriteSize(key)
	return projection.Billboard{
		X:           e.X,
		Y:           e.Y,
		Width:       w,
		Height:      h,
		Scale:       e.Scale,
		HeightShift: e.HeightShift,
		Image:       projection.Image{Kind: projection.KindSprite, Sprite: key, Frame: frame},
	}
}

// Update advances the entity by dt: refresh its view, step its animation,
// and run NPC logic.
func (e *Entity) Update(dt time.Duration, env *Env) {
	e.View, _, _ = env.Projector.Project(e.Billboard(env.Sizer), env.Player.State)
	if e.View.Visible {
		e.hitHalfWidth = e.View.HalfWidth
	}

	switch e.Kind {
	case Animated:
		e.Anim.Update(dt)
		e.Anim.Step()
	case NPC:
		e.Anim.Update(dt)
		e.runLogic(dt, env)
	}
}

// Alive reports whether e is a living NPC.
func (e *Entity) Alive() bool {
	return e.Kind == NPC && e.Brain.Alive
}

package entity

import (
	"math"
	"math/rand"
	"time"

	"gridcaster/internal/animation"
	"gridcaster/internal/config"
)

// Clip names used by NPC sprite sets.
const (
	ClipIdle   = "idle"
	ClipWalk   = "walk"
	ClipAttack = "attack"
	ClipPain   = "pain"
	ClipDeath  = "death"
)

// Clips holds the frame runs of one NPC sprite set.
type Clips struct {
	Idle, Walk, Attack, Pain, Death animation.Clip
}

// LoadClips asks frames for the length of every NPC clip of sprite.
func LoadClips(sprite string, frames FrameCounter) Clips {
	clip := func(name string) animation.Clip {
		n := frames.FrameCount(sprite + "/" + name)
		if n < 1 {
			n = 1
		}
		return animation.Clip{Name: name, Frames: n}
	}
	return Clips{
		Idle:   clip(ClipIdle),
		Walk:   clip(ClipWalk),
		Attack: clip(ClipAttack),
		Pain:   clip(ClipPain),
		Death:  clip(ClipDeath),
	}
}

// Brain is the NPC behaviour state.
type Brain struct {
	Type       string
	Health     int
	AttackDist float64
	SearchDist float64
	Speed      float64 // tiles per ms
	Size       float64
	Damage     [2]int
	Accuracy   [2]int // percent

	Alive     bool
	Pain      bool
	LOS       bool
	Searching bool // keeps chasing after losing sight

	clips Clips
}

// NewNPC creates an NPC of archetype t. Ranged distances are rolled once
// here so two soldiers need not behave identically.
func NewNPC(typeKey string, t config.NPCType, x, y float64, frames FrameCounter, rng *rand.Rand) *Entity {
	clips := LoadClips(t.Sprite, frames)
	return &Entity{
		Kind:        NPC,
		X:           x,
		Y:           y,
		Sprite:      t.Sprite,
		Scale:       t.Scale,
		HeightShift: t.HeightShift,
		Anim:        animation.New(time.Duration(t.AnimationTimeMs)*time.Millisecond, clips.Idle),
		Brain: &Brain{
			Type:       typeKey,
			Health:     t.Health,
			AttackDist: float64(randRange(rng, t.AttackDist)),
			SearchDist: float64(randRange(rng, t.SearchDist)),
			Speed:      t.Speed,
			Size:       t.Size,
			Damage:     t.Damage,
			Accuracy:   t.Accuracy,
			Alive:      true,
			clips:      clips,
		},
	}
}

// randRange returns an int in [r[0], r[1]].
func randRange(rng *rand.Rand, r [2]int) int {
	if r[1] <= r[0] {
		return r[0]
	}
	return r[0] + rng.Intn(r[1]-r[0]+1)
}

func (e *Entity) runLogic(dt time.Duration, env *Env) {
	b := e.Brain
	if !b.Alive {
		e.Anim.Play(b.clips.Death)
		e.Anim.StepOnce()
		return
	}

	p := env.Player
	b.LOS = env.Sight.HasLineOfSight(p.X, p.Y, e.View.Theta, e.Tile())
	e.checkTargetHit(env)

	switch {
	case b.Pain:
		e.Anim.Play(b.clips.Pain)
		e.Anim.Step()
		if e.Anim.Triggered() {
			b.Pain = false
		}
	case b.LOS:
		b.Searching = true
		if e.View.Dist < b.AttackDist {
			e.Anim.Play(b.clips.Attack)
			e.Anim.Step()
			e.attack(env)
		} else {
			e.Anim.Play(b.clips.Walk)
			e.Anim.Step()
			e.move(dt, env)
		}
	case b.Searching && e.View.Dist < b.SearchDist:
		e.Anim.Play(b.clips.Walk)
		e.Anim.Step()
		e.move(dt, env)
	default:
		e.Anim.Play(b.clips.Idle)
		e.Anim.Step()
	}
}

// checkTargetHit consumes the player's shot if this NPC is visible and
// straddles the screen centre. The window uses the last on-screen width so
// an NPC culled for being too close can still be hit.
func (e *Entity) checkTargetHit(env *Env) {
	b := e.Brain
	p := env.Player
	if !b.LOS || !p.Fired {
		return
	}
	centre := env.Projection.HalfWidth
	if e.View.ScreenX <= centre-e.hitHalfWidth || e.View.ScreenX >= centre+e.hitHalfWidth {
		return
	}

	p.Fired = false
	b.Pain = true
	b.Health -= env.WeaponDamage
	if b.Health < 1 {
		b.Alive = false
	}
}

// attack fires once per animation step, hitting with the rolled accuracy.
func (e *Entity) attack(env *Env) {
	if !e.Anim.Triggered() {
		return
	}
	b := e.Brain
	if env.Rand.Float64() < float64(randRange(env.Rand, b.Accuracy))/100 {
		env.Player.TakeDamage(randRange(env.Rand, b.Damage))
	}
}

// move heads for the centre of the next path tile, unless another NPC
// holds it in this tick's snapshot.
func (e *Entity) move(dt time.Duration, env *Env) {
	next := env.Router.NextStep(e.Tile(), env.Player.Tile(), env.Occupancy)
	if env.Occupancy.Has(next) {
		return
	}

	cx, cy := next.Center()
	angle := math.Atan2(cy-e.Y, cx-e.X)
	step := e.Brain.Speed * float64(dt) / float64(time.Millisecond)
	e.checkWallCollision(math.Cos(angle)*step, math.Sin(angle)*step, env)
}

func (e *Entity) checkWallCollision(dx, dy float64, env *Env) {
	size := e.Brain.Size
	if !env.Grid.IsWallAt(e.X+dx*size, e.Y) {
		e.X += dx
	}
	if !env.Grid.IsWallAt(e.X, e.Y+dy*size) {
		e.Y += dy
	}
}

package player

import (
	"time"

	"gridcaster/internal/animation"
	"gridcaster/internal/config"
)

// Weapon is the player's gun: one shot, then a reload animation.
type Weapon struct {
	Damage    int
	Sprite    string
	Scale     float64
	Reloading bool

	anim       *animation.Animation
	numFrames  int
	frameCount int
}

// NewWeapon builds a weapon from cfg.
func NewWeapon(cfg config.WeaponConfig) *Weapon {
	frames := cfg.Frames
	if frames < 1 {
		frames = 1
	}
	return &Weapon{
		Damage:    cfg.Damage,
		Sprite:    cfg.Sprite,
		Scale:     cfg.Scale,
		anim:      animation.New(time.Duration(cfg.AnimationTimeMs)*time.Millisecond, animation.Clip{Name: "shot", Frames: frames}),
		numFrames: frames,
	}
}

// Fire starts a shot unless one is already in progress.
func (w *Weapon) Fire(p *Player) bool {
	if w.Reloading || p.Fired {
		return false
	}
	p.Fired = true
	w.Reloading = true
	return true
}

// Update runs after NPCs had their chance to register the hit: the shot
// only counts for the tick it was fired in.
func (w *Weapon) Update(p *Player, dt time.Duration) {
	w.anim.Update(dt)
	if !w.Reloading {
		return
	}
	p.Fired = false
	if w.anim.Triggered() {
		w.anim.Step()
		w.frameCount++
		if w.frameCount == w.numFrames {
			w.Reloading = false
			w.frameCount = 0
		}
	}
}

// Frame returns the frame to draw.
func (w *Weapon) Frame() int { return w.anim.Frame() }

package animation

import "time"

// Clip is a named run of frames within a sprite sheet directory
// (e.g. "walk" -> soldier/walk/0.png..N.png).
type Clip struct {
	Name   string
	Frames int
}

// Animation advances frames at a fixed interval. Time is fed in explicitly
// through Update so nothing depends on a wall clock.
type Animation struct {
	interval time.Duration
	elapsed  time.Duration
	clip     Clip
	frame    int
	trigger  bool
}

// New creates an animation stepping every interval.
func New(interval time.Duration, clip Clip) *Animation {
	return &Animation{interval: interval, clip: clip}
}

// Update accumulates dt and reports whether the frame interval elapsed
// during this call. At most one trigger fires per call.
func (a *Animation) Update(dt time.Duration) bool {
	a.trigger = false
	if a.interval <= 0 {
		return false
	}
	a.elapsed += dt
	if a.elapsed >= a.interval {
		a.elapsed -= a.interval
		if a.elapsed >= a.interval {
			a.elapsed = 0
		}
		a.trigger = true
	}
	return a.trigger
}

// Triggered reports whether the last Update crossed the interval.
func (a *Animation) Triggered() bool { return a.trigger }

// Play switches to clip, restarting from frame 0 when the clip changes.
func (a *Animation) Play(clip Clip) {
	if a.clip.Name != clip.Name {
		a.clip = clip
		a.frame = 0
	}
}

// Step advances the frame ring when the last Update triggered.
func (a *Animation) Step() {
	if a.trigger && a.clip.Frames > 0 {
		a.frame = (a.frame + 1) % a.clip.Frames
	}
}

// StepOnce advances toward the final frame without wrapping. It returns
// true once the last frame is showing.
func (a *Animation) StepOnce() bool {
	last := a.clip.Frames - 1
	if a.trigger && a.frame < last {
		a.frame++
	}
	return a.frame >= last
}

// Clip returns the clip being played.
func (a *Animation) Clip() Clip { return a.clip }

// Frame returns the current frame index within the clip.
func (a *Animation) Frame() int { return a.frame }

package projection

import (
	"math"

	"gridcaster/internal/config"
	"gridcaster/internal/mathutil"
	"gridcaster/internal/player"
)

// View is where an entity sits relative to the viewer this frame. It is
// filled even for culled entities since NPC logic needs Theta and Dist.
type View struct {
	Theta     float64 // absolute angle from viewer to entity
	Dist      float64 // Euclidean distance
	NormDist  float64 // distance along the view axis
	ScreenX   float64 // horizontal screen position of the entity centre
	HalfWidth float64 // projected half width; 0 when culled
	Visible   bool
}

// Billboard is an entity's projection input: world position, native image
// size, and the per-entity scale and vertical shift.
type Billboard struct {
	X, Y          float64
	Width, Height int
	Scale         float64
	HeightShift   float64
	Image         Image
}

// Projector maps billboards onto the screen.
type Projector struct {
	proj    config.Projection
	minDist float64
}

// NewProjector creates a projector. Entities closer than minDist along the
// view axis are culled.
func NewProjector(proj config.Projection, minDist float64) *Projector {
	return &Projector{proj: proj, minDist: minDist}
}

// Locate computes the angular position and distances of (x, y) for viewer s.
func (p *Projector) Locate(x, y float64, s player.State) View {
	dx := x - s.X
	dy := y - s.Y
	theta := math.Atan2(dy, dx)

	delta := theta - s.Angle
	if (dx > 0 && s.Angle > math.Pi) || (dx < 0 && dy < 0) {
		delta += mathutil.Tau
	}
	// the rule above misses a few wrap cases (entity straight north, for one)
	if delta > math.Pi {
		delta -= mathutil.Tau
	} else if delta <= -math.Pi {
		delta += mathutil.Tau
	}

	dist := math.Hypot(dx, dy)
	return View{
		Theta:    theta,
		Dist:     dist,
		NormDist: dist * math.Cos(delta),
		ScreenX:  (p.proj.HalfNumRays + delta/p.proj.DeltaAngle) * p.proj.Scale,
	}
}

// Project locates b and, if it is on screen and not too close, returns its
// renderable. The View is returned either way.
func (p *Projector) Project(b Billboard, s player.State) (View, Renderable, bool) {
	v := p.Locate(b.X, b.Y, s)

	imgHalfWidth := float64(b.Width) / 2
	if v.ScreenX <= -imgHalfWidth || v.ScreenX >= float64(p.proj.Width)+imgHalfWidth || v.NormDist <= p.minDist {
		return v, Renderable{}, false
	}
	if b.Width <= 0 || b.Height <= 0 {
		return v, Renderable{}, false
	}

	projHeight := p.proj.ScreenDist / v.NormDist * b.Scale
	projWidth := projHeight * float64(b.Width) / float64(b.Height)
	v.HalfWidth = projWidth / 2
	v.Visible = true

	r := Renderable{
		Depth: v.NormDist,
		Image: b.Image,
		X:     v.ScreenX - v.HalfWidth,
		Y:     p.proj.HalfHeight - projHeight/2 + projHeight*b.HeightShift,
		W:     projWidth,
		H:     projHeight,
	}
	r.Image.Kind = KindSprite
	return v, r, true
}

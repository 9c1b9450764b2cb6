package config

import "math"

// Projection holds the screen constants every projection step shares.
// Values are fixed at startup.
type Projection struct {
	Width, Height         int
	HalfWidth, HalfHeight float64
	FOV, HalfFOV          float64
	NumRays               int
	HalfNumRays           float64
	DeltaAngle            float64 // angle between neighbouring rays
	ScreenDist            float64 // distance to the projection plane in px
	Scale                 float64 // screen px per ray
}

// NewProjection computes derived constants for the given screen and FOV (radians).
func NewProjection(width, height int, fov float64, numRays int) Projection {
	halfWidth := float64(width) / 2
	halfFOV := fov / 2
	return Projection{
		Width:       width,
		Height:      height,
		HalfWidth:   halfWidth,
		HalfHeight:  float64(height) / 2,
		FOV:         fov,
		HalfFOV:     halfFOV,
		NumRays:     numRays,
		HalfNumRays: float64(numRays) / 2,
		DeltaAngle:  fov / float64(numRays),
		ScreenDist:  halfWidth / math.Tan(halfFOV),
		Scale:       float64(width) / float64(numRays),
	}
}

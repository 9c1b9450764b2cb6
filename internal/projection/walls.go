package projection

import (
	"math"

	"gridcaster/internal/config"
	"gridcaster/internal/raycast"
)

// WallSlices turns ray results into one renderable column per hit ray.
// texSize is the edge length of the square wall textures in pixels.
//
// Columns shorter than the screen are drawn whole and centred vertically.
// Taller columns crop the texture to the visible band and fill the screen
// height.
func WallSlices(rays []raycast.RayResult, proj config.Projection, texSize int) []Renderable {
	tex := float64(texSize)
	colWidth := math.Min(proj.Scale, tex)
	screenH := float64(proj.Height)

	slices := make([]Renderable, 0, len(rays))
	for i, r := range rays {
		if !r.Hit() {
			continue
		}
		srcX := r.Offset * (tex - colWidth)
		item := Renderable{
			Depth: r.Depth,
			Image: Image{Kind: KindWall, TextureID: r.TextureID},
			X:     float64(i) * proj.Scale,
			W:     proj.Scale,
		}

		if r.ProjHeight < screenH {
			item.Image.Src = Rect{X: srcX, Y: 0, W: colWidth, H: tex}
			item.Y = proj.HalfHeight - r.ProjHeight/2
			item.H = r.ProjHeight
		} else {
			srcH := tex * screenH / r.ProjHeight
			item.Image.Src = Rect{X: srcX, Y: tex/2 - srcH/2, W: colWidth, H: srcH}
			item.Y = 0
			item.H = screenH
		}
		slices = append(slices, item)
	}
	return slices
}

package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	minimapWallColor   = color.RGBA{180, 180, 180, 200}
	minimapPlayerColor = color.RGBA{40, 200, 40, 255}
	minimapNPCColor    = color.RGBA{220, 40, 40, 255}
	minimapPathColor   = color.RGBA{60, 90, 230, 160}
)

// drawMinimap draws a top-down debug view: walls, the player with its
// heading, NPCs and the tile each living NPC would step to next.
func (r *Renderer) drawMinimap(screen *ebiten.Image) {
	g := r.game
	grid := g.world.Grid
	cell := float32(g.cfg.World.TilePx) / 8
	if cell < 2 {
		cell = 2
	}

	for _, t := range grid.Walls() {
		vector.DrawFilledRect(screen, float32(t.X)*cell, float32(t.Y)*cell, cell, cell, minimapWallColor, false)
	}

	p := g.world.Player
	occ := g.world.Occupancy()
	for _, npc := range g.world.NPCs {
		if !npc.Alive() {
			continue
		}
		next := g.world.Graph().NextStep(npc.Tile(), p.Tile(), occ)
		if next != npc.Tile() {
			vector.DrawFilledRect(screen, float32(next.X)*cell, float32(next.Y)*cell, cell, cell, minimapPathColor, false)
		}
		vector.DrawFilledCircle(screen, float32(npc.X)*cell, float32(npc.Y)*cell, cell/3, minimapNPCColor, false)
	}

	px, py := float32(p.X)*cell, float32(p.Y)*cell
	hx := px + float32(math.Cos(p.Angle))*cell*2
	hy := py + float32(math.Sin(p.Angle))*cell*2
	vector.StrokeLine(screen, px, py, hx, hy, 1, minimapPlayerColor, false)
	vector.DrawFilledCircle(screen, px, py, cell/3, minimapPlayerColor, false)
}

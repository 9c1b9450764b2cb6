package game

import (
	"fmt"
	"image/color"

	"gridcaster/internal/engine"
	"gridcaster/internal/mathutil"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	hudTextColor   = color.RGBA{230, 230, 230, 255}
	hudHealthColor = color.RGBA{200, 40, 40, 255}
	hudShadowColor = color.RGBA{0, 0, 0, 160}
)

func (r *Renderer) drawHUD(screen *ebiten.Image) {
	g := r.game
	face := basicfont.Face7x13
	p := g.world.Player

	// health bar, bottom left
	barW := float32(200)
	fill := barW * float32(mathutil.Clamp(float64(p.Health)/float64(g.cfg.Player.MaxHealth), 0, 1))
	y := float32(g.cfg.GetScreenHeight()) - 30
	vector.DrawFilledRect(screen, 10, y, barW, 16, hudShadowColor, false)
	vector.DrawFilledRect(screen, 10, y, fill, 16, hudHealthColor, false)
	ebitext.Draw(screen, fmt.Sprintf("HP %d", p.Health), face, 16, int(y)+12, hudTextColor)

	enemies := fmt.Sprintf("Enemies %d", g.world.NPCsAlive())
	ebitext.Draw(screen, enemies, face, g.cfg.GetScreenWidth()-font.MeasureString(face, enemies).Round()-10, int(y)+12, hudTextColor)

	if g.showFPS {
		m := g.world.Monitor().GetCurrentMetrics()
		ebitext.Draw(screen, fmt.Sprintf("FPS %.0f  tick %.2fms  rays %.2fms", ebiten.ActualFPS(),
			float64(m.FrameTime.Microseconds())/1000, float64(m.RaycastTime.Microseconds())/1000), face, 10, 20, hudTextColor)
	}

	switch g.world.Status() {
	case engine.Won:
		r.drawBanner(screen, "VICTORY - press Enter to play again")
	case engine.Lost:
		r.drawBanner(screen, "YOU DIED - press Enter to try again")
	}
}

func (r *Renderer) drawBanner(screen *ebiten.Image, msg string) {
	face := basicfont.Face7x13
	w := r.game.cfg.GetScreenWidth()
	h := r.game.cfg.GetScreenHeight()
	vector.DrawFilledRect(screen, 0, float32(h)/2-30, float32(w), 60, hudShadowColor, false)
	x := w/2 - font.MeasureString(face, msg).Round()/2
	ebitext.Draw(screen, msg, face, x, h/2+4, hudTextColor)
}

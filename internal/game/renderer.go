package game

import (
	"image"
	"math"

	"gridcaster/internal/projection"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws the engine's render list with a painter's pass.
type Renderer struct {
	game *Game
}

func NewRenderer(game *Game) *Renderer {
	return &Renderer{game: game}
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	g := r.game
	w := float32(g.cfg.GetScreenWidth())
	h := float32(g.cfg.GetScreenHeight())
	vector.DrawFilledRect(screen, 0, 0, w, h/2, rgb(g.cfg.Display.SkyColor), false)
	vector.DrawFilledRect(screen, 0, h/2, w, h/2, rgb(g.cfg.Display.FloorColor), false)

	frame := g.world.Frame()
	for _, item := range frame.Items {
		switch item.Image.Kind {
		case projection.KindWall:
			r.drawWall(screen, item)
		case projection.KindSprite:
			r.drawSprite(screen, item)
		}
	}

	r.drawWeapon(screen, frame.WeaponFrame)
	r.drawHUD(screen)
	if g.showMinimap {
		r.drawMinimap(screen)
	}
}

func (r *Renderer) drawWall(screen *ebiten.Image, item projection.Renderable) {
	sm := r.game.sprites
	tex := sm.Wall(item.Image.TextureID)
	s := sm.TextureScale(item.Image.TextureID)
	src := item.Image.Src

	rect := image.Rect(
		int(src.X*s), int(src.Y*s),
		int(math.Ceil((src.X+src.W)*s)), int(math.Ceil((src.Y+src.H)*s)),
	)
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	column := tex.SubImage(rect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(item.W/float64(rect.Dx()), item.H/float64(rect.Dy()))
	op.GeoM.Translate(item.X, item.Y)
	screen.DrawImage(column, op)
}

func (r *Renderer) drawSprite(screen *ebiten.Image, item projection.Renderable) {
	img := r.game.sprites.Frame(item.Image.Sprite, item.Image.Frame)
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(item.W/float64(b.Dx()), item.H/float64(b.Dy()))
	op.GeoM.Translate(item.X, item.Y)
	screen.DrawImage(img, op)
}

// drawWeapon centres the weapon frame on the bottom edge of the screen.
func (r *Renderer) drawWeapon(screen *ebiten.Image, frame int) {
	g := r.game
	img := g.sprites.Frame(g.cfg.Weapon.Sprite, frame)
	scale := g.cfg.Weapon.Scale
	b := img.Bounds()
	w := float64(b.Dx()) * scale
	h := float64(b.Dy()) * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(g.cfg.GetScreenWidth())/2-w/2, float64(g.cfg.GetScreenHeight())-h)
	screen.DrawImage(img, op)
}

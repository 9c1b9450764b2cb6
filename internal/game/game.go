package game

import (
	"image/color"
	"log"
	"time"

	"gridcaster/internal/config"
	"gridcaster/internal/engine"
	"gridcaster/internal/graphics"

	"github.com/hajimehoshi/ebiten/v2"
)

// WorldFactory builds a fresh session, used at start and on restart.
type WorldFactory func() (*engine.World, error)

// Game adapts the engine to ebiten: it feeds input in, ticks once per
// update and draws the latest frame.
type Game struct {
	cfg      *config.Config
	world    *engine.World
	newWorld WorldFactory
	sprites  *graphics.SpriteManager
	input    *InputHandler
	renderer *Renderer

	showMinimap bool
	showFPS     bool
	statsTicks  int
	perf        perfState
}

func NewGame(cfg *config.Config, w *engine.World, sprites *graphics.SpriteManager, newWorld WorldFactory) *Game {
	g := &Game{
		cfg:      cfg,
		world:    w,
		newWorld: newWorld,
		sprites:  sprites,
		input:    NewInputHandler(),
		showFPS:  cfg.Debug.ShowFPS,
	}
	g.renderer = NewRenderer(g)
	return g
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() { g.perf.lastUpdate = time.Since(start) }()

	cmd := g.input.Commands()
	if cmd.Quit {
		return ebiten.Termination
	}
	if cmd.ToggleMinimap {
		g.showMinimap = !g.showMinimap
	}
	if cmd.ToggleFPS {
		g.showFPS = !g.showFPS
	}

	if g.world.Status() != engine.Playing {
		if cmd.Restart {
			g.restart()
		}
		return nil
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if status := g.world.Tick(dt, g.input.Intent()); status != engine.Playing {
		log.Printf("Session over: %s", status)
	}
	g.logStats()
	g.maybeLogPerfDrop()
	return nil
}

// Close releases the current session.
func (g *Game) Close() {
	g.world.Close()
}

func (g *Game) restart() {
	w, err := g.newWorld()
	if err != nil {
		log.Printf("Warning: failed to restart: %v", err)
		return
	}
	g.world.Close()
	g.world = w
}

// logStats writes a performance summary every StatsIntervalSec.
func (g *Game) logStats() {
	if g.cfg.Debug.StatsIntervalSec <= 0 {
		return
	}
	g.statsTicks++
	if g.statsTicks < g.cfg.Debug.StatsIntervalSec*ebiten.TPS() {
		return
	}
	g.statsTicks = 0
	log.Printf("Performance: %s", g.world.Monitor().Summary())
	for _, alert := range g.world.Monitor().CheckPerformanceAlerts() {
		log.Printf("Performance alert [%s]: %s (%.1f)", alert.Type, alert.Message, alert.Value)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.renderer.Draw(screen)
	g.perf.lastDraw = time.Since(start)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

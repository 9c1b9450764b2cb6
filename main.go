package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"gridcaster/internal/config"
	"gridcaster/internal/engine"
	"gridcaster/internal/game"
	"gridcaster/internal/graphics"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	sprites := graphics.NewSpriteManager(cfg.Textures)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	newWorld := func() (*engine.World, error) {
		return engine.Load(cfg, sprites, rng)
	}

	w, err := newWorld()
	if err != nil {
		log.Fatal(err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, w, sprites, newWorld)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

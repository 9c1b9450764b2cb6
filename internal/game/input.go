package game

import (
	"gridcaster/internal/game/keytracker"
	"gridcaster/internal/player"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Commands are the non-movement actions read this frame.
type Commands struct {
	Quit          bool
	Restart       bool
	ToggleMinimap bool
	ToggleFPS     bool
}

// InputHandler decodes keyboard and mouse state.
type InputHandler struct {
	fireTracker  keytracker.KeyStateTracker
	escTracker   keytracker.KeyStateTracker
	enterTracker keytracker.KeyStateTracker
	tabTracker   keytracker.KeyStateTracker
	fpsTracker   keytracker.KeyStateTracker
}

func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Intent reads movement and fire input. W/S move, A/D strafe, arrows or
// Q/E turn, Space or left click fires.
func (ih *InputHandler) Intent() player.Intent {
	var in player.Intent
	in.Forward = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	in.Back = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
	in.StrafeLeft = ebiten.IsKeyPressed(ebiten.KeyA)
	in.StrafeRight = ebiten.IsKeyPressed(ebiten.KeyD)
	in.TurnLeft = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyQ)
	in.TurnRight = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyE)

	// one shot per press
	in.Fire = ih.fireTracker.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return in
}

// Commands reads the toggle and session keys.
func (ih *InputHandler) Commands() Commands {
	return Commands{
		Quit:          ih.escTracker.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:       ih.enterTracker.IsKeyJustPressed(ebiten.KeyEnter),
		ToggleMinimap: ih.tabTracker.IsKeyJustPressed(ebiten.KeyTab),
		ToggleFPS:     ih.fpsTracker.IsKeyJustPressed(ebiten.KeyF1),
	}
}

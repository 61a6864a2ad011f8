package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause and handles restart requests.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	g := getGame(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed && g.Phase != components.PhaseGameOver {
		g.Paused = !g.Paused
	}

	// Restart is only offered from the pause screen
	if g.Paused && GetAction(input, cfg.ActionRestart).JustPressed {
		Restart(ecs)
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if getGame(e).Paused {
			return
		}
		system(e)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	g := getGame(ecs)
	if !g.Paused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.HUD.OverlayColor,
		false,
	)

	drawCentered(screen, "PAUSED", fonts.Title.Get(), height/2-20, cfg.Menu.TitleColor)

	input := getOrCreateInput(ecs)
	drawCentered(screen, getPauseHint(input.LastInputMethod), fonts.Small.Get(), height/2+30, cfg.Menu.TextColorNormal)
}

// getPauseHint returns the appropriate hint for the pause screen
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputGamepad:
		return "Start: Resume"
	case components.InputPointer:
		return "Esc: Resume   R: Restart"
	}
	return "Esc/P: Resume   R: Restart"
}

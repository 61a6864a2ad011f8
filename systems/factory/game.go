package factory

import (
	"github.com/automoto/pumpkin-invaders/archetypes"
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOptions are the inputs needed to create the game singleton.
type GameOptions struct {
	Width      int
	Height     int
	Difficulty cfg.Difficulty
	Layouts    []leveldata.Layout
	Rand       components.Rand
	Clock      components.Clock
}

// CreateGame creates the game singleton with a fresh level 1 state.
func CreateGame(ecs *ecs.ECS, opts GameOptions) *donburi.Entry {
	entry := archetypes.Game.Spawn(ecs)

	layouts := opts.Layouts
	if len(layouts) == 0 {
		layouts = []leveldata.Layout{leveldata.DefaultLayout()}
	}

	components.Game.SetValue(entry, components.GameData{
		Width:      float64(opts.Width),
		Height:     float64(opts.Height),
		Scale:      cfg.ScaleFor(opts.Width, opts.Height),
		Difficulty: opts.Difficulty,
		Mods:       cfg.ModifiersFor(opts.Difficulty),
		Layouts:    layouts,
		Rand:       opts.Rand,
		Clock:      opts.Clock,
	})
	ResetGame(components.Game.Get(entry))
	return entry
}

// ResetGame puts the per-run fields back to their starting values and keeps
// the field size, difficulty, layouts and random/clock sources.
func ResetGame(g *components.GameData) {
	g.Score = 0
	g.Level = 1
	g.Lives = cfg.Player.StartingLives
	g.Shield = cfg.Player.MaxShield
	g.Combo = 0
	g.ComboTimer = 0
	g.PierceCooldown = 0
	g.AutoShoot = 0
	g.Phase = components.PhasePlaying
	g.PhaseFrame = 0
	g.Paused = false
	g.FormationSpeed = cfg.Formation.BaseSpeed
	g.OverrunPending = false
	g.WitchLastLevel = 1
	g.WitchGap = RollWitchGap(g.Rand)
}

// RollWitchGap picks how many levels must pass before the next witch.
func RollWitchGap(r components.Rand) int {
	gaps := cfg.Witch.Gaps
	return gaps[r.IntN(len(gaps))]
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

func CreateScreenShake(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.ScreenShake.Spawn(ecs)
}

func CreateFormation(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Formation.Spawn(ecs)
	components.Formation.SetValue(entry, components.FormationData{Direction: 1})
	return entry
}

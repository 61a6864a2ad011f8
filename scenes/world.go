package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/pumpkin-invaders/assets"
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/leveldata"
	"github.com/automoto/pumpkin-invaders/systems"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// gameOverDelay is how long the final explosion plays before the game over
// screen takes over.
const gameOverDelay = 120

// GameScene runs one game from level 1 until game over
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	difficulty   cfg.Difficulty
	once         sync.Once

	gameOverFrames int
}

// NewGameScene creates a game scene for the given difficulty
func NewGameScene(sc SceneChanger, difficulty cfg.Difficulty) *GameScene {
	return &GameScene{sceneChanger: sc, difficulty: difficulty}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	g := components.Game.Get(components.Game.MustFirst(gs.ecs.World))
	if g.Phase != components.PhaseGameOver {
		gs.gameOverFrames = 0
		return
	}
	gs.gameOverFrames++
	if gs.gameOverFrames >= gameOverDelay {
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, gs.difficulty, g.Score, g.Level))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	layouts, err := leveldata.LoadAllLayouts(assets.FormationFS(), assets.FormationDir)
	if err != nil {
		log.Printf("Warning: Could not load formation layouts, using default: %v", err)
		layouts = nil
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Listeners first so level 1's notifications reach them
	systems.RegisterAudio(ecs)
	systems.RegisterHUD(ecs)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Fixed-order simulation, gated by pause and phase
	systems.RegisterSimulation(ecs)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHUD))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawGame)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	gs.ecs = ecs

	systems.Setup(ecs, factory.GameOptions{
		Width:      cfg.C.Width,
		Height:     cfg.C.Height,
		Difficulty: gs.difficulty,
		Layouts:    layouts,
		Rand:       systems.NewRand(cfg.Debug.Seed),
		Clock:      systems.SystemClock{},
	})
}

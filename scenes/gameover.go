package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems"
	"github.com/automoto/pumpkin-invaders/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene records the finished run and shows the high-score table
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	difficulty   cfg.Difficulty
	score        int
	level        int
	scoresUI     *ui.HighScoreUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene for a finished run
func NewGameOverScene(sc SceneChanger, difficulty cfg.Difficulty, score, level int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, difficulty: difficulty, score: score, level: level}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.scoresUI.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.scoresUI.UI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createGameScene := func() interface{} {
		return NewGameScene(gs.sceneChanger, gs.difficulty)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	// Record the run; a broken table starts over empty
	table := systems.NewHighScoreTable(systems.Store())
	_ = table.Load()
	rank := table.Insert(systems.HighScore{Name: cfg.Debug.PlayerName, Score: gs.score, Level: gs.level})
	if rank >= 0 {
		_ = table.Save()
	}

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	gameOver.Score = gs.score
	gameOver.Level = gs.level
	gameOver.Rank = rank

	gs.scoresUI = ui.NewHighScoreUI(table.Entries(), rank,
		func() { gs.sceneChanger.ChangeScene(createGameScene()) },
		func() { gs.sceneChanger.ChangeScene(createMenuScene()) },
	)

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createGameScene, createMenuScene))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}

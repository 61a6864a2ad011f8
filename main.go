package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/fonts"
	"github.com/automoto/pumpkin-invaders/scenes"
	"github.com/automoto/pumpkin-invaders/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(difficulty config.Difficulty) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g, difficulty)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	difficultyFlag := flag.String("difficulty", "", "Difficulty: easy, normal or hard")
	tuningPath := flag.String("tuning", "", "YAML file with gameplay overrides")
	resFlag := flag.Int("res", -1, "Play field size index (0-3)")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "Random seed (0 = random)")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "Start playing immediately")
	flag.StringVar(&config.Debug.PlayerName, "name", config.Debug.PlayerName, "Name recorded in the high-score table")
	flag.Parse()

	// Initialize persistence and load saved settings
	_ = systems.InitPersistence()

	difficulty := config.DifficultyNormal
	resIndex := config.Display.DefaultResolutionIndex
	if saved := systems.LoadSettings(systems.Store()); saved != nil {
		if saved.Muted {
			systems.SetSFXVolume(0)
		} else {
			systems.SetSFXVolume(saved.SFXVolume)
		}
		resIndex = saved.ResolutionIndex
		if d, err := config.ParseDifficulty(saved.Difficulty); err == nil {
			difficulty = d
		}
	}

	if *resFlag >= 0 {
		resIndex = *resFlag
	}
	res := config.ResolutionAt(resIndex)
	config.C.Width = res.Width
	config.C.Height = res.Height

	if *tuningPath != "" {
		difficulty = config.ApplyTuningFile(*tuningPath, difficulty)
	}

	if *difficultyFlag != "" {
		d, err := config.ParseDifficulty(*difficultyFlag)
		if err != nil {
			log.Fatalf("Invalid difficulty: %v", err)
		}
		difficulty = d
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Pumpkin Invaders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(difficulty)); err != nil {
		log.Fatal(err)
	}
}

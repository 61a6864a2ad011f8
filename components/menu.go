package components

import (
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents a main menu entry
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuDifficulty
	MainMenuSound
	MainMenuExit
)

// MenuData holds the title menu state
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
	Difficulty     cfg.Difficulty
}

var Menu = donburi.NewComponentType[MenuData]()

// GameOverOption represents a game over menu entry
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData holds the game over screen state
type GameOverData struct {
	SelectedOption GameOverOption
	Score          int
	Level          int
	Rank           int // -1 when the run did not enter the table
}

var GameOver = donburi.NewComponentType[GameOverData]()

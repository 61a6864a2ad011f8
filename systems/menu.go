package systems

import (
	"os"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createGameScene func(cfg.Difficulty) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(cfg.SoundHit)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(cfg.SoundHit)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		selected := menu.VisibleOptions[menu.SelectedIndex]

		// Left/right cycles the value of the selected setting
		step := 0
		if GetAction(input, cfg.ActionMoveLeft).JustPressed {
			step = -1
		}
		if GetAction(input, cfg.ActionMoveRight).JustPressed {
			step = 1
		}
		if step != 0 && selected != components.MainMenuStart && selected != components.MainMenuExit {
			adjustOption(menu, selected, step)
		}

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed && !GetAction(input, cfg.ActionFire).JustPressed {
			return
		}
		PlaySFX(cfg.SoundPowerUp)
		switch selected {
		case components.MainMenuStart:
			sceneChanger.ChangeScene(createGameScene(menu.Difficulty))
		case components.MainMenuDifficulty, components.MainMenuSound:
			adjustOption(menu, selected, 1)
		case components.MainMenuExit:
			os.Exit(0)
		}
	}
}

// adjustOption cycles a setting and stores the new preferences.
func adjustOption(menu *components.MenuData, option components.MainMenuOption, step int) {
	switch option {
	case components.MainMenuDifficulty:
		n := int(cfg.DifficultyHard) + 1
		menu.Difficulty = cfg.Difficulty((int(menu.Difficulty) + step + n) % n)
	case components.MainMenuSound:
		if SFXVolume() > 0 {
			SetSFXVolume(0)
		} else {
			SetSFXVolume(cfg.Audio.DefaultSFXVol)
		}
	}

	saved := LoadSettings(Store())
	if saved == nil {
		saved = &SavedSettings{ResolutionIndex: cfg.Display.DefaultResolutionIndex}
	}
	saved.Difficulty = menu.Difficulty.String()
	saved.SFXVolume = SFXVolume()
	saved.Muted = SFXVolume() == 0
	_ = SaveSettings(Store(), saved)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCentered(screen, "PUMPKIN INVADERS", fonts.Title.Get(), cfg.Menu.TitleY, cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		// Determine color based on selection
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, getOptionLabel(menu, option), menuFont, y+cfg.Menu.MenuItemHeight, textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, int(width-float64(text.BoundString(hintFont, hint).Dx()))/2, int(height)-12, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(menu *components.MenuData, option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "Start"
	case components.MainMenuDifficulty:
		return "Difficulty: " + menu.Difficulty.String()
	case components.MainMenuSound:
		if SFXVolume() > 0 {
			return "Sound: on"
		}
		return "Sound: off"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed.
// The difficulty defaults to the last one stored.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		difficulty := cfg.DifficultyNormal
		if saved := LoadSettings(Store()); saved != nil {
			if d, err := cfg.ParseDifficulty(saved.Difficulty); err == nil {
				difficulty = d
			}
		}

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuStart,
				components.MainMenuDifficulty,
				components.MainMenuSound,
				components.MainMenuExit,
			},
			Difficulty: difficulty,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

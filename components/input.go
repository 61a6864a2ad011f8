package components

import (
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputPointer
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus an optional pointer target. It is the only simulation state
// written from outside the frame loop.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	// Touch or mouse drag target for the ship's centre.
	TargetX   float64
	HasTarget bool
}

var Input = donburi.NewComponentType[InputData]()

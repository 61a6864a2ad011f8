package components

import "github.com/yohamta/donburi"

// WitchPhase is the witch's flight phase
type WitchPhase int

const (
	WitchFlying WitchPhase = iota
	WitchHit               // shot down, flying away
	WitchLeaving           // out of passes, exiting
)

type WitchData struct {
	Phase     WitchPhase
	Passes    int
	Direction float64
	Speed     float64
}

var Witch = donburi.NewComponentType[WitchData]()

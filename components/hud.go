package components

import "github.com/yohamta/donburi"

// Ring is a short expanding flash drawn where something exploded.
type Ring struct {
	X, Y      float64
	Frame     int
	Intensity float64
}

// HUDData is renderer-side state fed by notifications. The simulation never
// reads it.
type HUDData struct {
	Banner       string
	BannerFrames int
	ScoreFlash   int
	Rings        []Ring
}

var HUD = donburi.NewComponentType[HUDData]()

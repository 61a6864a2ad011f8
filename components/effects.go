package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks the active screen shake
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // total frames
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// ParticleKind selects particle colouring
type ParticleKind int

const (
	ParticleSpark ParticleKind = iota
	ParticleDebris
	ParticleBoss
)

// ParticleData is a purely cosmetic point with velocity, gravity and a
// lifetime. Particles have no collision object.
type ParticleData struct {
	Kind    ParticleKind
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
}

var Particle = donburi.NewComponentType[ParticleData]()

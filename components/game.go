package components

import (
	"time"

	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/leveldata"
	"github.com/yohamta/donburi"
)

// Rand is the random source used by the simulation. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Clock supplies wall-clock time for cosmetic oscillation.
type Clock interface {
	Now() time.Time
}

// Phase is the top-level life/level state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseShipDestroying
	PhaseLevelComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseShipDestroying:
		return "shipDestroying"
	case PhaseLevelComplete:
		return "levelComplete"
	case PhaseGameOver:
		return "gameOver"
	}
	return "unknown"
}

// GameData is the singleton holding everything that is not an entity:
// score, level, lives, shield, timers and the cutscene phase.
type GameData struct {
	Width  float64
	Height float64
	Scale  float64

	Difficulty cfg.Difficulty
	Mods       cfg.Modifiers

	Score  int
	Level  int
	Lives  int
	Shield int

	Combo      int
	ComboTimer int

	PierceCooldown int // frames pierce cannot drop
	AutoShoot      int // frames of autoshoot remaining

	Phase      Phase
	PhaseFrame int
	Paused     bool

	FormationSpeed float64
	OverrunPending bool // re-spawn the formation after the destruction cutscene

	WitchLastLevel int
	WitchGap       int

	Layouts []leveldata.Layout

	Rand  Rand
	Clock Clock
}

func (g *GameData) ShipDestroying() bool { return g.Phase == PhaseShipDestroying }
func (g *GameData) LevelComplete() bool  { return g.Phase == PhaseLevelComplete }
func (g *GameData) GameOver() bool       { return g.Phase == PhaseGameOver }

// Playing reports whether normal simulation runs this frame.
func (g *GameData) Playing() bool {
	return g.Phase == PhasePlaying && !g.Paused
}

// SetPhase switches the state machine and restarts its frame counter.
func (g *GameData) SetPhase(p Phase) {
	g.Phase = p
	g.PhaseFrame = 0
}

var Game = donburi.NewComponentType[GameData]()

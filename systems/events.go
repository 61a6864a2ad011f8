package systems

import (
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ExplosionKind identifies what blew up
type ExplosionKind int

const (
	ExplosionPumpkin ExplosionKind = iota
	ExplosionBossTile
	ExplosionBoss
	ExplosionShip
	ExplosionClone
	ExplosionWitch
	ExplosionProjectile
)

type Explosion struct {
	Kind      ExplosionKind
	X, Y      float64
	Intensity float64
}

type ScoreChanged struct {
	Value int
}

type ShieldChanged struct {
	Value int
}

type LifeLost struct {
	LivesLeft int
}

type LevelStart struct {
	Level  int
	IsBoss bool
}

type GameOver struct {
	Score int
	Level int
}

type SoundRequested struct {
	ID cfg.SoundID
}

// Notifications for renderers, audio and UI. Subscribers only read them;
// they are delivered once per frame after the simulation has run.
var (
	ExplosionEvent      = events.NewEventType[Explosion]()
	ScoreChangedEvent   = events.NewEventType[ScoreChanged]()
	ShieldChangedEvent  = events.NewEventType[ShieldChanged]()
	LifeLostEvent       = events.NewEventType[LifeLost]()
	LevelStartEvent     = events.NewEventType[LevelStart]()
	GameOverEvent       = events.NewEventType[GameOver]()
	SoundRequestedEvent = events.NewEventType[SoundRequested]()
)

// DeliverEvents flushes every queued notification to its subscribers.
func DeliverEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

func requestSound(e *ecs.ECS, id cfg.SoundID) {
	SoundRequestedEvent.Publish(e.World, SoundRequested{ID: id})
}

func addScore(e *ecs.ECS, points int) {
	g := getGame(e)
	g.Score += points
	ScoreChangedEvent.Publish(e.World, ScoreChanged{Value: g.Score})
}

// setShield clamps and stores the shield and notifies listeners.
func setShield(e *ecs.ECS, v int) {
	g := getGame(e)
	g.Shield = clampShield(v, cfg.Player.MaxShield)
	ShieldChangedEvent.Publish(e.World, ShieldChanged{Value: g.Shield})
}

func explode(e *ecs.ECS, kind ExplosionKind, x, y, intensity float64) {
	ExplosionEvent.Publish(e.World, Explosion{Kind: kind, X: x, Y: y, Intensity: intensity})
}

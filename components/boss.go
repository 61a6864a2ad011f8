package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BossState is the phase of the boss state machine
type BossState int

const (
	BossSpawning BossState = iota
	BossActive
	BossTeleporting
	BossExploding
	BossDefeated
)

func (s BossState) String() string {
	switch s {
	case BossSpawning:
		return "spawning"
	case BossActive:
		return "active"
	case BossTeleporting:
		return "teleporting"
	case BossExploding:
		return "exploding"
	case BossDefeated:
		return "defeated"
	}
	return "unknown"
}

type BossData struct {
	Name       string
	Projectile string
	Index      int
	Special    bool // dodges and teleports

	State      BossState
	StateFrame int

	Damage    float64
	MaxDamage float64
	Size      float64

	ShootCooldown int

	// Base position the oscillation is applied to (centre coordinates)
	BaseX     float64
	BaseY     float64
	Direction float64

	Entrance *gween.Tween

	TeleportX float64
	TeleportY float64
}

// Remaining returns the remaining hit-point fraction in [0, 1].
func (b *BossData) Remaining() float64 {
	if b.MaxDamage <= 0 {
		return 0
	}
	r := 1 - b.Damage/b.MaxDamage
	if r < 0 {
		return 0
	}
	return r
}

// Hittable reports whether damage can currently be applied.
func (b *BossData) Hittable() bool {
	return b.State == BossSpawning || b.State == BossActive
}

var Boss = donburi.NewComponentType[BossData]()

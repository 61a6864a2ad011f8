package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// WeaponKind is the content of a ship's weapon slot. A ship holds at most
// one weapon at a time.
type WeaponKind int

const (
	WeaponNone WeaponKind = iota
	WeaponLaser
	WeaponPierce
)

func (w WeaponKind) String() string {
	switch w {
	case WeaponLaser:
		return "laser"
	case WeaponPierce:
		return "pierce"
	}
	return "none"
}

// ShipData is shared by the main ship and every clone.
type ShipData struct {
	Weapon      WeaponKind
	WeaponTimer int // frames remaining
}

// Holds reports whether the ship currently holds an unexpired w.
func (s *ShipData) Holds(w WeaponKind) bool {
	return s.Weapon == w && s.WeaponTimer > 0
}

// Clear empties the weapon slot.
func (s *ShipData) Clear() {
	s.Weapon = WeaponNone
	s.WeaponTimer = 0
}

var Ship = donburi.NewComponentType[ShipData]()

// PlayerData holds the main-ship only state. Lives and shield live in the
// Game singleton.
type PlayerData struct {
	Speed float64

	// Destruction cutscene
	Visible    bool
	Rotation   float64
	SpinSpeed  float64
	DriftAngle float64
	GlideX     *gween.Tween
	GlideY     *gween.Tween

	AutoShootTick int // frames until the next automatic shot
}

var Player = donburi.NewComponentType[PlayerData]()

// CloneData holds support-ship state.
type CloneData struct {
	Health int // 3 healthy, 1 about to break
	Slot   int // signed offset from the main ship: -1, +1, -2, +2, ...
}

var Clone = donburi.NewComponentType[CloneData]()

// BulletData is a player or clone shot travelling upward.
type BulletData struct {
	Pierce bool
	SpeedY float64
	Owner  donburi.Entity
}

var Bullet = donburi.NewComponentType[BulletData]()

package components

import "github.com/yohamta/donburi"

// GrenadeData is a pumpkin shot aimed at the player.
type GrenadeData struct {
	SpeedX float64
	SpeedY float64
	Damage int
}

var Grenade = donburi.NewComponentType[GrenadeData]()

// BossProjectileData is a boss shot with mild homing.
type BossProjectileData struct {
	Kind   string
	SpeedX float64
	SpeedY float64
	Damage int
}

var BossProjectile = donburi.NewComponentType[BossProjectileData]()

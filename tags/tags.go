package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Clone          = donburi.NewTag().SetName("Clone")
	Bullet         = donburi.NewTag().SetName("Bullet")
	Pumpkin        = donburi.NewTag().SetName("Pumpkin")
	Boss           = donburi.NewTag().SetName("Boss")
	Grenade        = donburi.NewTag().SetName("Grenade")
	BossProjectile = donburi.NewTag().SetName("BossProjectile")
	PowerUp        = donburi.NewTag().SetName("PowerUp")
	ExtraLife      = donburi.NewTag().SetName("ExtraLife")
	Witch          = donburi.NewTag().SetName("Witch")
)

// Resolv tags for collision queries
const (
	ResolvShip           = "ship"
	ResolvPlayer         = "Player"
	ResolvClone          = "Clone"
	ResolvBullet         = "Bullet"
	ResolvPumpkin        = "Pumpkin"
	ResolvBoss           = "Boss"
	ResolvGrenade        = "Grenade"
	ResolvBossProjectile = "BossProjectile"
	ResolvThreat         = "threat"
	ResolvPickup         = "pickup"
	ResolvWitch          = "Witch"
	ResolvLaser          = "laser"
)

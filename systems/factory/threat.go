package factory

import (
	"math"

	"github.com/automoto/pumpkin-invaders/archetypes"
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// aim returns a velocity of the given speed from (x, y) toward (tx, ty). A
// target level with or above the origin falls straight down.
func aim(x, y, tx, ty, speed float64) (float64, float64) {
	dx, dy := tx-x, ty-y
	if dy <= 0 {
		return 0, speed
	}
	d := math.Hypot(dx, dy)
	return dx / d * speed, dy / d * speed
}

func threatDamage(g *components.GameData, base int) int {
	return int(math.Round(float64(base) * g.Mods.ThreatDamage))
}

// CreateGrenade spawns a pumpkin shot aimed at (tx, ty).
func CreateGrenade(ecs *ecs.ECS, x, y, tx, ty float64) *donburi.Entry {
	g := game(ecs)
	grenade := archetypes.Grenade.Spawn(ecs)

	size := cfg.Grenade.Size * g.Scale
	attachObject(ecs, grenade, x, y, size, size, tags.ResolvGrenade, tags.ResolvThreat)

	vx, vy := aim(x, y, tx, ty, cfg.Grenade.Speed*g.Scale)
	components.Grenade.SetValue(grenade, components.GrenadeData{
		SpeedX: vx,
		SpeedY: vy,
		Damage: threatDamage(g, cfg.Grenade.Damage),
	})
	return grenade
}

// CreateBossProjectile spawns a boss shot aimed at (tx, ty).
func CreateBossProjectile(ecs *ecs.ECS, kind string, x, y, tx, ty float64) *donburi.Entry {
	g := game(ecs)
	proj := archetypes.BossProjectile.Spawn(ecs)

	size := cfg.BossProjectile.Size * g.Scale
	attachObject(ecs, proj, x, y, size, size, tags.ResolvBossProjectile, tags.ResolvThreat)

	vx, vy := aim(x, y, tx, ty, cfg.BossProjectile.Speed*g.Scale)
	components.BossProjectile.SetValue(proj, components.BossProjectileData{
		Kind:   kind,
		SpeedX: vx,
		SpeedY: vy,
		Damage: threatDamage(g, cfg.BossProjectile.Damage),
	})
	return proj
}

package factory

import (
	"github.com/automoto/pumpkin-invaders/archetypes"
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerHome returns the main ship's resting centre.
func PlayerHome(g *components.GameData) (float64, float64) {
	return g.Width / 2, g.Height - cfg.Player.BottomMargin*g.Scale
}

func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	g := game(ecs)
	player := archetypes.Player.Spawn(ecs)

	x, y := PlayerHome(g)
	attachObject(ecs, player, x, y,
		cfg.Player.Width*g.Scale, cfg.Player.Height*g.Scale,
		tags.ResolvShip, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Speed:         cfg.Player.Speed * g.Scale,
		Visible:       true,
		AutoShootTick: cfg.Player.AutoShootEvery,
	})
	return player
}

// CreateClone spawns a support ship at the given slot offset next to the
// main ship.
func CreateClone(ecs *ecs.ECS, slot int, mainX, mainY float64) *donburi.Entry {
	g := game(ecs)
	clone := archetypes.Clone.Spawn(ecs)

	x, y := ClonePosition(g, slot, mainX, mainY)
	attachObject(ecs, clone, x, y,
		cfg.Clone.Width*g.Scale, cfg.Clone.Height*g.Scale,
		tags.ResolvShip, tags.ResolvClone)

	components.Clone.SetValue(clone, components.CloneData{
		Health: cfg.Clone.Health,
		Slot:   slot,
	})
	return clone
}

// ClonePosition returns the centre of the clone at slot, clamped to the field.
func ClonePosition(g *components.GameData, slot int, mainX, mainY float64) (float64, float64) {
	half := cfg.Clone.Width * g.Scale / 2
	x := mainX + float64(slot)*cfg.Clone.Spacing*g.Scale
	x = max(half, min(g.Width-half, x))
	return x, mainY + cfg.Clone.YOffset*g.Scale
}

// CreateBullet spawns a shot travelling upward from (x, y).
func CreateBullet(ecs *ecs.ECS, x, y float64, pierce bool, owner donburi.Entity) *donburi.Entry {
	g := game(ecs)
	bullet := archetypes.Bullet.Spawn(ecs)

	attachObject(ecs, bullet, x, y,
		cfg.Player.BulletWidth*g.Scale, cfg.Player.BulletHeight*g.Scale,
		tags.ResolvBullet)

	components.Bullet.SetValue(bullet, components.BulletData{
		Pierce: pierce,
		SpeedY: -cfg.Player.BulletSpeed * g.Scale,
		Owner:  owner,
	})
	return bullet
}

package factory

import (
	"github.com/automoto/pumpkin-invaders/archetypes"
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePowerUp(ecs *ecs.ECS, kind components.PowerUpKind, x, y float64) *donburi.Entry {
	g := game(ecs)
	powerUp := archetypes.PowerUp.Spawn(ecs)

	size := cfg.Drops.Size * g.Scale
	attachObject(ecs, powerUp, x, y, size, size, tags.ResolvPickup)

	components.PowerUp.SetValue(powerUp, components.PowerUpData{
		Kind:      kind,
		FallSpeed: cfg.Drops.FallSpeed * g.Scale,
	})
	return powerUp
}

func CreateExtraLife(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	g := game(ecs)
	token := archetypes.ExtraLife.Spawn(ecs)

	size := cfg.Witch.TokenSize * g.Scale
	attachObject(ecs, token, x, y, size, size, tags.ResolvPickup)

	components.ExtraLife.SetValue(token, components.ExtraLifeData{
		FallSpeed: cfg.Witch.TokenFallSpeed * g.Scale,
	})
	return token
}

// CreateWitch spawns the witch just off the left edge of the field.
func CreateWitch(ecs *ecs.ECS) *donburi.Entry {
	g := game(ecs)
	witch := archetypes.Witch.Spawn(ecs)

	w := cfg.Witch.Width * g.Scale
	h := cfg.Witch.Height * g.Scale
	attachObject(ecs, witch, -w/2, cfg.Witch.Y*g.Scale, w, h, tags.ResolvWitch)

	components.Witch.SetValue(witch, components.WitchData{
		Phase:     components.WitchFlying,
		Direction: 1,
		Speed:     cfg.Witch.Speed * g.Scale,
	})
	return witch
}

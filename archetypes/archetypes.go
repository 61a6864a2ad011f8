package archetypes

import (
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Game = newArchetype(
		components.Game,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
	ScreenShake = newArchetype(
		components.ScreenShake,
	)
	Formation = newArchetype(
		components.Formation,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Ship,
		components.Object,
	)
	Clone = newArchetype(
		tags.Clone,
		components.Clone,
		components.Ship,
		components.Object,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
	)
	Pumpkin = newArchetype(
		tags.Pumpkin,
		components.Pumpkin,
		components.Object,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Object,
	)
	Grenade = newArchetype(
		tags.Grenade,
		components.Grenade,
		components.Object,
	)
	BossProjectile = newArchetype(
		tags.BossProjectile,
		components.BossProjectile,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
	)
	ExtraLife = newArchetype(
		tags.ExtraLife,
		components.ExtraLife,
		components.Object,
	)
	Witch = newArchetype(
		tags.Witch,
		components.Witch,
		components.Object,
	)
	Particle = newArchetype(
		components.Particle,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

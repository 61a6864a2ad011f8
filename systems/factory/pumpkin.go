package factory

import (
	"github.com/automoto/pumpkin-invaders/archetypes"
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/leveldata"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// referenceCenterX is the horizontal centre of the field layouts are
// authored against.
const referenceCenterX = 240.0

// CreatePumpkin spawns one formation enemy for slot on the given level.
func CreatePumpkin(ecs *ecs.ECS, slot leveldata.Slot, level int) *donburi.Entry {
	g := game(ecs)
	pumpkin := archetypes.Pumpkin.Spawn(ecs)

	w := cfg.Formation.PumpkinWidth * g.Scale
	h := cfg.Formation.PumpkinHeight * g.Scale
	maxDamage := cfg.Formation.NormalMaxDamage
	if slot.BossTile {
		w *= cfg.Formation.BossTileScale
		h *= cfg.Formation.BossTileScale
		maxDamage = cfg.Formation.BossTileMaxDamage
	}

	x := g.Width/2 + (slot.X-referenceCenterX)*g.Scale
	y := slot.Y * g.Scale
	attachObject(ecs, pumpkin, x, y, w, h, tags.ResolvPumpkin)

	p := components.PumpkinData{
		MaxDamage: maxDamage,
		Alive:     true,
		BossTile:  slot.BossTile,
		FaceType:  slot.FaceType,
	}
	if g.Rand.Float64() < cfg.ShooterChance(level) {
		p.CanShoot = true
		p.ShootCooldown = RollPumpkinCooldown(g)
	}
	components.Pumpkin.SetValue(pumpkin, p)
	return pumpkin
}

// RollPumpkinCooldown picks a grenade cooldown in [min, max) frames scaled by
// the difficulty.
func RollPumpkinCooldown(g *components.GameData) int {
	span := cfg.Formation.ShootCooldownMax - cfg.Formation.ShootCooldownMin
	frames := cfg.Formation.ShootCooldownMin + g.Rand.IntN(span)
	return max(1, int(float64(frames)*g.Mods.ShootCooldown))
}

// CreateFormationWave spawns every pumpkin of layout.
func CreateFormationWave(ecs *ecs.ECS, layout leveldata.Layout, level int) []*donburi.Entry {
	pumpkins := make([]*donburi.Entry, 0, len(layout.Slots))
	for _, slot := range layout.Slots {
		pumpkins = append(pumpkins, CreatePumpkin(ecs, slot, level))
	}
	return pumpkins
}

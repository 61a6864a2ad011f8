package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi/ecs"
)

// startLevel creates the content of the current level: a boss on every
// third level, otherwise a formation with the witch when she is due.
func startLevel(e *ecs.ECS) {
	g := getGame(e)
	boss := cfg.IsBossLevel(g.Level)

	if boss {
		getFormation(e).Active = false
		factory.CreateBoss(e, g.Level)
	} else {
		spawnFormation(e)
		if WitchDue(g) {
			factory.CreateWitch(e)
			g.WitchLastLevel = g.Level
			g.WitchGap = factory.RollWitchGap(g.Rand)
			requestSound(e, cfg.SoundWitch)
		}
	}

	LevelStartEvent.Publish(e.World, LevelStart{Level: g.Level, IsBoss: boss})
}

// WitchDue reports whether the witch joins the current level.
func WitchDue(g *components.GameData) bool {
	return g.Level >= cfg.Witch.MinLevel &&
		!cfg.IsBossLevel(g.Level) &&
		g.Level-g.WitchLastLevel >= g.WitchGap
}

func spawnFormation(e *ecs.ECS) {
	g := getGame(e)
	layout := g.Layouts[(g.Level-1)%len(g.Layouts)]
	factory.CreateFormationWave(e, layout, g.Level)

	f := getFormation(e)
	f.Active = true
	f.Direction = 1
	f.Speed = g.FormationSpeed * g.Mods.EnemySpeed * g.Scale
	f.Layout = layout.Name
}

// completeLevel enters the level-complete cutscene after a wave clear or a
// boss defeat. Bullets, weapons and threats are dropped so nothing carries
// damage into the next level.
func completeLevel(e *ecs.ECS) {
	g := getGame(e)
	if g.Phase != components.PhasePlaying {
		return
	}
	clearBullets(e)
	clearThreats(e)
	clearWeapons(e)
	getFormation(e).Active = false

	if entry, ok := tags.Witch.First(e.World); ok {
		w := components.Witch.Get(entry)
		if w.Phase == components.WitchFlying {
			w.Phase = components.WitchLeaving
		}
	}

	g.SetPhase(components.PhaseLevelComplete)
	requestSound(e, cfg.SoundLevelComplete)
}

// advanceLevel runs when the level-complete cutscene ends. Anything fired or
// collected during the cutscene is dropped as well.
func advanceLevel(e *ecs.ECS) {
	g := getGame(e)
	destroyAll(e, tags.Witch)
	destroyAll(e, tags.Pumpkin)
	clearBullets(e)
	clearWeapons(e)

	g.Level++
	g.FormationSpeed += cfg.Formation.SpeedPerLevel
	g.SetPhase(components.PhasePlaying)
	startLevel(e)
}

func clearBullets(e *ecs.ECS) {
	destroyAll(e, tags.Bullet)
}

func clearThreats(e *ecs.ECS) {
	destroyAll(e, tags.Grenade)
	destroyAll(e, tags.BossProjectile)
}

// clearWeapons empties the weapon slot of the main ship and every clone.
func clearWeapons(e *ecs.ECS) {
	for _, entry := range shipEntries(e) {
		components.Ship.Get(entry).Clear()
	}
}

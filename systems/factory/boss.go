package factory

import (
	"github.com/automoto/pumpkin-invaders/archetypes"
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BossIdentityFor picks the named boss of a level and reports whether the
// rare special variant replaces it.
func BossIdentityFor(level int, r components.Rand) (cfg.BossIdentity, int, bool) {
	if level > cfg.Boss.SpecialMinLevel && r.Float64() < cfg.Boss.SpecialChance {
		return cfg.BossIdentity{Name: cfg.Boss.SpecialName, Projectile: "star"}, -1, true
	}
	idx := (level/3 - 1) % len(cfg.Boss.Roster)
	if idx < 0 {
		idx = 0
	}
	return cfg.Boss.Roster[idx], idx, false
}

// BossSize is the edge length of the boss on a level.
func BossSize(g *components.GameData, level int) float64 {
	return cfg.Boss.BaseSize * g.Scale * cfg.BossSizeFactor(level)
}

// CreateBoss spawns the level's boss above the field; it eases into its band.
func CreateBoss(ecs *ecs.ECS, level int) *donburi.Entry {
	g := game(ecs)
	boss := archetypes.Boss.Spawn(ecs)

	identity, idx, special := BossIdentityFor(level, g.Rand)
	size := BossSize(g, level)
	startY := -size / 2
	bandY := cfg.Boss.BandTop*g.Scale + size/2

	attachObject(ecs, boss, g.Width/2, startY, size, size, tags.ResolvBoss)

	components.Boss.SetValue(boss, components.BossData{
		Name:       identity.Name,
		Projectile: identity.Projectile,
		Index:      idx,
		Special:    special,
		State:      components.BossSpawning,
		MaxDamage:  cfg.BossMaxDamage(level),
		Size:       size,
		BaseX:      g.Width / 2,
		BaseY:      startY,
		Direction:  1,
		Entrance:   gween.New(float32(startY), float32(bandY), cfg.Boss.EntranceDuration, ease.OutQuad),
	})
	return boss
}

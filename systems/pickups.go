package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups applies falling power-ups and extra-life tokens that touch
// any ship.
func UpdatePickups(e *ecs.ECS) {
	g := getGame(e)

	for _, entry := range snapshot(e.World, tags.PowerUp) {
		if !entry.Valid() || !touchesShip(components.Object.Get(entry).Object) {
			continue
		}
		kind := components.PowerUp.Get(entry).Kind
		destroyEntity(e, entry)
		ApplyPowerUp(e, kind)
	}

	for _, entry := range snapshot(e.World, tags.ExtraLife) {
		if !touchesShip(components.Object.Get(entry).Object) {
			continue
		}
		destroyEntity(e, entry)
		g.Lives = min(g.Lives+1, cfg.Player.MaxLives)
		requestSound(e, cfg.SoundExtraLife)
	}
}

func touchesShip(obj *resolv.Object) bool {
	for _, ship := range nearby(obj, tags.ResolvShip) {
		if ship.HasComponent(components.Player) && !components.Player.Get(ship).Visible {
			continue
		}
		if overlaps(obj, components.Object.Get(ship).Object) {
			return true
		}
	}
	return false
}

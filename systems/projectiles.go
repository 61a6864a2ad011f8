package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves bullets, threats and falling tokens and drops
// whatever has left the field.
func UpdateProjectiles(e *ecs.ECS) {
	g := getGame(e)

	for _, entry := range snapshot(e.World, tags.Bullet) {
		b := components.Bullet.Get(entry)
		obj := components.Object.Get(entry)
		obj.Y += b.SpeedY
		removeOffscreen(e, g, entry)
	}

	for _, entry := range snapshot(e.World, tags.Grenade) {
		gr := components.Grenade.Get(entry)
		obj := components.Object.Get(entry)
		obj.X += gr.SpeedX
		obj.Y += gr.SpeedY
		removeOffscreen(e, g, entry)
	}

	px, _ := playerCenter(e)
	for _, entry := range snapshot(e.World, tags.BossProjectile) {
		p := components.BossProjectile.Get(entry)
		obj := components.Object.Get(entry)
		x, _ := obj.Center()
		homing := cfg.BossProjectile.Homing * g.Scale
		side := cfg.BossProjectile.MaxSideSpeed * g.Scale
		switch {
		case px > x:
			p.SpeedX += homing
		case px < x:
			p.SpeedX -= homing
		}
		p.SpeedX = max(-side, min(side, p.SpeedX))
		obj.X += p.SpeedX
		obj.Y += p.SpeedY
		removeOffscreen(e, g, entry)
	}

	for _, entry := range snapshot(e.World, tags.PowerUp) {
		components.Object.Get(entry).Y += components.PowerUp.Get(entry).FallSpeed
		removeOffscreen(e, g, entry)
	}
	for _, entry := range snapshot(e.World, tags.ExtraLife) {
		components.Object.Get(entry).Y += components.ExtraLife.Get(entry).FallSpeed
		removeOffscreen(e, g, entry)
	}
}

func removeOffscreen(e *ecs.ECS, g *components.GameData, entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	if obj.Y+obj.H < 0 || obj.Y > g.Height || obj.X+obj.W < 0 || obj.X > g.Width {
		destroyEntity(e, entry)
	}
}

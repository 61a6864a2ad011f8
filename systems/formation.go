package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFormation marches the pumpkins sideways, drops them a row at the
// edges and lets the shooters throw grenades. Clearing the wave completes
// the level; reaching the ship costs a life.
func UpdateFormation(e *ecs.ECS) {
	f := getFormation(e)
	if !f.Active {
		return
	}
	g := getGame(e)

	var live []*donburi.Entry
	alive := 0
	for _, entry := range snapshot(e.World, tags.Pumpkin) {
		p := components.Pumpkin.Get(entry)
		if p.Alive {
			alive++
		}
		if p.Hittable() {
			live = append(live, entry)
		}
	}
	// The wave is clear once the last explosion has finished.
	if alive == 0 {
		completeLevel(e)
		return
	}
	if len(live) == 0 {
		return
	}

	margin := cfg.Formation.EdgeMargin * g.Scale
	hitEdge := false
	for _, entry := range live {
		obj := components.Object.Get(entry)
		obj.X += f.Direction * f.Speed
		if f.Direction > 0 && obj.X+obj.W+margin >= g.Width {
			hitEdge = true
		}
		if f.Direction < 0 && obj.X-margin <= 0 {
			hitEdge = true
		}
	}

	if hitEdge {
		f.Direction = -f.Direction
		drop := cfg.Formation.DropDistance * g.Scale
		for _, entry := range live {
			components.Object.Get(entry).Y += drop
		}
	}

	_, homeY := factory.PlayerHome(g)
	line := homeY - cfg.Formation.OverrunLine*g.Scale
	for _, entry := range live {
		obj := components.Object.Get(entry)
		if obj.Y+obj.H >= line {
			overrunFormation(e, live)
			return
		}
	}

	px, py := playerCenter(e)
	for _, entry := range live {
		p := components.Pumpkin.Get(entry)
		if !p.CanShoot {
			continue
		}
		p.ShootCooldown--
		if p.ShootCooldown > 0 {
			continue
		}
		p.ShootCooldown = factory.RollPumpkinCooldown(g)
		x, y := components.Object.Get(entry).Center()
		factory.CreateGrenade(e, x, y, px, py)
		requestSound(e, cfg.SoundEnemyShoot)
	}
}

// overrunFormation blows up every pumpkin without scoring and costs a life.
// The wave is rebuilt once the destruction cutscene ends.
func overrunFormation(e *ecs.ECS, live []*donburi.Entry) {
	g := getGame(e)
	for _, entry := range live {
		p := components.Pumpkin.Get(entry)
		p.Exploding = true
		p.ExplosionFrame = 0
		x, y := components.Object.Get(entry).Center()
		explode(e, ExplosionPumpkin, x, y, 0.5)
	}
	getFormation(e).Active = false
	g.OverrunPending = true
	LoseLife(e)
}

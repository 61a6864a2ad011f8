package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the main ship from the movement intent, keeps the
// clones in formation around it and fires volleys while playing.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := getPlayer(e)
	if !ok {
		return
	}
	g := getGame(e)
	input := getOrCreateInput(e)
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	x, _ := obj.Center()
	switch {
	case input.HasTarget:
		dx := input.TargetX - x
		x += max(-player.Speed, min(player.Speed, dx))
	default:
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			x -= player.Speed
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			x += player.Speed
		}
	}
	x = max(obj.W/2, min(g.Width-obj.W/2, x))
	_, homeY := factory.PlayerHome(g)
	obj.SetCenter(x, homeY)

	for _, c := range cloneEntries(e) {
		cobj := components.Object.Get(c)
		cobj.SetCenter(factory.ClonePosition(g, components.Clone.Get(c).Slot, x, homeY))
	}

	if g.Phase != components.PhasePlaying || !player.Visible {
		return
	}

	fire := GetAction(input, cfg.ActionFire).JustPressed
	ship := components.Ship.Get(entry)
	if g.AutoShoot > 0 && ship.Weapon == components.WeaponNone {
		player.AutoShootTick--
		if player.AutoShootTick <= 0 {
			player.AutoShootTick = cfg.Player.AutoShootEvery
			fire = true
		}
	}
	if fire {
		fireVolley(e, entry)
	}
}

// fireVolley fires one bullet from the main ship and then from each clone
// while the live bullet count is under the cap. Ships holding a laser do
// not fire bullets.
func fireVolley(e *ecs.ECS, main *donburi.Entry) {
	g := getGame(e)
	clones := cloneEntries(e)
	capacity := cfg.BulletCap(g.Level, len(clones), g.AutoShoot > 0)
	live := bulletQuery.Count(e.World)

	fired, pierceFired := false, false
	for _, ship := range append([]*donburi.Entry{main}, clones...) {
		if live >= capacity {
			break
		}
		weapon := components.Ship.Get(ship)
		if weapon.Holds(components.WeaponLaser) {
			continue
		}
		pierce := ship == main && weapon.Holds(components.WeaponPierce)
		obj := components.Object.Get(ship)
		x, _ := obj.Center()
		factory.CreateBullet(e, x, obj.Y, pierce, ship.Entity())
		live++
		fired = true
		pierceFired = pierceFired || pierce
	}

	switch {
	case pierceFired:
		requestSound(e, cfg.SoundPierceShoot)
	case fired:
		requestSound(e, cfg.SoundShoot)
	}
}

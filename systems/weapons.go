package systems

import (
	"math"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// shipEntries returns the main ship followed by every clone.
func shipEntries(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	if entry, ok := getPlayer(e); ok {
		out = append(out, entry)
	}
	return append(out, cloneEntries(e)...)
}

func mainShip(e *ecs.ECS) *components.ShipData {
	entry, ok := getPlayer(e)
	if !ok {
		return nil
	}
	return components.Ship.Get(entry)
}

// ApplyPowerUp applies a collected power-up.
func ApplyPowerUp(e *ecs.ECS, kind components.PowerUpKind) {
	g := getGame(e)
	switch kind {
	case components.PowerUpLaser:
		collectLaser(e)
	case components.PowerUpPierce:
		collectPierce(e)
	case components.PowerUpClone:
		addClone(e)
	case components.PowerUpShield:
		setShield(e, g.Shield+cfg.Drops.ShieldBoost)
	case components.PowerUpFullShield:
		setShield(e, cfg.Player.MaxShield)
		for _, c := range cloneEntries(e) {
			components.Clone.Get(c).Health = cfg.Clone.Health
		}
	case components.PowerUpAutoShoot:
		g.AutoShoot = cfg.Weapons.AutoShootFrames
	case components.PowerUpKindCount:
	}
	requestSound(e, cfg.SoundPowerUp)
}

// AvailablePowerUps lists the kinds that may currently drop.
func AvailablePowerUps(e *ecs.ECS) []components.PowerUpKind {
	g := getGame(e)
	ship := mainShip(e)
	clones := len(cloneEntries(e))

	out := make([]components.PowerUpKind, 0, components.PowerUpKindCount)
	for k := components.PowerUpKind(0); k < components.PowerUpKindCount; k++ {
		switch k {
		case components.PowerUpPierce:
			if g.PierceCooldown > 0 || (ship != nil && ship.Holds(components.WeaponPierce)) {
				continue
			}
		case components.PowerUpClone:
			if clones >= cfg.Clone.MaxClones {
				continue
			}
		}
		out = append(out, k)
	}
	return out
}

// collectLaser gives the laser to the main ship when its slot is free.
// Otherwise the outermost clones carry it; a main ship without clones just
// refreshes its own laser.
func collectLaser(e *ecs.ECS) {
	ship := mainShip(e)
	if ship == nil {
		return
	}
	clones := cloneEntries(e)

	switch ship.Weapon {
	case components.WeaponNone:
		ship.Weapon = components.WeaponLaser
		ship.WeaponTimer = cfg.Weapons.LaserFrames
	case components.WeaponLaser:
		if len(clones) == 0 {
			ship.WeaponTimer = cfg.Weapons.LaserFrames
			return
		}
		assignLaserToClones(clones, cfg.Weapons.LaserFrames)
	case components.WeaponPierce:
		assignLaserToClones(clones, cfg.Weapons.LaserFrames)
	}
}

// collectPierce puts pierce on the main ship. A laser the main ship was
// holding moves over to the clones.
func collectPierce(e *ecs.ECS) {
	ship := mainShip(e)
	if ship == nil {
		return
	}
	if ship.Holds(components.WeaponLaser) {
		clones := cloneEntries(e)
		timer := max(ship.WeaponTimer, cloneLaserTimer(clones))
		assignLaserToClones(clones, timer)
	}
	ship.Weapon = components.WeaponPierce
	ship.WeaponTimer = cfg.Weapons.PierceFrames
}

// assignLaserToClones gives the laser to the leftmost and rightmost clones
// and clears every other clone. Calling it again with the same set is a
// no-op.
func assignLaserToClones(clones []*donburi.Entry, timer int) {
	if len(clones) == 0 || timer <= 0 {
		return
	}
	left, right := outermostClones(clones)
	for _, c := range clones {
		ship := components.Ship.Get(c)
		if c == left || c == right {
			ship.Weapon = components.WeaponLaser
			ship.WeaponTimer = timer
			continue
		}
		ship.Clear()
	}
}

func outermostClones(clones []*donburi.Entry) (*donburi.Entry, *donburi.Entry) {
	var left, right *donburi.Entry
	minSlot, maxSlot := math.MaxInt, math.MinInt
	for _, c := range clones {
		slot := components.Clone.Get(c).Slot
		if slot < minSlot {
			minSlot, left = slot, c
		}
		if slot > maxSlot {
			maxSlot, right = slot, c
		}
	}
	return left, right
}

// cloneLaserTimer is the longest laser timer among the clones.
func cloneLaserTimer(clones []*donburi.Entry) int {
	best := 0
	for _, c := range clones {
		ship := components.Ship.Get(c)
		if ship.Holds(components.WeaponLaser) {
			best = max(best, ship.WeaponTimer)
		}
	}
	return best
}

// nextCloneSlot returns the first free slot in the order -1, +1, -2, +2, ...
func nextCloneSlot(clones []*donburi.Entry) int {
	used := make(map[int]bool, len(clones))
	for _, c := range clones {
		used[components.Clone.Get(c).Slot] = true
	}
	for i := 1; ; i++ {
		if !used[-i] {
			return -i
		}
		if !used[i] {
			return i
		}
	}
}

func addClone(e *ecs.ECS) {
	clones := cloneEntries(e)
	if len(clones) >= cfg.Clone.MaxClones {
		return
	}
	x, y := factory.PlayerHome(getGame(e))
	if entry, ok := getPlayer(e); ok {
		x, y = components.Object.Get(entry).Center()
	}
	clone := factory.CreateClone(e, nextCloneSlot(clones), x, y)

	if timer := cloneLaserTimer(clones); timer > 0 {
		assignLaserToClones(append(clones, clone), timer)
	}
}

// LoseClone destroys a clone. Its laser moves to the remaining outermost
// clones, or back to the main ship when none are left and its slot is free.
func LoseClone(e *ecs.ECS, entry *donburi.Entry) {
	ship := components.Ship.Get(entry)
	timer := 0
	if ship.Holds(components.WeaponLaser) {
		timer = ship.WeaponTimer
	}
	x, y := components.Object.Get(entry).Center()
	destroyEntity(e, entry)
	explode(e, ExplosionClone, x, y, 0.5)
	factory.SpawnParticles(e, x, y, cfg.Particles.KillCount, components.ParticleDebris)
	requestSound(e, cfg.SoundExplosion)

	if timer == 0 {
		return
	}
	remaining := cloneEntries(e)
	if len(remaining) > 0 {
		assignLaserToClones(remaining, max(timer, cloneLaserTimer(remaining)))
		return
	}
	if main := mainShip(e); main != nil && main.Weapon == components.WeaponNone {
		main.Weapon = components.WeaponLaser
		main.WeaponTimer = timer
	}
}

// UpdateWeapons counts down weapon and power-up timers. When pierce runs out
// it goes on cooldown and the clones' laser returns to the main ship.
func UpdateWeapons(e *ecs.ECS) {
	g := getGame(e)
	if g.PierceCooldown > 0 {
		g.PierceCooldown--
	}
	if g.AutoShoot > 0 {
		g.AutoShoot--
	}

	main := mainShip(e)
	clones := cloneEntries(e)
	for _, c := range clones {
		ship := components.Ship.Get(c)
		if ship.Weapon == components.WeaponNone {
			continue
		}
		ship.WeaponTimer--
		if ship.WeaponTimer <= 0 {
			ship.Clear()
		}
	}

	if main == nil || main.Weapon == components.WeaponNone {
		return
	}
	main.WeaponTimer--
	if main.WeaponTimer > 0 {
		return
	}
	expired := main.Weapon
	main.Clear()
	if expired != components.WeaponPierce {
		return
	}

	g.PierceCooldown = cfg.PierceCooldownFrames(g.Level)
	if timer := cloneLaserTimer(clones); timer > 0 {
		main.Weapon = components.WeaponLaser
		main.WeaponTimer = timer
		for _, c := range clones {
			components.Ship.Get(c).Clear()
		}
	}
}

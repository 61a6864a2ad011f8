package systems

import (
	"math"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// damageEpsilon absorbs rounding in accumulated fractional laser damage.
const damageEpsilon = 1e-9

// UpdateCollisions resolves bullets, lasers and threats for this frame.
// Every list is walked as a snapshot so removals never skip an entity.
func UpdateCollisions(e *ecs.ECS) {
	for _, bullet := range snapshot(e.World, tags.Bullet) {
		if bullet.Valid() {
			resolveBullet(e, bullet)
		}
	}
	updateLasers(e)
	resolveThreats(e)
}

// resolveBullet checks one bullet against, in order, boss projectiles, the
// witch, the boss and the formation.
func resolveBullet(e *ecs.ECS, bullet *donburi.Entry) {
	g := getGame(e)
	b := components.Bullet.Get(bullet)
	obj := components.Object.Get(bullet)
	bx, by := obj.Center()

	radius := cfg.BossProjectile.BulletHitRadius * g.Scale
	for _, proj := range snapshot(e.World, tags.BossProjectile) {
		px, py := components.Object.Get(proj).Center()
		if math.Hypot(px-bx, py-by) > radius {
			continue
		}
		destroyEntity(e, proj)
		destroyEntity(e, bullet)
		explode(e, ExplosionProjectile, px, py, 0.3)
		addScore(e, cfg.BossProjectile.BulletHitScore)
		return
	}

	if witch, ok := tags.Witch.First(e.World); ok {
		w := components.Witch.Get(witch)
		wobj := components.Object.Get(witch)
		if w.Phase == components.WitchFlying && overlaps(obj.Object, wobj.Object) {
			w.Phase = components.WitchHit
			wx, wy := wobj.Center()
			addScore(e, cfg.Witch.Score)
			factory.CreateExtraLife(e, wx, wy)
			explode(e, ExplosionWitch, wx, wy, 0.6)
			requestSound(e, cfg.SoundHit)
			destroyEntity(e, bullet)
			return
		}
	}

	if boss, ok := tags.Boss.First(e.World); ok {
		if overlaps(obj.Object, components.Object.Get(boss).Object) {
			if ResolveBossHit(e, boss, b.Pierce) != HitPassthrough {
				destroyEntity(e, bullet)
				return
			}
		}
	}

	var hits []*donburi.Entry
	for _, p := range nearby(obj.Object, tags.ResolvPumpkin) {
		if components.Pumpkin.Get(p).Hittable() && overlaps(obj.Object, components.Object.Get(p).Object) {
			hits = append(hits, p)
		}
	}
	if len(hits) == 0 {
		return
	}

	if b.Pierce {
		for _, p := range hits {
			if components.Pumpkin.Get(p).Hittable() {
				killPumpkin(e, p, true)
			}
		}
		return
	}

	// A normal bullet stops at the lowest pumpkin it touches.
	target := hits[0]
	for _, p := range hits[1:] {
		if components.Object.Get(p).Y > components.Object.Get(target).Y {
			target = p
		}
	}
	destroyEntity(e, bullet)
	if !damagePumpkin(e, target, 1) {
		requestSound(e, cfg.SoundHit)
	}
}

// damagePumpkin adds damage and kills the pumpkin when it reaches its
// maximum. It reports whether the pumpkin died.
func damagePumpkin(e *ecs.ECS, entry *donburi.Entry, amount float64) bool {
	p := components.Pumpkin.Get(entry)
	if !p.Hittable() {
		return false
	}
	p.Damage += amount
	if p.Damage < p.MaxDamage-damageEpsilon {
		return false
	}
	killPumpkin(e, entry, true)
	return true
}

// killPumpkin starts the explosion of a pumpkin and scores it with the
// current combo. Primary kills roll a drop, and a primary boss-tile kill
// blows up every pumpkin within the splash radius.
func killPumpkin(e *ecs.ECS, entry *donburi.Entry, primary bool) {
	g := getGame(e)
	p := components.Pumpkin.Get(entry)
	p.Damage = p.MaxDamage
	p.Exploding = true
	p.ExplosionFrame = 0

	g.Combo++
	g.ComboTimer = cfg.Combo.DecayFrames
	base, kind := cfg.Formation.NormalScore, ExplosionPumpkin
	if p.BossTile {
		base, kind = cfg.Formation.BossTileScore, ExplosionBossTile
	}
	addScore(e, base*g.Combo)

	x, y := components.Object.Get(entry).Center()
	explode(e, kind, x, y, 0.5)
	factory.SpawnParticles(e, x, y, cfg.Particles.KillCount, components.ParticleSpark)
	triggerShake(e, cfg.ScreenShake.KillIntensity, cfg.ScreenShake.KillDuration)
	requestSound(e, cfg.SoundExplosion)

	if !primary {
		return
	}
	rollDrop(e, x, y, p.BossTile)
	if p.BossTile {
		splash(e, entry, x, y)
	}
}

func splash(e *ecs.ECS, source *donburi.Entry, x, y float64) {
	radius := cfg.Formation.SplashRadius * getGame(e).Scale
	for _, other := range snapshot(e.World, tags.Pumpkin) {
		if other == source || !components.Pumpkin.Get(other).Hittable() {
			continue
		}
		ox, oy := components.Object.Get(other).Center()
		if math.Hypot(ox-x, oy-y) <= radius {
			killPumpkin(e, other, false)
		}
	}
}

// rollDrop may spawn a power-up chosen from the kinds currently available.
func rollDrop(e *ecs.ECS, x, y float64, bossTile bool) {
	g := getGame(e)
	chance := cfg.Drops.NormalChance
	if bossTile {
		chance = cfg.Drops.BossTileChance
	}
	if g.Rand.Float64() >= chance*g.Mods.DropChance {
		return
	}
	kinds := AvailablePowerUps(e)
	if len(kinds) == 0 {
		return
	}
	factory.CreatePowerUp(e, kinds[g.Rand.IntN(len(kinds))], x, y)
}

// laserStack is the damage multiplier for n lasers on the same target; each
// extra laser adds a falling fraction of the previous one.
func laserStack(n int) float64 {
	total, part := 0.0, 1.0
	for i := 0; i < n; i++ {
		total += part
		part *= cfg.Weapons.LaserStackFalloff
	}
	return total
}

// updateLasers casts a beam from every laser-holding ship to the top of the
// field. Pumpkins and the boss above the ship take per-frame damage and
// threats inside the beam are vaporized.
func updateLasers(e *ecs.ECS) {
	g := getGame(e)
	space := getSpace(e)
	width := cfg.Weapons.LaserWidth * g.Scale

	hits := make(map[donburi.Entity]int)
	var targets []*donburi.Entry
	bossHits := 0
	boss, hasBoss := tags.Boss.First(e.World)

	for _, ship := range laserShips(e) {
		obj := components.Object.Get(ship)
		x, shipY := obj.Center()
		if obj.Y <= 0 {
			continue
		}
		beam := resolv.NewObject(x-width/2, 0, width, obj.Y, tags.ResolvLaser)
		space.Add(beam)

		for _, p := range nearby(beam, tags.ResolvPumpkin) {
			pobj := components.Object.Get(p)
			_, py := pobj.Center()
			if !components.Pumpkin.Get(p).Hittable() || py >= shipY || !overlaps(beam, pobj.Object) {
				continue
			}
			if hits[p.Entity()] == 0 {
				targets = append(targets, p)
			}
			hits[p.Entity()]++
		}

		if hasBoss && components.Boss.Get(boss).Hittable() {
			bobj := components.Object.Get(boss)
			if _, by := bobj.Center(); by < shipY && overlaps(beam, bobj.Object) {
				bossHits++
			}
		}

		for _, t := range nearby(beam, tags.ResolvThreat) {
			tobj := components.Object.Get(t)
			tx, ty := tobj.Center()
			if ty < shipY && overlaps(beam, tobj.Object) {
				destroyEntity(e, t)
				explode(e, ExplosionProjectile, tx, ty, 0.2)
			}
		}

		space.Remove(beam)
	}

	for _, p := range targets {
		damagePumpkin(e, p, cfg.Weapons.LaserEnemyDamage*laserStack(hits[p.Entity()]))
	}
	if bossHits > 0 {
		damageBoss(e, boss, cfg.Boss.LaserDamagePerFrame*laserStack(bossHits))
	}
}

// laserShips returns the visible ships currently holding a laser.
func laserShips(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	for _, ship := range shipEntries(e) {
		if !components.Ship.Get(ship).Holds(components.WeaponLaser) {
			continue
		}
		if ship.HasComponent(components.Player) && !components.Player.Get(ship).Visible {
			continue
		}
		out = append(out, ship)
	}
	return out
}

// resolveThreats lets grenades and boss projectiles hit the ships. Clones
// lose health; the main ship loses shield and, at zero, a life.
func resolveThreats(e *ecs.ECS) {
	g := getGame(e)
	threats := append(snapshot(e.World, tags.Grenade), snapshot(e.World, tags.BossProjectile)...)

	for _, t := range threats {
		if g.Phase != components.PhasePlaying {
			return
		}
		if !t.Valid() {
			continue
		}
		tobj := components.Object.Get(t)
		ship := threatTarget(tobj.Object)
		if ship == nil {
			continue
		}
		damage := threatDamageOf(t)
		destroyEntity(e, t)

		if ship.HasComponent(components.Clone) {
			c := components.Clone.Get(ship)
			c.Health--
			requestSound(e, cfg.SoundHit)
			if c.Health <= 0 {
				LoseClone(e, ship)
			}
			continue
		}

		setShield(e, g.Shield-damage)
		triggerShake(e, cfg.ScreenShake.PlayerHitIntensity, cfg.ScreenShake.PlayerHitDuration)
		requestSound(e, cfg.SoundPlayerHit)
		if g.Shield <= 0 {
			LoseLife(e)
		}
	}
}

// threatTarget returns the ship a threat overlaps, preferring clones.
func threatTarget(obj *resolv.Object) *donburi.Entry {
	var main *donburi.Entry
	for _, ship := range nearby(obj, tags.ResolvShip) {
		if !overlaps(obj, components.Object.Get(ship).Object) {
			continue
		}
		if ship.HasComponent(components.Clone) {
			return ship
		}
		if components.Player.Get(ship).Visible {
			main = ship
		}
	}
	return main
}

func threatDamageOf(entry *donburi.Entry) int {
	if entry.HasComponent(components.Grenade) {
		return components.Grenade.Get(entry).Damage
	}
	return components.BossProjectile.Get(entry).Damage
}

package systems

import (
	"math"
	"time"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HitResult tells the collision resolver what happened to a bullet that met
// the boss.
type HitResult int

const (
	HitConsumed    HitResult = iota // damage applied or dodged, bullet removed
	HitPassthrough                  // boss not hittable, bullet keeps flying
	HitDestroyed                    // this hit finished the boss
)

const tweenStep = float32(1.0 / 60.0)

// UpdateBoss runs the boss state machine.
func UpdateBoss(e *ecs.ECS) {
	entry, ok := tags.Boss.First(e.World)
	if !ok {
		return
	}
	b := components.Boss.Get(entry)
	obj := components.Object.Get(entry)

	switch b.State {
	case components.BossSpawning:
		y, done := b.Entrance.Update(tweenStep)
		b.BaseY = float64(y)
		obj.SetCenter(b.BaseX, b.BaseY)
		if done {
			b.State = components.BossActive
			b.StateFrame = 0
			b.ShootCooldown = rollBossCooldown(getGame(e))
		}
	case components.BossActive:
		moveBoss(e, entry, b)
		if b.State == components.BossActive {
			shootBoss(e, entry, b)
		}
	case components.BossTeleporting:
		b.StateFrame++
		if b.StateFrame == cfg.Boss.TeleportFrames/2 {
			b.BaseX, b.BaseY = b.TeleportX, b.TeleportY
			obj.SetCenter(b.BaseX, b.BaseY)
		}
		if b.StateFrame >= cfg.Boss.TeleportFrames {
			b.State = components.BossActive
			b.StateFrame = 0
		}
	case components.BossExploding:
		b.StateFrame++
		if b.StateFrame >= cfg.Boss.ExplosionFrames {
			defeatBoss(e, entry)
		}
	case components.BossDefeated:
	}
}

// bossBand returns the horizontal and vertical limits of the boss centre.
func bossBand(g *components.GameData, b *components.BossData) (left, right, top, bottom float64) {
	half := b.Size / 2
	left = cfg.Boss.BandLeft*g.Scale + half
	right = g.Width - (cfg.ReferenceWidth-cfg.Boss.BandRight)*g.Scale - half
	if right < left {
		left, right = g.Width/2, g.Width/2
	}
	top = cfg.Boss.BandTop*g.Scale + half
	bottom = top + cfg.Boss.BandHeight*g.Scale
	return left, right, top, bottom
}

// moveBoss sweeps the base position across the band while it slowly
// descends, and adds a small clock-driven wobble.
func moveBoss(e *ecs.ECS, entry *donburi.Entry, b *components.BossData) {
	g := getGame(e)
	obj := components.Object.Get(entry)
	left, right, top, _ := bossBand(g, b)

	b.BaseX += b.Direction * cfg.Boss.SweepSpeed * g.Scale * g.Mods.EnemySpeed
	if b.BaseX >= right {
		b.BaseX, b.Direction = right, -1
	} else if b.BaseX <= left {
		b.BaseX, b.Direction = left, 1
	}
	b.BaseY += cfg.Boss.DescentSpeed * g.Scale * g.Mods.EnemySpeed

	phase := oscillationPhase(g.Clock.Now(), cfg.Boss.OscillationPeriod)
	x := b.BaseX + math.Sin(phase)*cfg.Boss.OscillationX*g.Scale
	y := b.BaseY + math.Cos(phase)*cfg.Boss.OscillationY*g.Scale
	obj.SetCenter(max(left, min(right, x)), y)

	_, homeY := factory.PlayerHome(g)
	if obj.Y+obj.H >= homeY-cfg.Boss.BottomMargin*g.Scale {
		b.BaseY = top
		obj.SetCenter(b.BaseX, b.BaseY)
		LoseLife(e)
	}
}

func oscillationPhase(now time.Time, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	frac := float64(now.UnixNano()%int64(period)) / float64(period)
	return frac * 2 * math.Pi
}

func shootBoss(e *ecs.ECS, entry *donburi.Entry, b *components.BossData) {
	b.ShootCooldown--
	if b.ShootCooldown > 0 {
		return
	}
	g := getGame(e)
	b.ShootCooldown = rollBossCooldown(g)

	x, _ := components.Object.Get(entry).Center()
	y := components.Object.Get(entry).Y + b.Size
	px, py := playerCenter(e)
	factory.CreateBossProjectile(e, b.Projectile, x, y, px, py)
	requestSound(e, cfg.SoundEnemyShoot)
}

func rollBossCooldown(g *components.GameData) int {
	base := float64(cfg.BossShootCooldown(g.Level)) * g.Mods.ShootCooldown
	return max(1, int(base)+g.Rand.IntN(cfg.Boss.ShootCooldownJitter))
}

// ResolveBossHit applies a bullet hit to the boss. The special boss may dodge
// a normal bullet by teleporting, in which case no damage is dealt. Normal
// bullets are always consumed; pierce bullets only pass through a teleport.
func ResolveBossHit(e *ecs.ECS, entry *donburi.Entry, pierce bool) HitResult {
	b := components.Boss.Get(entry)
	if !b.Hittable() {
		if pierce && b.State == components.BossTeleporting {
			return HitPassthrough
		}
		return HitConsumed
	}
	g := getGame(e)

	if b.Special && !pierce && b.State == components.BossActive {
		if g.Rand.Float64() < cfg.DodgeChance(b.Remaining()) {
			startTeleport(e, entry, b)
			return HitConsumed
		}
	}

	amount := cfg.BulletDamage(g.Level)
	if pierce {
		amount = cfg.PierceBossDamage(g.Level)
	}
	requestSound(e, cfg.SoundHit)
	if damageBoss(e, entry, amount) {
		return HitDestroyed
	}
	return HitConsumed
}

func startTeleport(e *ecs.ECS, entry *donburi.Entry, b *components.BossData) {
	g := getGame(e)
	left, right, top, bottom := bossBand(g, b)
	b.State = components.BossTeleporting
	b.StateFrame = 0
	b.TeleportX = left + g.Rand.Float64()*(right-left)
	b.TeleportY = top + g.Rand.Float64()*(bottom-top)

	x, y := components.Object.Get(entry).Center()
	factory.SpawnParticles(e, x, y, cfg.Particles.KillCount, components.ParticleBoss)
	requestSound(e, cfg.SoundTeleport)
}

// damageBoss adds damage and starts the explosion when the pool is used up.
// It reports whether this call finished the boss.
func damageBoss(e *ecs.ECS, entry *donburi.Entry, amount float64) bool {
	b := components.Boss.Get(entry)
	if !b.Hittable() {
		return false
	}
	b.Damage = min(b.MaxDamage, b.Damage+amount)
	if b.Damage < b.MaxDamage {
		return false
	}

	b.State = components.BossExploding
	b.StateFrame = 0
	addScore(e, cfg.Boss.Score)

	x, y := components.Object.Get(entry).Center()
	explode(e, ExplosionBoss, x, y, 1)
	factory.SpawnParticles(e, x, y, cfg.Particles.BossCount, components.ParticleBoss)
	triggerShake(e, cfg.ScreenShake.BossKillIntensity, cfg.ScreenShake.BossKillDuration)
	requestSound(e, cfg.SoundBossExplosion)
	return true
}

// defeatBoss ends the fight: weapons and bullets are cleared, a full shield
// drops where the boss was and the level completes.
func defeatBoss(e *ecs.ECS, entry *donburi.Entry) {
	b := components.Boss.Get(entry)
	b.State = components.BossDefeated
	x, y := components.Object.Get(entry).Center()

	clearWeapons(e)
	clearBullets(e)
	factory.CreatePowerUp(e, components.PowerUpFullShield, x, y)
	destroyEntity(e, entry)
	completeLevel(e)
}

package systems

import (
	"testing"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newActiveBoss(t *testing.T, e *ecs.ECS) (*donburi.Entry, *components.BossData) {
	t.Helper()
	entry := factory.CreateBoss(e, 3)
	b := components.Boss.Get(entry)
	b.State = components.BossActive
	b.ShootCooldown = 1000
	b.BaseY = 200
	moveTo(entry, b.BaseX, b.BaseY)
	return entry, b
}

func TestSpecialBossDodgesByTeleporting(t *testing.T) {
	e, r := newTestGame(t)
	entry, b := newActiveBoss(t, e)
	b.Special = true
	b.Damage = 0.9 * b.MaxDamage
	damage := b.Damage
	startX, startY := components.Object.Get(entry).Center()

	r.queue(0.3, 0.25, 0.75)
	if got := ResolveBossHit(e, entry, false); got != HitConsumed {
		t.Fatalf("hit result = %v, want consumed", got)
	}
	if b.State != components.BossTeleporting {
		t.Fatalf("state = %v, want teleporting", b.State)
	}
	if b.Damage != damage {
		t.Errorf("damage = %v, want %v", b.Damage, damage)
	}

	left, right, top, bottom := bossBand(getGame(e), b)
	wantX := left + 0.25*(right-left)
	wantY := top + 0.75*(bottom-top)
	if abs(b.TeleportX-wantX) > 1e-9 || abs(b.TeleportY-wantY) > 1e-9 {
		t.Errorf("teleport target (%v, %v), want (%v, %v)", b.TeleportX, b.TeleportY, wantX, wantY)
	}

	for i := 0; i < 14; i++ {
		UpdateBoss(e)
	}
	if x, y := components.Object.Get(entry).Center(); abs(x-startX) > 1e-9 || abs(y-startY) > 1e-9 {
		t.Error("boss moved before the teleport midpoint")
	}
	UpdateBoss(e)
	x, y := components.Object.Get(entry).Center()
	if abs(x-wantX) > 1e-6 || abs(y-wantY) > 1e-6 {
		t.Errorf("boss at (%v, %v) after 15 frames, want (%v, %v)", x, y, wantX, wantY)
	}

	for i := 15; i < cfg.Boss.TeleportFrames; i++ {
		UpdateBoss(e)
	}
	if b.State != components.BossActive {
		t.Errorf("state = %v, want active after the teleport", b.State)
	}
}

func TestSpecialBossFailedDodgeTakesDamage(t *testing.T) {
	e, r := newTestGame(t)
	entry, b := newActiveBoss(t, e)
	b.Special = true

	r.queue(0.95)
	ResolveBossHit(e, entry, false)

	if b.State != components.BossActive || b.Damage != cfg.BulletDamage(3) {
		t.Errorf("state %v damage %v, want active with %v damage", b.State, b.Damage, cfg.BulletDamage(3))
	}
}

func TestPierceNeverDodged(t *testing.T) {
	e, r := newTestGame(t)
	entry, b := newActiveBoss(t, e)
	b.Special = true

	r.queue(0)
	ResolveBossHit(e, entry, true)

	if b.State != components.BossActive {
		t.Errorf("state = %v, want active", b.State)
	}
	if b.Damage != cfg.PierceBossDamage(3) {
		t.Errorf("damage = %v, want %v", b.Damage, cfg.PierceBossDamage(3))
	}
}

func TestUnhittableBossConsumesNormalBullets(t *testing.T) {
	tests := []struct {
		name   string
		state  components.BossState
		pierce bool
		want   HitResult
	}{
		{"normal while teleporting", components.BossTeleporting, false, HitConsumed},
		{"normal while exploding", components.BossExploding, false, HitConsumed},
		{"pierce while teleporting", components.BossTeleporting, true, HitPassthrough},
		{"pierce while exploding", components.BossExploding, true, HitConsumed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestGame(t)
			entry, b := newActiveBoss(t, e)
			b.State = tt.state

			if got := ResolveBossHit(e, entry, tt.pierce); got != tt.want {
				t.Errorf("hit result = %v, want %v", got, tt.want)
			}
			if b.Damage != 0 {
				t.Errorf("damage = %v, want 0", b.Damage)
			}
		})
	}
}

func TestNormalBulletRemovedByTeleportingBoss(t *testing.T) {
	e, _ := newTestGame(t)
	entry, b := newActiveBoss(t, e)
	b.State = components.BossTeleporting

	bx, by := components.Object.Get(entry).Center()
	bullet := factory.CreateBullet(e, bx, by, false, donburi.Null)
	UpdateCollisions(e)

	if bullet.Valid() {
		t.Error("normal bullet should be consumed by a teleporting boss")
	}
}

func TestBossDefeatCompletesLevel(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	for _, p := range pumpkins(e) {
		destroyEntity(e, p)
	}
	getFormation(e).Active = false
	entry, b := newActiveBoss(t, e)
	b.Damage = b.MaxDamage - 1
	x, y := components.Object.Get(entry).Center()
	factory.CreateBullet(e, x, y, false, 0)

	UpdateCollisions(e)

	if b.State != components.BossExploding {
		t.Fatalf("state = %v, want exploding", b.State)
	}
	if g.Score != cfg.Boss.Score {
		t.Errorf("score = %d, want %d", g.Score, cfg.Boss.Score)
	}
	if countTag(e, tags.Bullet) != 0 {
		t.Error("bullet should be consumed")
	}

	for i := 0; i < cfg.Boss.ExplosionFrames; i++ {
		UpdateBoss(e)
	}

	if _, ok := tags.Boss.First(e.World); ok {
		t.Error("boss should be removed once defeated")
	}
	if g.Phase != components.PhaseLevelComplete {
		t.Errorf("phase = %v, want levelComplete", g.Phase)
	}
	drops := snapshot(e.World, tags.PowerUp)
	if len(drops) != 1 || components.PowerUp.Get(drops[0]).Kind != components.PowerUpFullShield {
		t.Error("boss should drop one full shield")
	}
}

func TestBossEntrance(t *testing.T) {
	e, _ := newTestGame(t)
	entry := factory.CreateBoss(e, 3)
	b := components.Boss.Get(entry)
	if b.State != components.BossSpawning || b.MaxDamage != cfg.BossMaxDamage(3) {
		t.Fatalf("new boss state %v max %v", b.State, b.MaxDamage)
	}

	for i := 0; i < 200 && b.State == components.BossSpawning; i++ {
		UpdateBoss(e)
	}

	if b.State != components.BossActive {
		t.Fatalf("state = %v, want active", b.State)
	}
	_, _, top, _ := bossBand(getGame(e), b)
	if abs(b.BaseY-top) > 0.01 {
		t.Errorf("base y = %v, want %v", b.BaseY, top)
	}
	if b.ShootCooldown <= 0 {
		t.Error("entrance should roll a shoot cooldown")
	}
}

func TestBossReachingShipCostsLife(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	entry, b := newActiveBoss(t, e)
	b.BaseY = g.Height - 100

	UpdateBoss(e)

	if g.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", g.Lives, cfg.Player.StartingLives-1)
	}
	_, _, top, _ := bossBand(g, b)
	if b.BaseY != top {
		t.Errorf("boss base y = %v, want reset to %v", b.BaseY, top)
	}
	if _, y := components.Object.Get(entry).Center(); abs(y-top) > 1e-9 {
		t.Errorf("boss y = %v, want %v", y, top)
	}
}

func TestBossShootsAtCooldown(t *testing.T) {
	e, _ := newTestGame(t)
	_, b := newActiveBoss(t, e)
	b.ShootCooldown = 1

	UpdateBoss(e)

	if countTag(e, tags.BossProjectile) != 1 {
		t.Error("boss should fire when its cooldown runs out")
	}
	if b.ShootCooldown < cfg.BossShootCooldown(3) {
		t.Errorf("cooldown = %d, want at least %d", b.ShootCooldown, cfg.BossShootCooldown(3))
	}
}

func TestBossBandAtReferenceWidth(t *testing.T) {
	e, _ := newTestGame(t)
	_, b := newActiveBoss(t, e)
	g := getGame(e)
	if g.Width != cfg.ReferenceWidth || g.Scale != 1 {
		t.Fatalf("field %vx%v scale %v, want reference field", g.Width, g.Height, g.Scale)
	}

	left, right, _, _ := bossBand(g, b)
	half := b.Size / 2
	if want := cfg.Boss.BandLeft + half; left != want {
		t.Errorf("left = %v, want %v", left, want)
	}
	if want := cfg.Boss.BandRight - half; right != want {
		t.Errorf("right = %v, want %v", right, want)
	}
}

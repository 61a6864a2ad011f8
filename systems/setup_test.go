package systems

import (
	"testing"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
)

func TestSetupStartsLevelOne(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	if g.Level != 1 || g.Score != 0 || g.Lives != cfg.Player.StartingLives || g.Shield != cfg.Player.MaxShield {
		t.Errorf("unexpected start state %+v", g)
	}
	if g.Phase != components.PhasePlaying {
		t.Errorf("phase = %v, want playing", g.Phase)
	}
	if countTag(e, tags.Player) != 1 {
		t.Error("want exactly one player")
	}
	if !getFormation(e).Active || len(pumpkins(e)) != 32 {
		t.Error("level 1 should start with a full formation")
	}
}

func TestRestartResetsRun(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	ApplyPowerUp(e, components.PowerUpClone)
	ApplyPowerUp(e, components.PowerUpLaser)
	factory.CreateGrenade(e, 100, 100, 100, 200)
	factory.CreateBullet(e, 100, 400, false, 0)
	g.Score = 12345
	g.Level = 7
	g.Paused = true
	LoseLife(e)

	Restart(e)

	if g.Score != 0 || g.Level != 1 || g.Lives != cfg.Player.StartingLives || g.Shield != cfg.Player.MaxShield {
		t.Errorf("run not reset: %+v", g)
	}
	if g.Phase != components.PhasePlaying || g.Paused {
		t.Error("restart should resume normal play")
	}
	if countTag(e, tags.Player) != 1 || countTag(e, tags.Clone) != 0 {
		t.Error("want one fresh player and no clones")
	}
	if countTag(e, tags.Grenade) != 0 || countTag(e, tags.Bullet) != 0 {
		t.Error("projectiles should be gone")
	}
	if mainShip(e).Weapon != components.WeaponNone {
		t.Error("weapons should be reset")
	}
	if len(pumpkins(e)) != 32 {
		t.Errorf("%d pumpkins after restart, want 32", len(pumpkins(e)))
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e, _ := newTestGame(t)
	RegisterSimulation(e)
	g := getGame(e)
	p := pumpkins(e)[0]
	x := components.Object.Get(p).X

	g.Paused = true
	for i := 0; i < 10; i++ {
		e.Update()
	}
	if components.Object.Get(p).X != x {
		t.Error("formation moved while paused")
	}

	g.Paused = false
	e.Update()
	if components.Object.Get(p).X == x {
		t.Error("formation should move once unpaused")
	}
}

func TestPauseInputTogglesAndRestarts(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	input := getOrCreateInput(e)

	input.Current[cfg.ActionPause] = true
	UpdatePause(e)
	if !g.Paused {
		t.Fatal("pause press should pause")
	}

	g.Score = 99
	input.Previous = input.Current
	input.Current[cfg.ActionPause] = false
	input.Current[cfg.ActionRestart] = true
	UpdatePause(e)
	if g.Score != 0 || g.Paused {
		t.Error("restart from pause should start a fresh run")
	}
}

func TestFireRespectsBulletCap(t *testing.T) {
	e, _ := newTestGame(t)
	input := getOrCreateInput(e)
	for i := 0; i < 10; i++ {
		input.Previous = input.Current
		input.Current[cfg.ActionFire] = i%2 == 0
		UpdatePlayer(e)
	}
	if n := countTag(e, tags.Bullet); n != cfg.BulletCap(1, 0, false) {
		t.Errorf("%d bullets, want %d", n, cfg.BulletCap(1, 0, false))
	}
}

func TestLaserHolderDoesNotFire(t *testing.T) {
	e, _ := newTestGame(t)
	ApplyPowerUp(e, components.PowerUpLaser)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionFire] = true
	UpdatePlayer(e)
	if countTag(e, tags.Bullet) != 0 {
		t.Error("a laser holder should not fire bullets")
	}
}

func TestLaserDamagesPumpkinsAbove(t *testing.T) {
	e, _ := newTestGame(t)
	ApplyPowerUp(e, components.PowerUpLaser)
	// Line the ship up under the first column.
	target := pumpkins(e)[0]
	tx, _ := components.Object.Get(target).Center()
	_, hy := factory.PlayerHome(getGame(e))
	moveTo(mustPlayer(t, e), tx, hy)

	UpdateCollisions(e)

	if d := components.Pumpkin.Get(target).Damage; abs(d-cfg.Weapons.LaserEnemyDamage) > 1e-9 {
		t.Errorf("damage = %v, want %v", d, cfg.Weapons.LaserEnemyDamage)
	}
}

func TestLaserStackFalloff(t *testing.T) {
	if laserStack(0) != 0 || laserStack(1) != 1 {
		t.Error("unexpected single-laser multiplier")
	}
	want := 1 + cfg.Weapons.LaserStackFalloff
	if abs(laserStack(2)-want) > 1e-9 {
		t.Errorf("laserStack(2) = %v, want %v", laserStack(2), want)
	}
}

func TestAutoShootSuppressedByWeapons(t *testing.T) {
	tests := []struct {
		name   string
		weapon []components.PowerUpKind
		want   int
	}{
		{"no weapon", nil, 1},
		{"laser", []components.PowerUpKind{components.PowerUpLaser}, 0},
		{"pierce", []components.PowerUpKind{components.PowerUpPierce}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestGame(t)
			for _, k := range tt.weapon {
				ApplyPowerUp(e, k)
			}
			ApplyPowerUp(e, components.PowerUpAutoShoot)
			components.Player.Get(mustPlayer(t, e)).AutoShootTick = 1

			UpdatePlayer(e)

			if n := countTag(e, tags.Bullet); n != tt.want {
				t.Errorf("%d bullets, want %d", n, tt.want)
			}
		})
	}
}

func TestLaserVaporizesThreats(t *testing.T) {
	e, _ := newTestGame(t)
	ApplyPowerUp(e, components.PowerUpLaser)
	x, y := playerCenter(e)
	factory.CreateGrenade(e, x, y-150, x, y)
	factory.CreateBossProjectile(e, "seed", x, y-250, x, y)
	// Off to the side of the beam.
	factory.CreateGrenade(e, x+120, y-150, x+120, y)

	updateLasers(e)

	if n := countTag(e, tags.Grenade); n != 1 {
		t.Errorf("%d grenades left, want 1 outside the beam", n)
	}
	if n := countTag(e, tags.BossProjectile); n != 0 {
		t.Errorf("%d boss projectiles left, want 0", n)
	}
}

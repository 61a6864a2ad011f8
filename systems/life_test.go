package systems

import (
	"testing"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
)

func TestBossProjectileBreaksShield(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	ApplyPowerUp(e, components.PowerUpClone)
	ApplyPowerUp(e, components.PowerUpClone)
	ApplyPowerUp(e, components.PowerUpLaser)
	factory.CreatePowerUp(e, components.PowerUpShield, 100, 100)
	g.Shield = 10

	px, py := components.Object.Get(mustPlayer(t, e)).Center()
	factory.CreateBossProjectile(e, "seed", px, py, px, py+10)

	UpdateCollisions(e)

	if g.Shield != 0 {
		t.Errorf("shield = %d, want 0", g.Shield)
	}
	if g.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", g.Lives, cfg.Player.StartingLives-1)
	}
	if g.Phase != components.PhaseShipDestroying {
		t.Errorf("phase = %v, want shipDestroying", g.Phase)
	}
	if countTag(e, tags.Clone) != 0 || countTag(e, tags.PowerUp) != 0 {
		t.Error("clones and falling power-ups should be cleared")
	}
	if mainShip(e).Weapon != components.WeaponNone {
		t.Error("weapons should be cleared")
	}
	if countTag(e, tags.BossProjectile) != 0 {
		t.Error("projectile should be consumed")
	}
}

func TestGrenadeDamagesShieldOnly(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	px, py := components.Object.Get(mustPlayer(t, e)).Center()
	factory.CreateGrenade(e, px, py, px, py+10)

	UpdateCollisions(e)

	if g.Shield != cfg.Player.MaxShield-cfg.Grenade.Damage {
		t.Errorf("shield = %d, want %d", g.Shield, cfg.Player.MaxShield-cfg.Grenade.Damage)
	}
	if g.Lives != cfg.Player.StartingLives || g.Phase != components.PhasePlaying {
		t.Error("a grenade on a healthy shield should not cost a life")
	}
}

func TestCloneAbsorbsThreats(t *testing.T) {
	e, _ := newTestGame(t)
	ApplyPowerUp(e, components.PowerUpClone)
	c := cloneEntries(e)[0]
	cx, cy := components.Object.Get(c).Center()

	for i := 0; i < cfg.Clone.Health; i++ {
		factory.CreateGrenade(e, cx, cy, cx, cy+10)
		UpdateCollisions(e)
	}

	if len(cloneEntries(e)) != 0 {
		t.Error("clone should break after losing all its health")
	}
	if getGame(e).Shield != cfg.Player.MaxShield {
		t.Error("main shield should be untouched")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	g.Lives = 1

	LoseLife(e)

	if g.Phase != components.PhaseGameOver || g.Lives != 0 {
		t.Fatalf("phase %v lives %d, want gameOver with 0 lives", g.Phase, g.Lives)
	}
	if components.Player.Get(mustPlayer(t, e)).Visible {
		t.Error("ship should be gone")
	}

	LoseLife(e)
	if g.Lives != 0 {
		t.Error("lives must not go below zero")
	}
}

func TestLoseLifeIgnoredDuringCutscene(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	LoseLife(e)
	LoseLife(e)
	if g.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", g.Lives, cfg.Player.StartingLives-1)
	}
}

func TestDestroyCutsceneTimeline(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	player := components.Player.Get(mustPlayer(t, e))
	factory.CreateGrenade(e, 100, 100, 100, 200)
	LoseLife(e)

	for g.PhaseFrame < cfg.Cutscene.DeathMessageFrame {
		UpdateLifeAndLevel(e)
	}
	if DeathMessageVisible(g) {
		t.Error("death message shown too early")
	}
	UpdateLifeAndLevel(e)
	if !DeathMessageVisible(g) {
		t.Error("death message should be visible")
	}

	for g.PhaseFrame < cfg.Cutscene.SpinFrames+cfg.Cutscene.GlideFrames {
		UpdateLifeAndLevel(e)
	}
	if player.Visible {
		t.Error("ship should explode at the end of the glide")
	}
	x, y := components.Object.Get(mustPlayer(t, e)).Center()
	if abs(x-g.Width/2) > 0.01 || abs(y-g.Height/2) > 0.01 {
		t.Errorf("ship exploded at (%v, %v), want field centre", x, y)
	}

	for g.Phase == components.PhaseShipDestroying {
		UpdateLifeAndLevel(e)
	}
	if !player.Visible || g.Shield != cfg.Player.MaxShield {
		t.Error("ship should respawn with a full shield")
	}
	hx, hy := factory.PlayerHome(g)
	x, y = components.Object.Get(mustPlayer(t, e)).Center()
	if abs(x-hx) > 0.01 || abs(y-hy) > 0.01 {
		t.Errorf("ship respawned at (%v, %v), want (%v, %v)", x, y, hx, hy)
	}
	if countTag(e, tags.Grenade) != 0 {
		t.Error("leftover threats should be cleared")
	}
}

func TestExtraLifeCapped(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	g.Lives = cfg.Player.MaxLives
	px, py := components.Object.Get(mustPlayer(t, e)).Center()
	factory.CreateExtraLife(e, px, py)

	UpdatePickups(e)

	if g.Lives != cfg.Player.MaxLives {
		t.Errorf("lives = %d, want %d", g.Lives, cfg.Player.MaxLives)
	}
	if countTag(e, tags.ExtraLife) != 0 {
		t.Error("token should be collected")
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

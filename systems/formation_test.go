package systems

import (
	"math"
	"testing"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
)

func TestFormationFlipsAndDropsAtEdge(t *testing.T) {
	e, _ := newTestGame(t)
	all := pumpkins(e)
	if len(all) != 32 {
		t.Fatalf("got %d pumpkins, want 32", len(all))
	}

	// Push the wave right until its rightmost pumpkin sits just inside the margin.
	right := 0.0
	for _, p := range all {
		obj := components.Object.Get(p)
		right = max(right, obj.X+obj.W)
	}
	shift := 480 - cfg.Formation.EdgeMargin - 0.5 - right
	before := make(map[*components.ObjectData]float64, len(all))
	for _, p := range all {
		obj := components.Object.Get(p)
		obj.X += shift
		before[obj] = obj.Y
	}

	UpdateFormation(e)

	if got := getFormation(e).Direction; got != -1 {
		t.Errorf("direction = %v, want -1", got)
	}
	for obj, y := range before {
		if obj.Y != y+cfg.Formation.DropDistance {
			t.Fatalf("pumpkin y = %v, want %v", obj.Y, y+cfg.Formation.DropDistance)
		}
	}
}

func TestFormationMovesWithoutDropAwayFromEdge(t *testing.T) {
	e, _ := newTestGame(t)
	p := pumpkins(e)[0]
	obj := components.Object.Get(p)
	x, y := obj.X, obj.Y

	UpdateFormation(e)

	if obj.X != x+getFormation(e).Speed || obj.Y != y {
		t.Errorf("pumpkin at (%v, %v), want (%v, %v)", obj.X, obj.Y, x+getFormation(e).Speed, y)
	}
	if getFormation(e).Direction != 1 {
		t.Error("direction should not change away from the edges")
	}
}

func TestBulletKillsPumpkinOnlyAtLastHitPoint(t *testing.T) {
	tests := []struct {
		name      string
		damage    float64
		exploding bool
	}{
		{"one short of max", cfg.Formation.NormalMaxDamage - 1, true},
		{"two short of max", cfg.Formation.NormalMaxDamage - 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestGame(t)
			var target *components.PumpkinData
			var x, y float64
			for _, p := range pumpkins(e) {
				if !components.Pumpkin.Get(p).BossTile {
					target = components.Pumpkin.Get(p)
					x, y = components.Object.Get(p).Center()
					break
				}
			}
			target.Damage = tt.damage
			factory.CreateBullet(e, x, y, false, 0)

			UpdateCollisions(e)

			if target.Exploding != tt.exploding {
				t.Errorf("exploding = %v, want %v", target.Exploding, tt.exploding)
			}
			if countTag(e, tags.Bullet) != 0 {
				t.Error("normal bullet should be consumed by the hit")
			}
		})
	}
}

func TestPierceBulletKillsAndKeepsFlying(t *testing.T) {
	e, _ := newTestGame(t)
	p := pumpkins(e)[len(pumpkins(e))-1]
	x, y := components.Object.Get(p).Center()
	factory.CreateBullet(e, x, y, true, 0)

	UpdateCollisions(e)

	if !components.Pumpkin.Get(p).Exploding {
		t.Error("pierce bullet should kill a full-health pumpkin")
	}
	if countTag(e, tags.Bullet) != 1 {
		t.Error("pierce bullet should survive the kill")
	}
}

func TestBossTileSplash(t *testing.T) {
	e, _ := newTestGame(t)
	var tile *components.PumpkinData
	var x, y float64
	for _, p := range pumpkins(e) {
		cx, cy := components.Object.Get(p).Center()
		if components.Pumpkin.Get(p).BossTile && math.Abs(cx-216) < 0.01 && math.Abs(cy-110) < 0.01 {
			tile, x, y = components.Pumpkin.Get(p), cx, cy
		}
	}
	if tile == nil {
		t.Fatal("boss-tile at (216, 110) not found")
	}
	tile.Damage = tile.MaxDamage - 1
	factory.CreateBullet(e, x, y, false, 0)

	UpdateCollisions(e)

	exploding := 0
	for _, p := range pumpkins(e) {
		if components.Pumpkin.Get(p).Exploding {
			exploding++
		}
	}
	// The tile plus the five neighbours within the splash radius.
	if exploding != 6 {
		t.Errorf("%d pumpkins exploding, want 6", exploding)
	}
	if getGame(e).Combo != 6 {
		t.Errorf("combo = %d, want 6", getGame(e).Combo)
	}
}

func TestOverrunCostsLifeAndRebuildsWave(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	for _, p := range pumpkins(e) {
		components.Object.Get(p).Y = 590
	}

	UpdateFormation(e)

	if g.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", g.Lives, cfg.Player.StartingLives-1)
	}
	if g.Phase != components.PhaseShipDestroying {
		t.Fatalf("phase = %v, want shipDestroying", g.Phase)
	}
	if getFormation(e).Active {
		t.Error("formation should stop during the cutscene")
	}

	for i := 0; i < cfg.Cutscene.DestroyFrames; i++ {
		UpdateLifeAndLevel(e)
	}

	if g.Phase != components.PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.Phase)
	}
	if g.Level != 1 {
		t.Errorf("level = %d, want 1", g.Level)
	}
	if g.Shield != cfg.Player.MaxShield {
		t.Errorf("shield = %d, want %d", g.Shield, cfg.Player.MaxShield)
	}
	all := pumpkins(e)
	if len(all) != 32 {
		t.Fatalf("got %d pumpkins after rebuild, want 32", len(all))
	}
	for _, p := range all {
		if !components.Pumpkin.Get(p).Hittable() {
			t.Fatal("rebuilt wave should be fresh")
		}
	}
}

func TestWaveClearAdvancesLevel(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)

	clearWave := func() {
		for _, p := range pumpkins(e) {
			components.Pumpkin.Get(p).Alive = false
		}
		UpdateFormation(e)
		if g.Phase != components.PhaseLevelComplete {
			t.Fatalf("phase = %v, want levelComplete", g.Phase)
		}
		for i := 0; i < cfg.Cutscene.LevelCompleteFrames; i++ {
			UpdateLifeAndLevel(e)
		}
	}

	clearWave()
	if g.Level != 2 || g.Phase != components.PhasePlaying {
		t.Fatalf("level %d phase %v, want level 2 playing", g.Level, g.Phase)
	}
	if len(pumpkins(e)) != 32 {
		t.Errorf("level 2 has %d pumpkins, want 32", len(pumpkins(e)))
	}
	if g.FormationSpeed != cfg.Formation.BaseSpeed+cfg.Formation.SpeedPerLevel {
		t.Errorf("formation speed = %v", g.FormationSpeed)
	}

	clearWave()
	if g.Level != 3 {
		t.Fatalf("level = %d, want 3", g.Level)
	}
	if _, ok := tags.Boss.First(e.World); !ok {
		t.Error("level 3 should have a boss")
	}
	if getFormation(e).Active || len(pumpkins(e)) != 0 {
		t.Error("boss level should have no formation")
	}
}

func TestWaveNotClearWhileExploding(t *testing.T) {
	e, _ := newTestGame(t)
	for _, p := range pumpkins(e) {
		components.Pumpkin.Get(p).Exploding = true
	}
	UpdateFormation(e)
	if getGame(e).Phase != components.PhasePlaying {
		t.Error("level should not complete until explosions finish")
	}
}

func TestWitchDue(t *testing.T) {
	tests := []struct {
		level, last, gap int
		want             bool
	}{
		{3, 1, 3, false}, // below the minimum level, and a boss level
		{4, 1, 3, true},
		{5, 1, 6, false},
		{7, 1, 6, true},
		{6, 1, 3, false}, // boss level
	}
	for _, tt := range tests {
		g := &components.GameData{Level: tt.level, WitchLastLevel: tt.last, WitchGap: tt.gap}
		if got := WitchDue(g); got != tt.want {
			t.Errorf("WitchDue(level %d, last %d, gap %d) = %v, want %v", tt.level, tt.last, tt.gap, got, tt.want)
		}
	}
}

func TestPumpkinShootsWhenCooldownRunsOut(t *testing.T) {
	e, r := newTestGame(t)
	shooter := pumpkins(e)[0]
	p := components.Pumpkin.Get(shooter)
	p.CanShoot = true
	p.ShootCooldown = 2

	UpdateFormation(e)
	if n := countTag(e, tags.Grenade); n != 0 {
		t.Fatalf("%d grenades before the cooldown ran out, want 0", n)
	}

	r.queueInts(50)
	UpdateFormation(e)
	if n := countTag(e, tags.Grenade); n != 1 {
		t.Fatalf("%d grenades, want 1", n)
	}
	if want := cfg.Formation.ShootCooldownMin + 50; p.ShootCooldown != want {
		t.Errorf("cooldown = %d, want %d", p.ShootCooldown, want)
	}
	if p.ShootCooldown < cfg.Formation.ShootCooldownMin || p.ShootCooldown >= cfg.Formation.ShootCooldownMax {
		t.Errorf("cooldown %d outside [%d, %d)", p.ShootCooldown, cfg.Formation.ShootCooldownMin, cfg.Formation.ShootCooldownMax)
	}
}

func TestDropChanceByPumpkinKind(t *testing.T) {
	tests := []struct {
		name     string
		bossTile bool
		roll     float64
		want     int
	}{
		{"normal under chance", false, 0.14, 1},
		{"normal at chance", false, 0.15, 0},
		{"boss-tile under chance", true, 0.49, 1},
		{"boss-tile at chance", true, 0.50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, r := newTestGame(t)
			r.queue(tt.roll)
			rollDrop(e, 240, 300, tt.bossTile)
			if n := countTag(e, tags.PowerUp); n != tt.want {
				t.Errorf("%d power-ups, want %d", n, tt.want)
			}
		})
	}
}

func TestSplashKillsNeverDrop(t *testing.T) {
	e, r := newTestGame(t)
	r.fallback = 0
	var tile *donburi.Entry
	for _, p := range pumpkins(e) {
		cx, cy := components.Object.Get(p).Center()
		if components.Pumpkin.Get(p).BossTile && math.Abs(cx-216) < 0.01 && math.Abs(cy-110) < 0.01 {
			tile = p
		}
	}
	if tile == nil {
		t.Fatal("boss-tile at (216, 110) not found")
	}

	killPumpkin(e, tile, true)

	if n := countTag(e, tags.PowerUp); n != 1 {
		t.Errorf("%d power-ups, want only the primary kill's drop", n)
	}
}

func TestWeaponCollectedDuringCutsceneDoesNotCarryOver(t *testing.T) {
	e, _ := newTestGame(t)
	g := getGame(e)
	for _, p := range pumpkins(e) {
		components.Pumpkin.Get(p).Alive = false
	}
	UpdateFormation(e)
	if g.Phase != components.PhaseLevelComplete {
		t.Fatalf("phase = %v, want levelComplete", g.Phase)
	}

	x, y := playerCenter(e)
	factory.CreatePowerUp(e, components.PowerUpLaser, x, y)
	UpdatePickups(e)
	if !mainShip(e).Holds(components.WeaponLaser) {
		t.Fatal("laser should be collected during the cutscene")
	}

	for i := 0; i < cfg.Cutscene.LevelCompleteFrames; i++ {
		UpdateLifeAndLevel(e)
	}
	if g.Level != 2 {
		t.Fatalf("level = %d, want 2", g.Level)
	}
	if w := mainShip(e).Weapon; w != components.WeaponNone {
		t.Errorf("weapon = %v, want none", w)
	}
	if n := countTag(e, tags.Bullet); n != 0 {
		t.Errorf("%d bullets carried over, want 0", n)
	}
}

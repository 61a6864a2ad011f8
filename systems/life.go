package systems

import (
	"math"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLifeAndLevel advances the two cutscenes and the transitions at
// their ends.
func UpdateLifeAndLevel(e *ecs.ECS) {
	g := getGame(e)
	switch g.Phase {
	case components.PhaseShipDestroying:
		g.PhaseFrame++
		updateDestroyCutscene(e)
		if g.PhaseFrame >= cfg.Cutscene.DestroyFrames {
			finishDestroyCutscene(e)
		}
	case components.PhaseLevelComplete:
		g.PhaseFrame++
		if g.PhaseFrame >= cfg.Cutscene.LevelCompleteFrames {
			advanceLevel(e)
		}
	case components.PhasePlaying, components.PhaseGameOver:
	}
}

// LoseLife zeroes the shield, takes a life and strips the clones, falling
// power-ups and weapons. With lives left the destruction cutscene starts,
// otherwise the game is over.
func LoseLife(e *ecs.ECS) {
	g := getGame(e)
	if g.Phase == components.PhaseShipDestroying || g.Phase == components.PhaseGameOver {
		return
	}

	setShield(e, 0)
	g.Lives = max(0, g.Lives-1)
	g.AutoShoot = 0
	destroyAll(e, tags.Clone)
	destroyAll(e, tags.PowerUp)
	clearWeapons(e)

	LifeLostEvent.Publish(e.World, LifeLost{LivesLeft: g.Lives})
	requestSound(e, cfg.SoundLifeLost)
	triggerShake(e, cfg.ScreenShake.DeathIntensity, cfg.ScreenShake.DeathDuration)

	entry, ok := getPlayer(e)
	if g.Lives == 0 {
		g.SetPhase(components.PhaseGameOver)
		if ok {
			x, y := components.Object.Get(entry).Center()
			components.Player.Get(entry).Visible = false
			factory.SpawnParticles(e, x, y, cfg.Particles.DebrisCount, components.ParticleDebris)
			explode(e, ExplosionShip, x, y, 1)
		}
		requestSound(e, cfg.SoundGameOver)
		GameOverEvent.Publish(e.World, GameOver{Score: g.Score, Level: g.Level})
		return
	}

	g.SetPhase(components.PhaseShipDestroying)
	if ok {
		p := components.Player.Get(entry)
		p.Rotation = 0
		p.SpinSpeed = 0
		p.DriftAngle = 0
		p.GlideX = nil
		p.GlideY = nil
	}
}

// DeathMessageVisible reports whether the "YOU DIED" banner is shown.
func DeathMessageVisible(g *components.GameData) bool {
	return g.Phase == components.PhaseShipDestroying && g.PhaseFrame > cfg.Cutscene.DeathMessageFrame
}

// updateDestroyCutscene spins the ship with a widening spiral, glides it to
// the centre of the field and then blows it up.
func updateDestroyCutscene(e *ecs.ECS) {
	g := getGame(e)
	entry, ok := getPlayer(e)
	if !ok {
		return
	}
	p := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	frame := g.PhaseFrame
	explodeAt := cfg.Cutscene.SpinFrames + cfg.Cutscene.GlideFrames

	switch {
	case frame <= cfg.Cutscene.SpinFrames:
		p.SpinSpeed += cfg.Cutscene.SpinAcceleration
		p.Rotation += p.SpinSpeed
		p.DriftAngle += p.SpinSpeed
		drift := cfg.Cutscene.SpiralDrift * g.Scale * float64(frame) / float64(cfg.Cutscene.SpinFrames)
		x, y := obj.Center()
		x = max(obj.W/2, min(g.Width-obj.W/2, x+math.Cos(p.DriftAngle)*drift))
		y = max(obj.H/2, min(g.Height-obj.H/2, y+math.Sin(p.DriftAngle)*drift))
		obj.SetCenter(x, y)
		if frame == cfg.Cutscene.SpinFrames {
			glide := float32(cfg.Cutscene.GlideFrames)
			p.GlideX = gween.New(float32(x), float32(g.Width/2), glide, ease.InOutQuad)
			p.GlideY = gween.New(float32(y), float32(g.Height/2), glide, ease.InOutQuad)
		}
	case frame <= explodeAt:
		p.Rotation += p.SpinSpeed
		if p.GlideX != nil && p.GlideY != nil {
			x, _ := p.GlideX.Update(1)
			y, _ := p.GlideY.Update(1)
			obj.SetCenter(float64(x), float64(y))
		}
		if frame == explodeAt {
			p.Visible = false
			x, y := obj.Center()
			factory.SpawnParticles(e, x, y, cfg.Particles.DebrisCount, components.ParticleDebris)
			explode(e, ExplosionShip, x, y, 1)
			requestSound(e, cfg.SoundExplosion)
		}
	}
	obj.Update()
}

// finishDestroyCutscene restores the ship and clears leftover projectiles.
// An overrun formation is rebuilt for the same level.
func finishDestroyCutscene(e *ecs.ECS) {
	g := getGame(e)
	setShield(e, cfg.Player.MaxShield)

	if entry, ok := getPlayer(e); ok {
		p := components.Player.Get(entry)
		p.Visible = true
		p.Rotation = 0
		p.SpinSpeed = 0
		p.GlideX = nil
		p.GlideY = nil
		p.AutoShootTick = cfg.Player.AutoShootEvery
		obj := components.Object.Get(entry)
		obj.SetCenter(factory.PlayerHome(g))
		obj.Update()
	}

	clearBullets(e)
	clearThreats(e)

	if g.OverrunPending {
		g.OverrunPending = false
		destroyAll(e, tags.Pumpkin)
		spawnFormation(e)
	}
	g.SetPhase(components.PhasePlaying)
}

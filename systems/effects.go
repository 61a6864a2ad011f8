package systems

import (
	"math"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects decays the combo and screen shake, moves particles and
// finishes pumpkin explosions.
func UpdateEffects(ecs *ecs.ECS) {
	updateCombo(ecs)
	updateScreenShake(ecs)
	updateParticles(ecs)
	updatePumpkinExplosions(ecs)
}

func updateCombo(ecs *ecs.ECS) {
	g := getGame(ecs)
	if g.ComboTimer <= 0 {
		return
	}
	g.ComboTimer--
	if g.ComboTimer == 0 {
		g.Combo = 0
	}
}

// updateScreenShake advances the active shake and clears it when done.
func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration == 0 {
		return
	}
	shake.Elapsed++
	if shake.Elapsed >= shake.Duration {
		*shake = components.ScreenShakeData{}
	}
}

// ShakeOffset returns the current draw offset of the screen shake.
func ShakeOffset(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration == 0 {
		return 0, 0
	}

	// Calculate decaying intensity
	progress := math.Max(0, float64(shake.Duration-shake.Elapsed)/float64(shake.Duration))
	intensity := shake.Intensity * progress
	return math.Sin(float64(shake.Elapsed)*1.1) * intensity,
		math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// triggerShake starts a screen shake. A weaker shake never overrides a
// stronger one that is still running.
func triggerShake(ecs *ecs.ECS, intensity float64, duration int) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration > 0 && intensity <= shake.Intensity {
		return
	}
	*shake = components.ScreenShakeData{Intensity: intensity, Duration: duration}
}

func updateParticles(ecs *ecs.ECS) {
	var expired []donburi.Entity
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.X += p.VX
		p.Y += p.VY
		p.VY += cfg.Particles.Gravity
		p.Life--
		if p.Life <= 0 {
			expired = append(expired, e.Entity())
		}
	})
	for _, ent := range expired {
		ecs.World.Remove(ent)
	}
}

// updatePumpkinExplosions removes pumpkins whose explosion animation has
// played out.
func updatePumpkinExplosions(ecs *ecs.ECS) {
	for _, entry := range snapshot(ecs.World, tags.Pumpkin) {
		p := components.Pumpkin.Get(entry)
		if !p.Exploding {
			continue
		}
		p.ExplosionFrame++
		if p.ExplosionFrame >= cfg.Formation.ExplosionFrames {
			p.Alive = false
			destroyEntity(ecs, entry)
		}
	}
}

package factory

import (
	"math"

	"github.com/automoto/pumpkin-invaders/archetypes"
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var particleQuery = donburi.NewQuery(filter.Contains(components.Particle))

// SpawnParticles bursts count particles from (x, y) in random directions,
// never exceeding the live particle cap.
func SpawnParticles(ecs *ecs.ECS, x, y float64, count int, kind components.ParticleKind) {
	g := game(ecs)
	room := cfg.Particles.MaxLive - particleQuery.Count(ecs.World)
	count = min(count, room)

	for i := 0; i < count; i++ {
		angle := g.Rand.Float64() * 2 * math.Pi
		speed := (0.3 + 0.7*g.Rand.Float64()) * cfg.Particles.Speed * g.Scale
		life := cfg.Particles.Life/2 + g.Rand.IntN(cfg.Particles.Life/2+1)

		p := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(p, components.ParticleData{
			Kind:    kind,
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
		})
	}
}

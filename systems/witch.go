package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWitch flies the witch back and forth across the top of the field
// until she runs out of passes, is shot down or the level ends.
func UpdateWitch(e *ecs.ECS) {
	entry, ok := tags.Witch.First(e.World)
	if !ok {
		return
	}
	g := getGame(e)
	w := components.Witch.Get(entry)
	obj := components.Object.Get(entry)

	switch w.Phase {
	case components.WitchFlying:
		obj.X += w.Direction * w.Speed
		offRight := w.Direction > 0 && obj.X >= g.Width
		offLeft := w.Direction < 0 && obj.X+obj.W <= 0
		if !offRight && !offLeft {
			return
		}
		w.Passes++
		if w.Passes >= cfg.Witch.MaxPasses {
			destroyEntity(e, entry)
			return
		}
		w.Direction = -w.Direction
	case components.WitchHit, components.WitchLeaving:
		obj.Y -= cfg.Witch.FlyAwaySpeed * g.Scale
		obj.X += w.Direction * w.Speed / 2
		if obj.Y+obj.H <= 0 || obj.X >= g.Width || obj.X+obj.W <= 0 {
			destroyEntity(e, entry)
		}
	}
}

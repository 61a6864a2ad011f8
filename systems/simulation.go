package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	bulletQuery = donburi.NewQuery(filter.Contains(tags.Bullet))
	cloneQuery  = donburi.NewQuery(filter.Contains(tags.Clone))
)

// RegisterSimulation adds the per-frame simulation systems in their fixed
// order. Input, pause and rendering are registered by the scene.
func RegisterSimulation(e *ecs.ECS) {
	e.AddSystem(WithPauseCheck(WithPhases(UpdatePlayer, components.PhasePlaying, components.PhaseLevelComplete)))
	e.AddSystem(WithGameplayChecks(UpdateFormation))
	e.AddSystem(WithGameplayChecks(UpdateBoss))
	e.AddSystem(WithPauseCheck(WithPhases(UpdateWitch, components.PhasePlaying, components.PhaseLevelComplete)))
	e.AddSystem(WithPauseCheck(WithPhases(UpdateProjectiles, components.PhasePlaying, components.PhaseLevelComplete)))
	e.AddSystem(WithPauseCheck(UpdateObjects))
	e.AddSystem(WithGameplayChecks(UpdateCollisions))
	e.AddSystem(WithPauseCheck(WithPhases(UpdatePickups, components.PhasePlaying, components.PhaseLevelComplete)))
	e.AddSystem(WithGameplayChecks(UpdateWeapons))
	e.AddSystem(WithPauseCheck(UpdateLifeAndLevel))
	e.AddSystem(WithPauseCheck(UpdateEffects))
	e.AddSystem(DeliverEvents)
}

// WithPhases wraps a system to run only in the listed phases.
func WithPhases(system ecs.System, phases ...components.Phase) ecs.System {
	return func(e *ecs.ECS) {
		g := getGame(e)
		for _, p := range phases {
			if g.Phase == p {
				system(e)
				return
			}
		}
	}
}

// WithGameplayChecks wraps a system to run only during normal play: not
// paused and no cutscene or game over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithPhases(system, components.PhasePlaying))
}

func getGame(e *ecs.ECS) *components.GameData {
	return components.Game.Get(components.Game.MustFirst(e.World))
}

func getSpace(e *ecs.ECS) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(e.World))
}

func getFormation(e *ecs.ECS) *components.FormationData {
	return components.Formation.Get(components.Formation.MustFirst(e.World))
}

func getPlayer(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// playerCenter returns the main ship's centre, or the field's bottom centre
// when there is no ship.
func playerCenter(e *ecs.ECS) (float64, float64) {
	if entry, ok := getPlayer(e); ok {
		return components.Object.Get(entry).Center()
	}
	g := getGame(e)
	return g.Width / 2, g.Height
}

// snapshot collects the entries of a tag so callers can remove entities
// while walking the list.
func snapshot(w donburi.World, tag donburi.IComponentType) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

// cloneEntries returns the live clones.
func cloneEntries(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	cloneQuery.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

// destroyEntity removes an entity and its collision object.
func destroyEntity(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

func destroyAll(e *ecs.ECS, tag donburi.IComponentType) {
	for _, entry := range snapshot(e.World, tag) {
		destroyEntity(e, entry)
	}
}

// overlaps is the narrow-phase test after a resolv broad-phase query.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// nearby returns the entries whose objects share a cell with obj and carry
// the tag.
func nearby(obj *resolv.Object, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	seen := make(map[donburi.Entity]bool)
	for _, o := range check.ObjectsByTags(tag) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || seen[entry.Entity()] {
			continue
		}
		seen[entry.Entity()] = true
		out = append(out, entry)
	}
	return out
}

func clampShield(v, maxShield int) int {
	return max(0, min(maxShield, v))
}

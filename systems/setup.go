package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const spaceCellSize = 16

// Setup creates the singletons, the main ship and level 1 content.
func Setup(e *ecs.ECS, opts factory.GameOptions) {
	factory.CreateSpace(e, opts.Width, opts.Height, spaceCellSize, spaceCellSize)
	factory.CreateGame(e, opts)
	factory.CreateInput(e)
	factory.CreateScreenShake(e)
	factory.CreateFormation(e)
	factory.CreatePlayer(e)
	startLevel(e)
}

// runEntities matches everything a run creates; singletons are left alone.
var runEntities = donburi.NewQuery(filter.Or(
	filter.Contains(components.Object),
	filter.Contains(components.Particle),
))

// Restart throws away every entity and timer of the current run and starts
// again from level 1 in one step.
func Restart(e *ecs.ECS) {
	g := getGame(e)

	var toRemove []donburi.Entity
	runEntities.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry.Entity())
	})
	for _, ent := range toRemove {
		e.World.Remove(ent)
	}

	spaceEntry := components.Space.MustFirst(e.World)
	components.Space.Set(spaceEntry, resolv.NewSpace(int(g.Width), int(g.Height), spaceCellSize, spaceCellSize))

	factory.ResetGame(g)
	components.Formation.SetValue(components.Formation.MustFirst(e.World), components.FormationData{Direction: 1})
	components.ScreenShake.SetValue(components.ScreenShake.MustFirst(e.World), components.ScreenShakeData{})
	input := getOrCreateInput(e)
	input.HasTarget = false

	factory.CreatePlayer(e)
	startLevel(e)
}

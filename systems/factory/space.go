package factory

import (
	"github.com/automoto/pumpkin-invaders/archetypes"
	"github.com/automoto/pumpkin-invaders/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject creates a collision object of size w x h centred on (cx, cy),
// links it to entry and adds it to the space.
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, cx, cy, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h, tags...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// game returns the game singleton. Every factory function runs after it has
// been created.
func game(ecs *ecs.ECS) *components.GameData {
	return components.Game.Get(components.Game.MustFirst(ecs.World))
}

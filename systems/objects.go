package systems

import (
	"github.com/automoto/pumpkin-invaders/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-buckets every moved collision object into its space
// cells before collisions are resolved.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

package systems

import (
	"testing"
	"time"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/leveldata"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scriptedRand returns queued floats first and then a fixed fallback. The
// fallback of 0.99 keeps pumpkins from shooting and power-ups from dropping.
// IntN returns queued ints the same way and 0 once they run out.
type scriptedRand struct {
	floats   []float64
	ints     []int
	fallback float64
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.fallback
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) queueInts(v ...int) { r.ints = append(r.ints, v...) }

func (r *scriptedRand) queue(v ...float64) { r.floats = append(r.floats, v...) }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// newTestGame builds a 480x720 normal game at level 1 without audio or UI.
func newTestGame(t *testing.T, layouts ...leveldata.Layout) (*ecs.ECS, *scriptedRand) {
	t.Helper()
	r := &scriptedRand{fallback: 0.99}
	e := ecs.NewECS(donburi.NewWorld())
	Setup(e, factory.GameOptions{
		Width:      480,
		Height:     720,
		Difficulty: cfg.DifficultyNormal,
		Layouts:    layouts,
		Rand:       r,
		Clock:      fixedClock{t: time.Unix(0, 0)},
	})
	return e, r
}

func countTag(e *ecs.ECS, tag donburi.IComponentType) int {
	return len(snapshot(e.World, tag))
}

func mustPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := getPlayer(e)
	if !ok {
		t.Fatal("no player")
	}
	return entry
}

// cloneBySlot returns the clone at slot, or nil.
func cloneBySlot(e *ecs.ECS, slot int) *donburi.Entry {
	for _, c := range cloneEntries(e) {
		if components.Clone.Get(c).Slot == slot {
			return c
		}
	}
	return nil
}

func pumpkins(e *ecs.ECS) []*donburi.Entry {
	return snapshot(e.World, tags.Pumpkin)
}

// moveTo places an entity's object centre at (x, y) and refreshes its cells.
func moveTo(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	obj.SetCenter(x, y)
	obj.Update()
}

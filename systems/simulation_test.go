package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/systems/factory"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TestLongRunInvariants plays a seeded game with a scripted input pattern and
// checks the state after every frame.
func TestLongRunInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		e := ecs.NewECS(donburi.NewWorld())
		driver := rand.New(rand.NewPCG(uint64(seed), 99))
		e.AddSystem(func(e *ecs.ECS) {
			input := getOrCreateInput(e)
			input.Previous = input.Current
			input.Current[cfg.ActionFire] = driver.IntN(3) == 0
			input.Current[cfg.ActionMoveLeft] = driver.IntN(4) == 0
			input.Current[cfg.ActionMoveRight] = !input.Current[cfg.ActionMoveLeft] && driver.IntN(3) == 0
		})
		RegisterSimulation(e)
		Setup(e, factory.GameOptions{
			Width:      480,
			Height:     720,
			Difficulty: cfg.DifficultyHard,
			Rand:       NewRand(seed),
			Clock:      fixedClock{t: time.Unix(1_700_000_000, 0)},
		})
		g := getGame(e)

		for frame := 0; frame < 6000; frame++ {
			e.Update()

			if g.Shield < 0 || g.Shield > cfg.Player.MaxShield {
				t.Fatalf("seed %d frame %d: shield %d out of range", seed, frame, g.Shield)
			}
			if g.Lives < 0 || g.Lives > cfg.Player.MaxLives {
				t.Fatalf("seed %d frame %d: lives %d out of range", seed, frame, g.Lives)
			}
			if g.Lives == 0 && g.Phase != components.PhaseGameOver {
				t.Fatalf("seed %d frame %d: no lives left in phase %v", seed, frame, g.Phase)
			}
			_, hasBoss := tags.Boss.First(e.World)
			if hasBoss && getFormation(e).Active {
				t.Fatalf("seed %d frame %d: boss and formation active together", seed, frame)
			}
			if n := len(cloneEntries(e)); n > cfg.Clone.MaxClones {
				t.Fatalf("seed %d frame %d: %d clones", seed, frame, n)
			}
			if main := mainShip(e); main != nil && main.Weapon != components.WeaponNone && main.WeaponTimer <= 0 {
				t.Fatalf("seed %d frame %d: expired %v still held", seed, frame, main.Weapon)
			}
			if g.Phase == components.PhaseGameOver {
				break
			}
		}
	}
}

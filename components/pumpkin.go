package components

import "github.com/yohamta/donburi"

// PumpkinData is one enemy of the formation.
type PumpkinData struct {
	Damage    float64
	MaxDamage float64

	Alive          bool
	Exploding      bool
	ExplosionFrame int

	BossTile bool
	FaceType int

	CanShoot      bool
	ShootCooldown int
}

// Hittable reports whether the pumpkin can still take damage.
func (p *PumpkinData) Hittable() bool {
	return p.Alive && !p.Exploding
}

var Pumpkin = donburi.NewComponentType[PumpkinData]()

// FormationData is the singleton shared movement state of all pumpkins.
type FormationData struct {
	Active    bool
	Direction float64 // +1 right, -1 left
	Speed     float64
	Layout    string
}

var Formation = donburi.NewComponentType[FormationData]()

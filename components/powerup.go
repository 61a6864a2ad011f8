package components

import "github.com/yohamta/donburi"

// PowerUpKind is the effect a falling token applies when collected
type PowerUpKind int

const (
	PowerUpLaser PowerUpKind = iota
	PowerUpPierce
	PowerUpClone
	PowerUpShield
	PowerUpFullShield
	PowerUpAutoShoot
	PowerUpKindCount // Must be last
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpLaser:
		return "laser"
	case PowerUpPierce:
		return "pierce"
	case PowerUpClone:
		return "clone"
	case PowerUpShield:
		return "shield"
	case PowerUpFullShield:
		return "fullshield"
	case PowerUpAutoShoot:
		return "autoshoot"
	}
	return "unknown"
}

type PowerUpData struct {
	Kind      PowerUpKind
	FallSpeed float64
}

var PowerUp = donburi.NewComponentType[PowerUpData]()

// ExtraLifeData is the token the witch drops when shot down.
type ExtraLifeData struct {
	FallSpeed float64
}

var ExtraLife = donburi.NewComponentType[ExtraLifeData]()

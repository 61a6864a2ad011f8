package config

import (
	"fmt"
	"strings"
)

// Difficulty affects enemy speed, shooting rate, threat damage and drops
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// Modifiers holds multipliers applied on top of the base tuning values
type Modifiers struct {
	EnemySpeed    float64 // formation and boss movement
	ShootCooldown float64 // >1 shoots less often
	ThreatDamage  float64 // grenade and boss projectile damage
	DropChance    float64 // power-up drop probability
}

// DifficultyModifiers holds the preset for every difficulty
var DifficultyModifiers map[Difficulty]Modifiers

func init() {
	DifficultyModifiers = map[Difficulty]Modifiers{
		DifficultyEasy: {
			EnemySpeed:    0.8,
			ShootCooldown: 1.4,
			ThreatDamage:  0.6,
			DropChance:    1.3,
		},
		DifficultyNormal: {
			EnemySpeed:    1.0,
			ShootCooldown: 1.0,
			ThreatDamage:  1.0,
			DropChance:    1.0,
		},
		DifficultyHard: {
			EnemySpeed:    1.25,
			ShootCooldown: 0.7,
			ThreatDamage:  1.4,
			DropChance:    0.8,
		},
	}
}

// ModifiersFor returns the modifiers for d, falling back to normal.
func ModifiersFor(d Difficulty) Modifiers {
	if m, ok := DifficultyModifiers[d]; ok {
		return m
	}
	return DifficultyModifiers[DifficultyNormal]
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	}
	return "normal"
}

// ParseDifficulty maps a flag or file value onto a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "", "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q", s)
}

package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the optional override file passed with -tuning. Every field is
// optional; zero values leave the built-in defaults untouched.
type Tuning struct {
	Difficulty    string  `yaml:"difficulty"`
	StartingLives int     `yaml:"startingLives"`
	FormationBase float64 `yaml:"formationSpeed"`
	DropDistance  float64 `yaml:"dropDistance"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
}

// LoadTuning reads a YAML override file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes override YAML and validates it.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if t.StartingLives < 0 || t.FormationBase < 0 || t.DropDistance < 0 {
		return nil, errors.New("tuning values must not be negative")
	}
	if _, err := ParseDifficulty(t.Difficulty); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	return &t, nil
}

// Apply writes the non-zero overrides into the global configuration and
// returns the selected difficulty.
func (t *Tuning) Apply() Difficulty {
	if t.StartingLives > 0 {
		Player.StartingLives = t.StartingLives
	}
	if t.FormationBase > 0 {
		Formation.BaseSpeed = t.FormationBase
	}
	if t.DropDistance > 0 {
		Formation.DropDistance = t.DropDistance
	}
	if t.Width > 0 && t.Height > 0 {
		C.Width = t.Width
		C.Height = t.Height
	}
	d, _ := ParseDifficulty(t.Difficulty)
	return d
}

// ApplyTuningFile loads and applies the override file at path and returns
// the difficulty to play. A file that cannot be loaded is logged and the
// defaults, including difficulty, are kept.
func ApplyTuningFile(path string, difficulty Difficulty) Difficulty {
	t, err := LoadTuning(path)
	if err != nil {
		log.Printf("Warning: Could not load tuning, using defaults: %v", err)
		return difficulty
	}
	d := t.Apply()
	if t.Difficulty == "" {
		return difficulty
	}
	return d
}

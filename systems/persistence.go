package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/quasilyte/gdata"
)

// ItemStore is the key/value storage the persisted tables are written to.
// *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenStore opens the per-user gdata storage for the game.
func OpenStore() (ItemStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.HighScores.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return m, nil
}

var globalStore ItemStore

// InitPersistence opens the storage shared by settings and high scores.
func InitPersistence() error {
	store, err := OpenStore()
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	globalStore = store
	return nil
}

// Store returns the storage opened by InitPersistence, or nil.
func Store() ItemStore {
	return globalStore
}

// HighScore is one row of the high-score table
type HighScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Level int    `json:"level"`
}

// HighScoreTable is the capped, descending list of best runs.
type HighScoreTable struct {
	store    ItemStore
	entries  []HighScore
	capacity int
}

// NewHighScoreTable returns an empty table backed by store. A nil store keeps
// the table in memory only.
func NewHighScoreTable(store ItemStore) *HighScoreTable {
	return &HighScoreTable{store: store, capacity: cfg.HighScores.Capacity}
}

// Load replaces the table with the stored one. Missing or malformed data
// leaves the table empty; the returned error is informational.
func (t *HighScoreTable) Load() error {
	t.entries = nil
	if t.store == nil {
		return nil
	}

	data, err := t.store.LoadItem(cfg.HighScores.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load high scores: %v", err)
		return fmt.Errorf("load high scores: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var entries []HighScore
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("Warning: Could not parse high scores, starting empty: %v", err)
		return fmt.Errorf("parse high scores: %w", err)
	}
	for _, e := range entries {
		if e.Score < 0 {
			log.Printf("Warning: Discarding high scores with negative score %d", e.Score)
			return fmt.Errorf("parse high scores: negative score %d", e.Score)
		}
	}
	t.entries = entries
	t.normalize()
	return nil
}

// Save writes the table to the store.
func (t *HighScoreTable) Save() error {
	if t.store == nil {
		return nil
	}
	data, err := json.Marshal(t.entries)
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}
	if err := t.store.SaveItem(cfg.HighScores.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save high scores: %v", err)
		return fmt.Errorf("save high scores: %w", err)
	}
	return nil
}

// Entries returns a copy of the rows, best first.
func (t *HighScoreTable) Entries() []HighScore {
	out := make([]HighScore, len(t.entries))
	copy(out, t.entries)
	return out
}

// IsNewHighScore reports whether score would enter the table. Once the
// table is full it must beat the lowest retained entry.
func (t *HighScoreTable) IsNewHighScore(score int) bool {
	if score <= 0 {
		return false
	}
	if len(t.entries) < t.capacity {
		return true
	}
	return score > t.entries[len(t.entries)-1].Score
}

// Insert adds a row and returns its rank (0-based), or -1 when it did not
// make the table.
func (t *HighScoreTable) Insert(h HighScore) int {
	if !t.IsNewHighScore(h.Score) {
		return -1
	}
	t.entries = append(t.entries, h)
	t.normalize()
	// Equal scores keep their order, so the new row is the last match
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i] == h {
			return i
		}
	}
	return -1
}

// normalize sorts descending, keeping earlier rows ahead on ties, and
// trims to capacity.
func (t *HighScoreTable) normalize() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
	if len(t.entries) > t.capacity {
		t.entries = t.entries[:t.capacity]
	}
}

// SavedSettings represents the preferences stored between runs
type SavedSettings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	ResolutionIndex int     `json:"resolutionIndex"`
	Difficulty      string  `json:"difficulty"`
}

const settingsKey = "settings"

// LoadSettings reads the stored preferences. It returns nil when nothing
// usable is stored.
func LoadSettings(store ItemStore) *SavedSettings {
	if store == nil {
		return nil
	}
	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil
	}
	return &settings
}

// SaveSettings writes the preferences to the store.
func SaveSettings(store ItemStore, s *SavedSettings) error {
	if store == nil || s == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

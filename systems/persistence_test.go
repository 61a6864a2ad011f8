package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/pumpkin-invaders/config"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	s.items[key] = data
	return nil
}

func TestHighScoreTableRoundTrip(t *testing.T) {
	store := newMemStore()
	table := NewHighScoreTable(store)
	if err := table.Load(); err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	table.Insert(HighScore{Name: "A", Score: 100, Level: 2})
	table.Insert(HighScore{Name: "B", Score: 300, Level: 4})
	if rank := table.Insert(HighScore{Name: "C", Score: 200, Level: 3}); rank != 1 {
		t.Errorf("rank = %d, want 1", rank)
	}
	if err := table.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := NewHighScoreTable(store)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := reloaded.Entries()
	want := []string{"B", "C", "A"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("entry %d = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestHighScoreTableFailsClosed(t *testing.T) {
	tests := map[string]*memStore{
		"malformed":      {items: map[string][]byte{cfg.HighScores.ItemKey: []byte("{not json")}},
		"negative score": {items: map[string][]byte{cfg.HighScores.ItemKey: []byte(`[{"name":"X","score":-5,"level":1}]`)}},
		"load error":     {items: map[string][]byte{}, loadErr: errors.New("disk on fire")},
	}
	for name, store := range tests {
		t.Run(name, func(t *testing.T) {
			table := NewHighScoreTable(store)
			if err := table.Load(); err == nil {
				t.Error("expected an error")
			}
			if n := len(table.Entries()); n != 0 {
				t.Errorf("table has %d entries, want 0", n)
			}
			if !table.IsNewHighScore(1) {
				t.Error("an empty table should accept any positive score")
			}
		})
	}
}

func TestHighScoreTableCapacity(t *testing.T) {
	table := NewHighScoreTable(nil)
	for i := 1; i <= cfg.HighScores.Capacity; i++ {
		table.Insert(HighScore{Name: "P", Score: i * 10, Level: 1})
	}
	if table.IsNewHighScore(10) {
		t.Error("a full table should reject a score equal to its lowest entry")
	}
	if !table.IsNewHighScore(11) {
		t.Error("a full table should accept a score beating its lowest entry")
	}
	if rank := table.Insert(HighScore{Name: "Q", Score: 5, Level: 1}); rank != -1 {
		t.Errorf("rank = %d, want -1", rank)
	}
	if rank := table.Insert(HighScore{Name: "Top", Score: 1_000_000, Level: 50}); rank != 0 {
		t.Errorf("rank = %d, want 0", rank)
	}
	entries := table.Entries()
	if len(entries) != cfg.HighScores.Capacity {
		t.Errorf("%d entries, want %d", len(entries), cfg.HighScores.Capacity)
	}
	if entries[len(entries)-1].Score != 20 {
		t.Errorf("lowest entry = %d, want 20", entries[len(entries)-1].Score)
	}
	if table.IsNewHighScore(0) {
		t.Error("zero never makes the table")
	}
}

func TestHighScoreTiesKeepOlderFirst(t *testing.T) {
	table := NewHighScoreTable(nil)
	table.Insert(HighScore{Name: "Old", Score: 500, Level: 3})
	if rank := table.Insert(HighScore{Name: "New", Score: 500, Level: 3}); rank != 1 {
		t.Errorf("rank = %d, want 1", rank)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newMemStore()
	if LoadSettings(store) != nil {
		t.Error("empty store should have no settings")
	}
	in := &SavedSettings{SFXVolume: 0.4, ResolutionIndex: 2, Difficulty: "hard"}
	if err := SaveSettings(store, in); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	out := LoadSettings(store)
	if out == nil || *out != *in {
		t.Errorf("LoadSettings = %+v, want %+v", out, in)
	}

	store.items[settingsKey] = []byte("garbage")
	if LoadSettings(store) != nil {
		t.Error("garbage settings should be ignored")
	}
}

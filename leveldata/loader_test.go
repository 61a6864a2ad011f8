package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/pumpkin-invaders/assets"
)

func TestLoadAllLayoutsEmbedded(t *testing.T) {
	layouts, err := LoadAllLayouts(assets.FormationFS(), assets.FormationDir)
	if err != nil {
		t.Fatalf("LoadAllLayouts: %v", err)
	}
	if len(layouts) != 2 {
		t.Fatalf("got %d layouts, want 2", len(layouts))
	}
	if layouts[0].Name != "grid" {
		t.Errorf("first layout = %q, want grid", layouts[0].Name)
	}
	for _, l := range layouts {
		if len(l.Slots) != 32 {
			t.Errorf("%s: %d slots, want 32", l.Name, len(l.Slots))
		}
		if got := l.BossTiles(); got != 4 {
			t.Errorf("%s: %d boss-tiles, want 4", l.Name, got)
		}
	}
}

func TestLoadLayoutSlotCentres(t *testing.T) {
	layouts, err := LoadAllLayouts(assets.FormationFS(), assets.FormationDir)
	if err != nil {
		t.Fatalf("LoadAllLayouts: %v", err)
	}
	// The grid file mirrors DefaultLayout exactly.
	want := DefaultLayout()
	got := layouts[0]
	for i := range want.Slots {
		if got.Slots[i] != want.Slots[i] {
			t.Fatalf("slot %d = %+v, want %+v", i, got.Slots[i], want.Slots[i])
		}
	}
}

func TestLoadLayoutErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"empty/a.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Other"/>
</map>
`)},
	}
	if _, err := LoadLayout(fsys, "empty/a.tmx"); err == nil {
		t.Error("expected error for layout without formation objects")
	}
	if _, err := LoadAllLayouts(fsys, "missing"); err == nil {
		t.Error("expected error for directory without TMX files")
	}
	if _, err := LoadLayout(fsys, "nope.tmx"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if len(l.Slots) != 32 || l.BossTiles() != 4 {
		t.Fatalf("default layout: %d slots, %d boss-tiles", len(l.Slots), l.BossTiles())
	}
}

package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	formationGroup = "Formation"
	bossTileKind   = "boss-tile"
)

// LoadLayout parses a TMX file and returns the slots of its Formation object
// group. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{Name: layoutName(tmxPath)}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != formationGroup {
			continue
		}
		for _, o := range og.Objects {
			layout.Slots = append(layout.Slots, Slot{
				X:        o.X + o.Width/2,
				Y:        o.Y + o.Height/2,
				BossTile: o.Properties.GetString("kind") == bossTileKind,
				FaceType: o.Properties.GetInt("face"),
			})
		}
	}
	if len(layout.Slots) == 0 {
		return nil, fmt.Errorf("TMX %s has no %s objects", tmxPath, formationGroup)
	}

	// Top row first, then left to right
	sort.SliceStable(layout.Slots, func(i, j int) bool {
		if layout.Slots[i].Y != layout.Slots[j].Y {
			return layout.Slots[i].Y < layout.Slots[j].Y
		}
		return layout.Slots[i].X < layout.Slots[j].X
	})

	return layout, nil
}

// layoutName turns "formations/01_grid.tmx" into "grid".
func layoutName(tmxPath string) string {
	stem := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	if i := strings.IndexByte(stem, '_'); i >= 0 {
		return stem[i+1:]
	}
	return stem
}

// LoadAllLayouts loads every .tmx file in dir within fsys, sorted by file name.
func LoadAllLayouts(fsys fs.FS, dir string) ([]Layout, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	layouts := make([]Layout, 0, len(matches))
	for _, path := range matches {
		l, err := LoadLayout(fsys, path)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, *l)
	}
	return layouts, nil
}

// DefaultLayout is the built-in 4x8 grid used when no TMX layouts are
// available.
func DefaultLayout() Layout {
	const (
		rows     = 4
		cols     = 8
		originX  = 72.0
		originY  = 110.0
		spacingX = 48.0
		spacingY = 44.0
	)
	l := Layout{Name: "default"}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			l.Slots = append(l.Slots, Slot{
				X:        originX + spacingX*float64(c),
				Y:        originY + spacingY*float64(r),
				BossTile: r == 0 && (c == 1 || c == 3 || c == 4 || c == 6),
				FaceType: (r + c) % 4,
			})
		}
	}
	return l
}

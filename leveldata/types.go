package leveldata

// Slot is one pumpkin position of a formation, in reference-field pixels
// (480 wide), measured at the pumpkin's centre.
type Slot struct {
	X, Y     float64
	BossTile bool
	FaceType int
}

// Layout is a named formation.
type Layout struct {
	Name  string
	Slots []Slot
}

// BossTiles returns how many slots are boss-tiles.
func (l Layout) BossTiles() int {
	n := 0
	for _, s := range l.Slots {
		if s.BossTile {
			n++
		}
	}
	return n
}

package config

// Resolution represents a play field size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// DisplayConfig contains window/play field size options
type DisplayConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Display is the global display configuration
var Display DisplayConfig

func init() {
	Display = DisplayConfig{
		Resolutions: []Resolution{
			{Width: 360, Height: 540, Label: "360 x 540"},
			{Width: 480, Height: 720, Label: "480 x 720"},
			{Width: 600, Height: 900, Label: "600 x 900"},
			{Width: 720, Height: 1080, Label: "720 x 1080"},
		},
		DefaultResolutionIndex: 1,
	}
}

// ResolutionAt returns the resolution at index i, falling back to the
// default one for out-of-range indexes.
func ResolutionAt(i int) Resolution {
	if i < 0 || i >= len(Display.Resolutions) {
		return Display.Resolutions[Display.DefaultResolutionIndex]
	}
	return Display.Resolutions[i]
}

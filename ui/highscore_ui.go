package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/pumpkin-invaders/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// visibleRows is how many table rows fit on the game over screen
const visibleRows = 10

// HighScoreUI holds the ebitenui table of best runs shown after a game over
type HighScoreUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRetry func()
	OnMenu  func()

	entries   []systems.HighScore
	highlight int

	titleFace  text.Face
	normalFace text.Face
}

// NewHighScoreUI builds the table. highlight is the rank of the row to
// emphasise, or -1.
func NewHighScoreUI(entries []systems.HighScore, highlight int, onRetry, onMenu func()) *HighScoreUI {
	hui := &HighScoreUI{
		OnRetry:   onRetry,
		OnMenu:    onMenu,
		entries:   entries,
		highlight: highlight,
	}

	hui.loadFonts()
	hui.buildUI()

	return hui
}

func (hui *HighScoreUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	hui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	hui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (hui *HighScoreUI) buildUI() {
	// Transparent root so the game over screen underneath stays visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	tableContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 18, 40, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	tableContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("HIGH SCORES", &hui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 140, 0, 255},
		}),
	))

	if len(hui.entries) == 0 {
		tableContainer.AddChild(hui.rowLabel("No scores yet", color.RGBA{180, 180, 180, 255}))
	}
	for i, entry := range hui.entries {
		if i >= visibleRows {
			break
		}
		clr := color.RGBA{255, 255, 255, 255}
		if i == hui.highlight {
			clr = color.RGBA{255, 180, 50, 255}
		}
		row := fmt.Sprintf("%2d. %-10s %8d  L%d", i+1, entry.Name, entry.Score, entry.Level)
		tableContainer.AddChild(hui.rowLabel(row, clr))
	}

	tableContainer.AddChild(hui.buildButtonsContainer())
	rootContainer.AddChild(tableContainer)

	hui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (hui *HighScoreUI) rowLabel(s string, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &hui.normalFace, &widget.LabelColor{
			Idle: clr,
		}),
	)
}

func (hui *HighScoreUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(hui.button("Retry", func() {
		if hui.OnRetry != nil {
			hui.OnRetry()
		}
	}))
	container.AddChild(hui.button("Menu", func() {
		if hui.OnMenu != nil {
			hui.OnMenu()
		}
	}))

	return container
}

func (hui *HighScoreUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &hui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 120, 255},
			Pressed: color.RGBA{200, 150, 90, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{80, 40, 20, 255})
	hover := image.NewNineSliceColor(color.RGBA{120, 60, 20, 255})
	pressed := image.NewNineSliceColor(color.RGBA{60, 30, 10, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update calls the UI's Update method
func (hui *HighScoreUI) Update() {
	hui.UI.Update()
}

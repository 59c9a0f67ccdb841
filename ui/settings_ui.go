package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI is the ebitenui panel in the bottom-right corner with the
// playground toggles and the follow curve picker.
type SettingsUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	hudButton    *widget.Button
	boundsButton *widget.Button
	soundButton  *widget.Button
	freezeButton *widget.Button
	easingLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face

	initialized bool
}

// NewSettingsUI builds the panel for the playground running in e.
func NewSettingsUI(e *ecs.ECS) *SettingsUI {
	sui := &SettingsUI{ecs: e}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CURSOR", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	toggles := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	sui.hudButton = sui.button(70, systems.ToggleHUD)
	sui.boundsButton = sui.button(80, systems.ToggleBounds)
	sui.soundButton = sui.button(80, systems.ToggleSound)
	sui.freezeButton = sui.button(70, func() { systems.ToggleFreeze(sui.ecs) })
	toggles.AddChild(sui.hudButton)
	toggles.AddChild(sui.boundsButton)
	toggles.AddChild(sui.soundButton)
	toggles.AddChild(sui.freezeButton)
	panel.AddChild(toggles)

	easingRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	easingRow.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Follow:", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))
	easingRow.AddChild(sui.labelButton("<", 24, func() { systems.CycleFollowEasing(sui.ecs, -1) }))
	sui.easingLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 200, 255},
		}),
	)
	easingRow.AddChild(sui.easingLabel)
	easingRow.AddChild(sui.labelButton(">", 24, func() { systems.CycleFollowEasing(sui.ecs, 1) }))
	panel.AddChild(easingRow)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// button creates a toggle whose label is filled in by UpdateUI.
func (sui *SettingsUI) button(width int, onClick func()) *widget.Button {
	return sui.labelButton("", width, onClick)
}

func (sui *SettingsUI) labelButton(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 20),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// UpdateUI refreshes the labels from cfg.C and the cursor. Keyboard
// shortcuts change the same state, so it runs every update.
func (sui *SettingsUI) UpdateUI() {
	setButtonLabel(sui.hudButton, "HUD", cfg.C.Debug.ShowHUD)
	setButtonLabel(sui.boundsButton, "Bounds", cfg.C.Debug.ShowBounds)
	setButtonLabel(sui.soundButton, "Sound", cfg.C.Audio.Enabled)
	setButtonLabel(sui.freezeButton, "Freeze", systems.IsFrozen(sui.ecs))
	sui.easingLabel.Label = systems.FollowEasingLabel()
}

func setButtonLabel(b *widget.Button, name string, on bool) {
	textWidget := b.Text()
	if textWidget == nil {
		return
	}
	if on {
		textWidget.Label = name + ": on"
	} else {
		textWidget.Label = name + ": off"
	}
}

func (sui *SettingsUI) Update() {
	if !cfg.C.Debug.ShowPanel {
		return
	}
	sui.UI.Update()
	sui.initialized = true
	sui.UpdateUI()
}

// Draw renders the panel. It matches the ecs renderer signature so the
// cursor can be drawn above it.
func (sui *SettingsUI) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug.ShowPanel || !sui.initialized {
		return
	}
	sui.UI.Draw(screen)
}

package ui

import (
	"bytes"
	stdimage "image"
	"image/color"
	"strconv"

	cfg "github.com/automoto/tilefarm/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// HudUI is the inventory panel with the save indicator and reset button.
type HudUI struct {
	UI *ebitenui.UI

	OnReset func()

	panel        *widget.Container
	coinsLabel   *widget.Label
	carrotsLabel *widget.Label
	statusLabel  *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewHudUI creates the HUD. onReset runs when the reset button is clicked.
func NewHudUI(onReset func()) *HudUI {
	h := &HudUI{OnReset: onReset}
	h.loadFonts()
	h.buildUI()
	return h
}

func (h *HudUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	h.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	h.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (h *HudUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	margin := int(cfg.HUD.Margin)
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	h.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.HUD.HintBgColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				Padding:            widget.NewInsetsSimple(margin),
			}),
		),
	)

	h.coinsLabel = h.newLabel("Coins: 0", h.normalFace, cfg.HUD.HintTextColor)
	h.carrotsLabel = h.newLabel("Carrots: 0", h.normalFace, cfg.HUD.HintTextColor)
	h.statusLabel = h.newLabel("Save: OK", h.smallFace, cfg.HUD.StatusOK)
	h.panel.AddChild(h.coinsLabel)
	h.panel.AddChild(h.carrotsLabel)
	h.panel.AddChild(h.statusLabel)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(110, 26),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Reset farm", &h.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if h.OnReset != nil {
				h.OnReset()
			}
		}),
	)
	h.panel.AddChild(resetButton)

	rootContainer.AddChild(h.panel)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (h *HudUI) newLabel(s string, face text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &face, &widget.LabelColor{
			Idle: c,
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 80, 60, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 110, 80, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 60, 40, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Refresh copies the counters and save status into the labels.
func (h *HudUI) Refresh(coins, carrots int, status string) {
	h.coinsLabel.Label = "Coins: " + strconv.Itoa(coins)
	h.carrotsLabel.Label = "Carrots: " + strconv.Itoa(carrots)
	h.statusLabel.Label = "Save: " + status
}

// Contains reports whether a screen point is over the HUD panel.
func (h *HudUI) Contains(x, y int) bool {
	return stdimage.Pt(x, y).In(h.panel.GetWidget().Rect)
}

// StatusRect is where the save label sits on screen.
func (h *HudUI) StatusRect() stdimage.Rectangle {
	return h.statusLabel.GetWidget().Rect
}

// Update calls the UI's Update method
func (h *HudUI) Update() {
	h.UI.Update()
}

// Draw renders the panel. alpha fades a highlight over the save label after
// a save attempt.
func (h *HudUI) Draw(screen *ebiten.Image, alpha float32, failed bool) {
	h.UI.Draw(screen)
	if alpha <= 0 {
		return
	}

	c := cfg.HUD.StatusOK
	if failed {
		c = cfg.HUD.StatusErr
	}
	r := h.StatusRect()
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fade(c, alpha), false)
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	a := alpha * 0.5
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(255 * a),
	}
}

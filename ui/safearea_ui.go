package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SafeAreaUI holds an ebitenui panel that is pinned to a safe area layout
type SafeAreaUI struct {
	UI *ebitenui.UI

	panel     *widget.Container
	titleText *widget.Text
	infoText  *widget.Text

	titleFace text.Face
	smallFace text.Face

	motion   *rectTween
	lastRect image.Rectangle
}

// NewSafeAreaUI creates the panel UI
func NewSafeAreaUI() *SafeAreaUI {
	sui := &SafeAreaUI{motion: newRectTween(cfg.UI.PanelTweenSeconds)}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SafeAreaUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *SafeAreaUI) buildUI() {
	// Root has no layout so the panel keeps the location we give it
	rootContainer := widget.NewContainer()

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	sui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewBorderedNineSliceColor(
			color.RGBA{80, 220, 140, 40}, color.RGBA{80, 220, 140, 255}, 2)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	sui.titleText = widget.NewText(
		widget.TextOpts.Text("SAFE AREA", &sui.titleFace, color.RGBA{255, 255, 255, 255}),
	)
	sui.panel.AddChild(sui.titleText)

	sui.infoText = widget.NewText(
		widget.TextOpts.Text("", &sui.smallFace, color.RGBA{200, 240, 210, 255}),
	)
	sui.panel.AddChild(sui.infoText)

	rootContainer.AddChild(sui.panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Sync eases the panel towards the rect described by layout on a w x h
// screen, advancing dt seconds
func (sui *SafeAreaUI) Sync(layout *components.LayoutData, w, h int, dt float32) {
	target := PanelRect(layout, w, h)
	sui.motion.Retarget(target)
	rect := sui.motion.Step(dt)
	if rect != sui.lastRect {
		sui.panel.SetLocation(rect)
		sui.lastRect = rect
	}
	sui.infoText.Label = fmt.Sprintf("anchors (%.3f, %.3f) - (%.3f, %.3f)\n%d x %d px",
		layout.AnchorMin.X, layout.AnchorMin.Y,
		layout.AnchorMax.X, layout.AnchorMax.Y,
		target.Dx(), target.Dy())
}

func (sui *SafeAreaUI) Update() {
	sui.UI.Update()
}

// PanelRect resolves an anchor layout to screen pixels. SizeDelta grows the
// anchored box around its centre and AnchoredPosition shifts it.
func PanelRect(layout *components.LayoutData, w, h int) image.Rectangle {
	r := layout.Anchors().Pixels(w, h)

	dx := int(layout.SizeDelta.X / 2)
	dy := int(layout.SizeDelta.Y / 2)
	r.Min = r.Min.Sub(image.Pt(dx, dy))
	r.Max = r.Max.Add(image.Pt(dx, dy))

	return r.Add(image.Pt(int(layout.AnchoredPosition.X), int(layout.AnchoredPosition.Y)))
}

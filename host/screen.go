// Package host adapts ebiten's window geometry to the display adapters.
package host

import (
	"github.com/automoto/screenfit/shared/display"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen samples the outside size ebiten hands to Game.Layout. Ebiten has no
// device safe-area query, so the safe area is the screen minus configured
// insets, which lets desktop builds preview notched devices.
type Screen struct {
	width  float64
	height float64

	forced display.Orientation
	insets display.Insets
}

func NewScreen(insets display.Insets) *Screen {
	return &Screen{insets: insets}
}

// Layout records the outside size and returns it unchanged, matching the
// ebiten.Game Layout contract.
func (s *Screen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width = float64(outsideWidth)
	s.height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// SampleWindow seeds the size from the window before the first Layout call.
func (s *Screen) SampleWindow() {
	w, h := ebiten.WindowSize()
	if w <= 0 || h <= 0 {
		w, h = ebiten.Monitor().Size()
	}
	s.width = float64(w)
	s.height = float64(h)
}

// ForceOrientation overrides the size-derived orientation. Passing
// OrientationUnknown clears the override.
func (s *Screen) ForceOrientation(o display.Orientation) {
	s.forced = o
}

func (s *Screen) SetInsets(insets display.Insets) {
	s.insets = insets
}

func (s *Screen) State() display.ScreenState {
	return display.ScreenState{
		Width:       s.width,
		Height:      s.height,
		Orientation: s.orientation(),
	}
}

func (s *Screen) SafeArea() display.Rect {
	return s.insets.Rotate(s.orientation()).Apply(s.width, s.height)
}

func (s *Screen) orientation() display.Orientation {
	if s.forced != display.OrientationUnknown {
		return s.forced
	}
	if s.width >= s.height {
		return display.OrientationLandscapeLeft
	}
	return display.OrientationPortrait
}

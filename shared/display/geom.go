package display

import (
	"image"
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Resolution is a target design resolution in pixels.
type Resolution struct {
	Width  float64
	Height float64
}

// Aspect returns width/height, or 0 when the resolution is degenerate.
func (r Resolution) Aspect() float64 {
	if !validDimension(r.Width) || !validDimension(r.Height) {
		return 0
	}
	if aspect := r.Width / r.Height; validDimension(aspect) {
		return aspect
	}
	return 0
}

// Orientation mirrors the device orientations a mobile host reports.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationPortrait
	OrientationPortraitUpsideDown
	OrientationLandscapeLeft
	OrientationLandscapeRight
)

func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "portrait"
	case OrientationPortraitUpsideDown:
		return "portrait-upside-down"
	case OrientationLandscapeLeft:
		return "landscape-left"
	case OrientationLandscapeRight:
		return "landscape-right"
	default:
		return "unknown"
	}
}

// ScreenState is the screen geometry sampled from the host on each evaluation.
type ScreenState struct {
	Width       float64
	Height      float64
	Orientation Orientation
}

// Rect is an axis-aligned rectangle. Safe areas use pixels, viewports use
// normalized [0,1] coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// FullViewport covers the whole screen in normalized coordinates.
var FullViewport = Rect{X: 0, Y: 0, Width: 1, Height: 1}

// Pixels scales a normalized rectangle to a pixel rectangle for a target of
// w x h pixels.
func (r Rect) Pixels(w, h int) image.Rectangle {
	x0 := int(stdmath.Round(r.X * float64(w)))
	y0 := int(stdmath.Round(r.Y * float64(h)))
	x1 := int(stdmath.Round((r.X + r.Width) * float64(w)))
	y1 := int(stdmath.Round((r.Y + r.Height) * float64(h)))
	return image.Rect(x0, y0, x1, y1)
}

// AnchorBounds is the normalized box a UI element's edges are pinned to.
type AnchorBounds struct {
	Min math.Vec2
	Max math.Vec2
}

// FullAnchors pins an element to its whole parent.
var FullAnchors = AnchorBounds{
	Min: math.NewVec2(0, 0),
	Max: math.NewVec2(1, 1),
}

// Pixels converts the anchors to a pixel rectangle inside a w x h parent.
func (a AnchorBounds) Pixels(w, h int) image.Rectangle {
	return Rect{
		X:      a.Min.X,
		Y:      a.Min.Y,
		Width:  a.Max.X - a.Min.X,
		Height: a.Max.Y - a.Min.Y,
	}.Pixels(w, h)
}

func isFinite(f float64) bool {
	return !stdmath.IsNaN(f) && !stdmath.IsInf(f, 0)
}

func sameFloat(a, b float64) bool {
	return a == b || (stdmath.IsNaN(a) && stdmath.IsNaN(b))
}

func validDimension(f float64) bool {
	return isFinite(f) && f > 0
}

func clamp01(f float64) float64 {
	return stdmath.Max(0, stdmath.Min(1, f))
}

// Insets are the obscured margins of a screen in pixels, expressed for the
// device's natural landscape-left orientation.
type Insets struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Rotate returns the insets as seen in orientation o.
func (in Insets) Rotate(o Orientation) Insets {
	switch o {
	case OrientationLandscapeRight:
		return Insets{Top: in.Bottom, Bottom: in.Top, Left: in.Right, Right: in.Left}
	case OrientationPortrait:
		return Insets{Top: in.Left, Bottom: in.Right, Left: in.Bottom, Right: in.Top}
	case OrientationPortraitUpsideDown:
		return Insets{Top: in.Right, Bottom: in.Left, Left: in.Top, Right: in.Bottom}
	default:
		return in
	}
}

// Apply returns the safe area left on a w x h screen once the insets are
// removed. The result never has a negative size.
func (in Insets) Apply(w, h float64) Rect {
	return Rect{
		X:      in.Left,
		Y:      in.Top,
		Width:  stdmath.Max(0, w-in.Left-in.Right),
		Height: stdmath.Max(0, h-in.Top-in.Bottom),
	}
}

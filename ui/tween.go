package ui

import (
	"image"
	stdmath "math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// rectTween eases a panel rect towards its latest target. The first target
// is taken as-is so the panel does not fly in at startup.
type rectTween struct {
	duration float32

	from    image.Rectangle
	to      image.Rectangle
	current image.Rectangle
	tween   *gween.Tween
	started bool
}

func newRectTween(duration float32) *rectTween {
	return &rectTween{duration: duration}
}

// Retarget starts a new tween from the current rect when to differs from the
// active target.
func (rt *rectTween) Retarget(to image.Rectangle) {
	if !rt.started || rt.duration <= 0 {
		rt.from, rt.to, rt.current = to, to, to
		rt.tween = nil
		rt.started = true
		return
	}
	if to == rt.to {
		return
	}
	rt.from = rt.current
	rt.to = to
	rt.tween = gween.New(0, 1, rt.duration, ease.OutCubic)
}

// Step advances the tween by dt seconds and returns the rect to show.
func (rt *rectTween) Step(dt float32) image.Rectangle {
	if rt.tween == nil {
		return rt.current
	}
	progress, finished := rt.tween.Update(dt)
	if finished {
		rt.current = rt.to
		rt.tween = nil
		return rt.current
	}
	rt.current = lerpRect(rt.from, rt.to, float64(progress))
	return rt.current
}

// Animating reports whether a tween is still running.
func (rt *rectTween) Animating() bool {
	return rt.tween != nil
}

func lerpRect(a, b image.Rectangle, t float64) image.Rectangle {
	lerp := func(x, y int) int {
		return int(stdmath.Round(float64(x) + float64(y-x)*t))
	}
	return image.Rect(
		lerp(a.Min.X, b.Min.X), lerp(a.Min.Y, b.Min.Y),
		lerp(a.Max.X, b.Max.X), lerp(a.Max.Y, b.Max.Y),
	)
}

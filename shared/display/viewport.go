package display

import "log"

// ComputeViewport returns the normalized camera viewport that shows target
// at its own aspect ratio inside a screenWidth x screenHeight screen. A wider
// screen is pillarboxed, a taller one letterboxed. Degenerate dimensions
// yield FullViewport.
func ComputeViewport(target Resolution, screenWidth, screenHeight float64) Rect {
	targetAspect := target.Aspect()
	if targetAspect == 0 {
		return FullViewport
	}
	screenAspect := Resolution{Width: screenWidth, Height: screenHeight}.Aspect()
	if screenAspect == 0 {
		return FullViewport
	}

	if screenAspect > targetAspect {
		viewWidth := targetAspect / screenAspect
		return Rect{X: (1 - viewWidth) / 2, Y: 0, Width: viewWidth, Height: 1}
	}
	viewHeight := screenAspect / targetAspect
	return Rect{X: 0, Y: (1 - viewHeight) / 2, Width: 1, Height: viewHeight}
}

// ViewportFitter keeps a camera letterboxed to Target as the screen resizes.
type ViewportFitter struct {
	Target Resolution

	screen Screen
	camera Camera

	applied  bool
	lastW    float64
	lastH    float64
	viewport Rect
}

func NewViewportFitter(target Resolution, screen Screen, camera Camera) *ViewportFitter {
	return &ViewportFitter{
		Target: target,
		screen: screen,
		camera: camera,
	}
}

// Init writes the viewport unconditionally.
func (f *ViewportFitter) Init() {
	f.apply()
}

// OnResize rewrites the viewport when the screen size has changed since the
// last application.
func (f *ViewportFitter) OnResize() bool {
	state := f.screen.State()
	if f.applied && state.Width == f.lastW && state.Height == f.lastH {
		return false
	}
	f.apply()
	return true
}

// SetTarget changes the target resolution and re-applies immediately.
func (f *ViewportFitter) SetTarget(target Resolution) {
	f.Target = target
	f.apply()
}

// Viewport returns the last rectangle written to the camera.
func (f *ViewportFitter) Viewport() Rect {
	return f.viewport
}

func (f *ViewportFitter) apply() {
	state := f.screen.State()
	f.viewport = ComputeViewport(f.Target, state.Width, state.Height)
	screenAspect := Resolution{Width: state.Width, Height: state.Height}.Aspect()
	if screenAspect == 0 || f.Target.Aspect() == 0 {
		log.Printf("Warning: degenerate viewport input (screen %vx%v, target %vx%v), using full viewport",
			state.Width, state.Height, f.Target.Width, f.Target.Height)
	}
	f.camera.SetViewport(f.viewport)
	f.lastW, f.lastH = state.Width, state.Height
	f.applied = true
}

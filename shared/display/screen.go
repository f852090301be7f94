package display

// Screen is the host-side source of screen geometry.
type Screen interface {
	State() ScreenState
	SafeArea() Rect
}

// Camera receives a normalized viewport rectangle.
type Camera interface {
	SetViewport(r Rect)
}

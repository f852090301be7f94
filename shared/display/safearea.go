package display

import (
	"log"

	"github.com/yohamta/donburi/features/math"
)

// LayoutElement is a UI element whose rect is driven by normalized anchors.
type LayoutElement interface {
	SetAnchors(min, max math.Vec2)
	SetAnchoredPosition(p math.Vec2)
	SetSizeDelta(d math.Vec2)
}

// SafeAreaListener receives the raw pixel safe area after it is applied.
type SafeAreaListener func(safeArea Rect)

type SafeAreaOptions struct {
	Anchors AnchorOptions
	// GateOnOrientation only compares the full snapshot on ticks where the
	// orientation changed. Safe area or size changes that happen without an
	// orientation change are then not picked up until the next rotation.
	GateOnOrientation bool
}

type safeAreaSnapshot struct {
	safeArea    Rect
	width       float64
	height      float64
	orientation Orientation
}

// equal treats NaN as equal to itself so a broken safe area does not
// re-apply on every tick.
func (s safeAreaSnapshot) equal(o safeAreaSnapshot) bool {
	return sameFloat(s.safeArea.X, o.safeArea.X) &&
		sameFloat(s.safeArea.Y, o.safeArea.Y) &&
		sameFloat(s.safeArea.Width, o.safeArea.Width) &&
		sameFloat(s.safeArea.Height, o.safeArea.Height) &&
		sameFloat(s.width, o.width) &&
		sameFloat(s.height, o.height) &&
		s.orientation == o.orientation
}

// SafeAreaAdapter keeps a layout element inset to the screen's safe area.
type SafeAreaAdapter struct {
	opts    SafeAreaOptions
	screen  Screen
	element LayoutElement

	last    safeAreaSnapshot
	anchors AnchorBounds

	listeners map[int]SafeAreaListener
	nextID    int
}

func NewSafeAreaAdapter(screen Screen, element LayoutElement, opts SafeAreaOptions) *SafeAreaAdapter {
	return &SafeAreaAdapter{
		opts:      opts,
		screen:    screen,
		element:   element,
		anchors:   FullAnchors,
		listeners: map[int]SafeAreaListener{},
	}
}

// Subscribe registers fn for safe area notifications. The returned func
// removes it again. A nil fn is ignored.
func (a *SafeAreaAdapter) Subscribe(fn SafeAreaListener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	return func() {
		delete(a.listeners, id)
	}
}

// Init applies the current safe area and caches it, whether or not anything
// changed.
func (a *SafeAreaAdapter) Init() {
	a.applyCurrent(a.sample())
}

// OnTick re-applies the safe area when the screen changed. It reports whether
// it did.
func (a *SafeAreaAdapter) OnTick() bool {
	if a.opts.GateOnOrientation && a.screen.State().Orientation == a.last.orientation {
		return false
	}
	current := a.sample()
	if current.equal(a.last) {
		return false
	}
	a.applyCurrent(current)
	return true
}

// SetOptions swaps the options. The safe area is only re-applied when the
// anchor options changed, since the gate alone does not move the anchors.
// It reports whether it re-applied.
func (a *SafeAreaAdapter) SetOptions(opts SafeAreaOptions) bool {
	anchorsChanged := opts.Anchors != a.opts.Anchors
	a.opts = opts
	if !anchorsChanged {
		return false
	}
	a.applyCurrent(a.sample())
	return true
}

func (a *SafeAreaAdapter) Options() SafeAreaOptions {
	return a.opts
}

// Anchors returns the anchors last written to the element.
func (a *SafeAreaAdapter) Anchors() AnchorBounds {
	return a.anchors
}

func (a *SafeAreaAdapter) sample() safeAreaSnapshot {
	state := a.screen.State()
	return safeAreaSnapshot{
		safeArea:    a.screen.SafeArea(),
		width:       state.Width,
		height:      state.Height,
		orientation: state.Orientation,
	}
}

func (a *SafeAreaAdapter) applyCurrent(s safeAreaSnapshot) {
	a.apply(s.safeArea, s.width, s.height)
	a.last = s
}

func (a *SafeAreaAdapter) apply(safeArea Rect, width, height float64) {
	if !validDimension(width) || !validDimension(height) {
		log.Printf("Warning: degenerate screen %vx%v for safe area, anchors fall back to defaults", width, height)
	}
	a.anchors = ComputeAnchors(safeArea, width, height, a.opts.Anchors)

	a.element.SetAnchoredPosition(math.NewVec2(0, 0))
	a.element.SetSizeDelta(math.NewVec2(0, 0))
	a.element.SetAnchors(a.anchors.Min, a.anchors.Max)

	for _, fn := range a.listeners {
		fn(safeArea)
	}
}

package components

import (
	"github.com/automoto/screenfit/shared/display"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// LayoutData is an anchor-driven UI rect. AnchoredPosition and SizeDelta are
// pixel offsets applied on top of the anchored box.
type LayoutData struct {
	AnchorMin        math.Vec2
	AnchorMax        math.Vec2
	AnchoredPosition math.Vec2
	SizeDelta        math.Vec2
}

func (l *LayoutData) SetAnchors(min, max math.Vec2) {
	l.AnchorMin = min
	l.AnchorMax = max
}

func (l *LayoutData) SetAnchoredPosition(p math.Vec2) {
	l.AnchoredPosition = p
}

func (l *LayoutData) SetSizeDelta(d math.Vec2) {
	l.SizeDelta = d
}

// Anchors returns the current anchor box
func (l *LayoutData) Anchors() display.AnchorBounds {
	return display.AnchorBounds{Min: l.AnchorMin, Max: l.AnchorMax}
}

var Layout = donburi.NewComponentType[LayoutData]()

type layoutEntry struct {
	entry *donburi.Entry
}

func (l layoutEntry) get() *LayoutData {
	if !l.entry.Valid() {
		return &LayoutData{}
	}
	return Layout.Get(l.entry)
}

func (l layoutEntry) SetAnchors(min, max math.Vec2)   { l.get().SetAnchors(min, max) }
func (l layoutEntry) SetAnchoredPosition(p math.Vec2) { l.get().SetAnchoredPosition(p) }
func (l layoutEntry) SetSizeDelta(d math.Vec2)        { l.get().SetSizeDelta(d) }

// LayoutOf returns a display.LayoutElement backed by the entry's Layout component
func LayoutOf(entry *donburi.Entry) display.LayoutElement {
	return layoutEntry{entry: entry}
}

package components

import (
	"github.com/automoto/screenfit/shared/display"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SafeAreaChangedEvent is published whenever a panel re-applies its safe area
type SafeAreaChangedEvent struct {
	Panel    donburi.Entity
	SafeArea display.Rect
	Anchors  display.AnchorBounds
}

var SafeAreaChanged = events.NewEventType[SafeAreaChangedEvent]()

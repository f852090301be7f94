package components

import (
	"github.com/automoto/screenfit/host"
	"github.com/automoto/screenfit/shared/display"
	"github.com/yohamta/donburi"
)

type ScreenData struct {
	Screen *host.Screen
}

var Screen = donburi.NewComponentType[ScreenData]()

type ViewportFitterData struct {
	Fitter *display.ViewportFitter
}

var ViewportFitter = donburi.NewComponentType[ViewportFitterData]()

type SafeAreaData struct {
	Adapter *display.SafeAreaAdapter

	// Unsubscribe functions to call when the panel is removed
	Subscriptions []func()
}

// Release drops every listener the panel registered
func (s *SafeAreaData) Release() {
	for _, unsubscribe := range s.Subscriptions {
		unsubscribe()
	}
	s.Subscriptions = nil
}

var SafeArea = donburi.NewComponentType[SafeAreaData]()

// SafeAreaStatusData tracks the last safe area change seen by the world
type SafeAreaStatusData struct {
	LastSafeArea display.Rect
	LastAnchors  display.AnchorBounds
	Changes      int
}

var SafeAreaStatus = donburi.NewComponentType[SafeAreaStatusData]()

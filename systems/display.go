package systems

import (
	"log"

	"github.com/automoto/screenfit/components"
	"github.com/automoto/screenfit/host"
	"github.com/automoto/screenfit/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateViewports re-fits every camera whose screen size changed this frame
func UpdateViewports(e *ecs.ECS) {
	components.ViewportFitter.Each(e.World, func(entry *donburi.Entry) {
		fitter := components.ViewportFitter.Get(entry).Fitter
		if fitter == nil {
			return
		}
		fitter.OnResize()
	})
}

// UpdateSafeAreas ticks every safe area panel
func UpdateSafeAreas(e *ecs.ECS) {
	components.SafeArea.Each(e.World, func(entry *donburi.Entry) {
		adapter := components.SafeArea.Get(entry).Adapter
		if adapter == nil {
			return
		}
		adapter.OnTick()
	})
}

// ProcessSafeAreaEvents delivers queued safe area events to subscribers
func ProcessSafeAreaEvents(e *ecs.ECS) {
	components.SafeAreaChanged.ProcessEvents(e.World)
}

// TrackSafeAreaStatus subscribes the screen entity's status component to
// safe area events
func TrackSafeAreaStatus(world donburi.World) {
	components.SafeAreaChanged.Subscribe(world, onSafeAreaChanged)
}

func onSafeAreaChanged(w donburi.World, evt components.SafeAreaChangedEvent) {
	entry, ok := components.SafeAreaStatus.First(w)
	if !ok {
		return
	}
	status := components.SafeAreaStatus.Get(entry)
	status.LastSafeArea = evt.SafeArea
	status.LastAnchors = evt.Anchors
	status.Changes++

	log.Printf("Safe area changed: %+v (anchors %v - %v)", evt.SafeArea, evt.Anchors.Min, evt.Anchors.Max)
}

// SpawnDisplayEntities creates the settings, screen, camera and safe area
// panel for a scene. Saved settings reach the screen and camera before the
// panel exists, so its initial application is the only one. saved may be nil.
func SpawnDisplayEntities(e *ecs.ECS, screen *host.Screen, saved *SavedSettings) *donburi.Entry {
	TrackSafeAreaStatus(e.World)

	settings := GetOrCreateSettings(e)
	CopySavedSettings(settings, saved)

	factory.CreateScreen(e, screen)
	factory.CreateCamera(e, screen)
	ApplyDisplaySettings(e, settings, SettingsActionNone)

	return factory.CreateSafeAreaPanel(e, screen, SafeAreaOptionsFor(settings))
}

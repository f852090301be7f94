package factory

import (
	"github.com/automoto/screenfit/archetypes"
	"github.com/automoto/screenfit/components"
	"github.com/automoto/screenfit/host"
	"github.com/automoto/screenfit/shared/display"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSafeAreaPanel spawns a UI panel that stays inside the screen's safe
// area. The initial safe area is applied before this returns, and every
// application is published as a components.SafeAreaChanged event.
func CreateSafeAreaPanel(ecs *ecs.ECS, screen *host.Screen, opts display.SafeAreaOptions) *donburi.Entry {
	panel := archetypes.SafeAreaPanel.Spawn(ecs)
	components.Layout.Set(panel, &components.LayoutData{})

	adapter := display.NewSafeAreaAdapter(screen, components.LayoutOf(panel), opts)
	data := &components.SafeAreaData{Adapter: adapter}

	world := ecs.World
	entity := panel.Entity()
	unsubscribe := adapter.Subscribe(func(safeArea display.Rect) {
		components.SafeAreaChanged.Publish(world, components.SafeAreaChangedEvent{
			Panel:    entity,
			SafeArea: safeArea,
			Anchors:  adapter.Anchors(),
		})
	})
	data.Subscriptions = append(data.Subscriptions, unsubscribe)
	components.SafeArea.Set(panel, data)

	adapter.Init()
	return panel
}

// DestroySafeAreaPanel releases the panel's listeners and removes it
func DestroySafeAreaPanel(panel *donburi.Entry) {
	if !panel.Valid() {
		return
	}
	components.SafeArea.Get(panel).Release()
	panel.Remove()
}

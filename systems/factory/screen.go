package factory

import (
	"github.com/automoto/screenfit/archetypes"
	"github.com/automoto/screenfit/components"
	"github.com/automoto/screenfit/host"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScreen spawns the singleton screen entity wrapping the host screen
func CreateScreen(ecs *ecs.ECS, screen *host.Screen) *donburi.Entry {
	entry := archetypes.Screen.Spawn(ecs)
	components.Screen.Set(entry, &components.ScreenData{Screen: screen})
	components.SafeAreaStatus.Set(entry, &components.SafeAreaStatusData{})
	return entry
}

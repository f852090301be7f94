package archetypes

import (
	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/automoto/screenfit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Screen = newArchetype(
		tags.Screen,
		components.Screen,
		components.SafeAreaStatus,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.ViewportFitter,
	)
	SafeAreaPanel = newArchetype(
		tags.SafeAreaPanel,
		components.Layout,
		components.SafeArea,
	)
	Settings = newArchetype(
		tags.Settings,
		components.DisplaySettings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

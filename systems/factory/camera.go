package factory

import (
	"github.com/automoto/screenfit/archetypes"
	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/automoto/screenfit/host"
	"github.com/automoto/screenfit/shared/display"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a camera letterboxed to the configured target resolution
func CreateCamera(ecs *ecs.ECS, screen *host.Screen) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Viewport: display.FullViewport})

	fitter := display.NewViewportFitter(cfg.Viewport.Target, screen, components.CameraOf(camera))
	components.ViewportFitter.Set(camera, &components.ViewportFitterData{Fitter: fitter})
	fitter.Init()

	return camera
}

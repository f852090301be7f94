package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/automoto/screenfit/host"
	"github.com/automoto/screenfit/systems"
	"github.com/automoto/screenfit/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PreviewScene shows a letterboxed reference scene and a safe area panel
type PreviewScene struct {
	ecs    *ecs.ECS
	screen *host.Screen
	saved  *systems.SavedSettings
	panel  *donburi.Entry
	ui     *ui.SafeAreaUI
	once   sync.Once
}

// NewPreviewScene creates the scene. saved may be nil.
func NewPreviewScene(screen *host.Screen, saved *systems.SavedSettings) *PreviewScene {
	return &PreviewScene{screen: screen, saved: saved}
}

func (ps *PreviewScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	state := ps.screen.State()
	dt := 1 / float32(ebiten.TPS())
	ps.ui.Sync(components.Layout.Get(ps.panel), int(state.Width), int(state.Height), dt)
	ps.ui.Update()
}

func (ps *PreviewScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.DrawLayer(cfg.Default, screen)

	ps.ui.UI.Draw(screen)

	ps.ecs.DrawLayer(cfg.Overlay, screen)
}

func (ps *PreviewScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	// Input first so changes apply in the same frame
	ps.ecs.AddSystem(systems.UpdateSettings)
	ps.ecs.AddSystem(systems.UpdateViewports)
	ps.ecs.AddSystem(systems.UpdateSafeAreas)
	ps.ecs.AddSystem(systems.ProcessSafeAreaEvents)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawLetterbox)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawSafeAreaOutline)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawDisplayDebug)

	ps.panel = systems.SpawnDisplayEntities(ps.ecs, ps.screen, ps.saved)

	ps.ui = ui.NewSafeAreaUI()
}

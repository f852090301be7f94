package main

import (
	"log"

	"github.com/automoto/screenfit/config"
	"github.com/automoto/screenfit/fonts"
	"github.com/automoto/screenfit/host"
	"github.com/automoto/screenfit/scenes"
	"github.com/automoto/screenfit/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	screen *host.Screen
	scene  Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	insets := config.Settings.InsetPresets[config.Settings.DefaultInsetIndex].Insets
	screen := host.NewScreen(insets)
	screen.SampleWindow()

	return &Game{
		screen: screen,
		scene:  scenes.NewPreviewScene(screen, saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical size equal to the window so the viewport fitter,
// not ebiten, decides the letterboxing.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screen.Layout(outsideWidth, outsideHeight)
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	systems.ApplySavedSettingsGlobal(saved)

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}

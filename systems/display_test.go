package systems

import (
	"image"
	"testing"

	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/automoto/screenfit/host"
	"github.com/automoto/screenfit/shared/display"
	"github.com/automoto/screenfit/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type testWorld struct {
	ecs    *ecs.ECS
	screen *host.Screen
	camera *donburi.Entry
	panel  *donburi.Entry
	status *components.SafeAreaStatusData
}

func newTestWorld(t *testing.T, gate bool) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		screen: host.NewScreen(display.Insets{Left: 48, Bottom: 20}),
	}
	w.screen.Layout(1920, 1080)

	TrackSafeAreaStatus(w.ecs.World)
	screenEntry := factory.CreateScreen(w.ecs, w.screen)
	w.status = components.SafeAreaStatus.Get(screenEntry)
	w.camera = factory.CreateCamera(w.ecs, w.screen)
	w.panel = factory.CreateSafeAreaPanel(w.ecs, w.screen, display.SafeAreaOptions{GateOnOrientation: gate})
	return w
}

func (w *testWorld) tick() {
	UpdateViewports(w.ecs)
	UpdateSafeAreas(w.ecs)
	ProcessSafeAreaEvents(w.ecs)
}

func TestCameraViewportFollowsScreen(t *testing.T) {
	w := newTestWorld(t, true)
	camera := components.Camera.Get(w.camera)
	if camera.Viewport != display.FullViewport {
		t.Fatalf("initial viewport = %+v", camera.Viewport)
	}

	w.screen.Layout(2560, 1080)
	w.tick()
	want := display.ComputeViewport(cfg.Viewport.Target, 2560, 1080)
	if camera.Viewport != want {
		t.Errorf("viewport = %+v, want %+v", camera.Viewport, want)
	}
}

func TestSafeAreaPanelInitialApplyIsPublished(t *testing.T) {
	w := newTestWorld(t, true)
	layout := components.Layout.Get(w.panel)

	if layout.AnchorMin.X != 48.0/1920 {
		t.Errorf("anchor min = %v", layout.AnchorMin)
	}
	if w.status.Changes != 0 {
		t.Fatalf("event delivered before processing")
	}

	w.tick()
	if w.status.Changes != 1 {
		t.Fatalf("changes = %d, want 1", w.status.Changes)
	}
	if want := (display.Rect{X: 48, Y: 0, Width: 1872, Height: 1060}); w.status.LastSafeArea != want {
		t.Errorf("last safe area = %+v, want %+v", w.status.LastSafeArea, want)
	}
	if w.status.LastAnchors != layout.Anchors() {
		t.Errorf("event anchors %v differ from layout %v", w.status.LastAnchors, layout.Anchors())
	}
}

func TestSafeAreaPanelGatedOnOrientation(t *testing.T) {
	w := newTestWorld(t, true)
	w.tick()

	// Same orientation, different size: ignored while gated
	w.screen.Layout(2000, 1000)
	w.tick()
	if w.status.Changes != 1 {
		t.Fatalf("changes = %d after resize without rotation", w.status.Changes)
	}

	w.screen.Layout(1080, 1920)
	w.tick()
	if w.status.Changes != 2 {
		t.Fatalf("changes = %d after rotation, want 2", w.status.Changes)
	}
	layout := components.Layout.Get(w.panel)
	if layout.AnchorMin.Y != 48.0/1920 {
		t.Errorf("portrait anchor min = %v", layout.AnchorMin)
	}
}

func TestDestroySafeAreaPanelStopsEvents(t *testing.T) {
	w := newTestWorld(t, false)
	w.tick()
	adapter := components.SafeArea.Get(w.panel).Adapter

	factory.DestroySafeAreaPanel(w.panel)
	w.screen.SetInsets(display.Insets{})
	adapter.OnTick()
	w.tick()

	if w.status.Changes != 1 {
		t.Errorf("changes = %d after destroy, want 1", w.status.Changes)
	}
}

func TestHandleSettingsAction(t *testing.T) {
	w := newTestWorld(t, true)
	w.tick()
	settings := GetOrCreateSettings(w.ecs)

	HandleSettingsAction(w.ecs, SettingsActionNextResolution)
	if !settings.Dirty {
		t.Error("settings not marked dirty")
	}
	target := cfg.Settings.Resolutions[settings.ResolutionIndex].Display()
	fitter := components.ViewportFitter.Get(w.camera).Fitter
	if fitter.Target != target {
		t.Errorf("fitter target = %v, want %v", fitter.Target, target)
	}
	if got, want := components.Camera.Get(w.camera).Viewport, display.ComputeViewport(target, 1920, 1080); got != want {
		t.Errorf("viewport = %+v, want %+v", got, want)
	}

	HandleSettingsAction(w.ecs, SettingsActionToggleOrientation)
	if w.screen.State().Orientation != display.OrientationPortrait {
		t.Fatalf("orientation = %v", w.screen.State().Orientation)
	}
	w.tick()
	if w.status.Changes != 2 {
		t.Errorf("changes = %d after forced rotation, want 2", w.status.Changes)
	}

	HandleSettingsAction(w.ecs, SettingsActionToggleAnchorMode)
	adapter := components.SafeArea.Get(w.panel).Adapter
	if adapter.Options().Anchors.MaxMode != display.AnchorMaxFromSize {
		t.Errorf("anchor mode not applied")
	}
	w.tick()
	if w.status.Changes != 3 {
		t.Errorf("changes = %d after option change, want 3", w.status.Changes)
	}
}

func TestLetterboxBars(t *testing.T) {
	bounds := image.Rect(0, 0, 2560, 1080)
	tests := []struct {
		name string
		vp   image.Rectangle
		want []image.Rectangle
	}{
		{"full", bounds, nil},
		{"pillarbox", image.Rect(320, 0, 2240, 1080), []image.Rectangle{
			image.Rect(0, 0, 320, 1080),
			image.Rect(2240, 0, 2560, 1080),
		}},
		{"letterbox", image.Rect(0, 100, 2560, 980), []image.Rectangle{
			image.Rect(0, 0, 2560, 100),
			image.Rect(0, 980, 2560, 1080),
		}},
		{"empty", image.Rectangle{}, []image.Rectangle{bounds}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LetterboxBars(bounds, tt.vp)
			if len(got) != len(tt.want) {
				t.Fatalf("bars = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("bar %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestViewportGeoM(t *testing.T) {
	g := ViewportGeoM(image.Rect(320, 0, 2240, 1080), 1920, 1080)
	x, y := g.Apply(1920, 1080)
	if x != 2240 || y != 1080 {
		t.Errorf("far corner maps to %v,%v", x, y)
	}
	x, y = g.Apply(0, 0)
	if x != 320 || y != 0 {
		t.Errorf("origin maps to %v,%v", x, y)
	}
}

func TestDebugLines(t *testing.T) {
	w := newTestWorld(t, true)
	w.tick()
	lines := DebugLines(w.ecs)
	if len(lines) < 4 {
		t.Fatalf("lines = %v", lines)
	}
	if lines[0] != "screen   1920x1080 landscape-left" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestSpawnDisplayEntitiesNotifiesOnce(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	screen := host.NewScreen(cfg.Settings.InsetPresets[cfg.Settings.DefaultInsetIndex].Insets)
	screen.Layout(1920, 1080)
	saved := &SavedSettings{
		ResolutionIndex:   cfg.Settings.DefaultResolutionIndex,
		InsetIndex:        3,
		AnchorMaxMode:     display.AnchorMaxFromSize.String(),
		SanitizeMode:      display.SanitizePerComponent.String(),
		GateOnOrientation: true,
		ForcedPortrait:    true,
	}

	panel := SpawnDisplayEntities(e, screen, saved)
	ProcessSafeAreaEvents(e)

	statusEntry, ok := components.SafeAreaStatus.First(e.World)
	if !ok {
		t.Fatal("no screen status entity")
	}
	status := components.SafeAreaStatus.Get(statusEntry)
	if status.Changes != 1 {
		t.Fatalf("changes = %d after startup, want 1", status.Changes)
	}

	// The panel saw the saved insets, orientation and anchor mode on its first apply
	safe := cfg.Settings.InsetPresets[3].Insets.Rotate(display.OrientationPortrait).Apply(1920, 1080)
	if status.LastSafeArea != safe {
		t.Errorf("last safe area = %+v, want %+v", status.LastSafeArea, safe)
	}
	want := display.ComputeAnchors(safe, 1920, 1080, display.AnchorOptions{MaxMode: display.AnchorMaxFromSize})
	if got := components.Layout.Get(panel).Anchors(); got != want {
		t.Errorf("anchors = %v, want %v", got, want)
	}

	for i := 0; i < 3; i++ {
		UpdateViewports(e)
		UpdateSafeAreas(e)
		ProcessSafeAreaEvents(e)
	}
	if status.Changes != 1 {
		t.Errorf("changes = %d after idle ticks, want 1", status.Changes)
	}
}

func TestToggleGateDoesNotNotify(t *testing.T) {
	w := newTestWorld(t, true)
	w.tick()

	HandleSettingsAction(w.ecs, SettingsActionToggleGate)
	w.tick()
	HandleSettingsAction(w.ecs, SettingsActionToggleGate)
	w.tick()

	if w.status.Changes != 1 {
		t.Errorf("changes = %d after gate toggles, want 1", w.status.Changes)
	}
}

package systems

import (
	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/automoto/screenfit/shared/display"
	"github.com/automoto/screenfit/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SettingsAction is a single change to the display settings
type SettingsAction int

const (
	SettingsActionNone SettingsAction = iota
	SettingsActionNextResolution
	SettingsActionNextInsets
	SettingsActionToggleOrientation
	SettingsActionToggleAnchorMode
	SettingsActionToggleSanitizeMode
	SettingsActionToggleGate
	SettingsActionToggleFullscreen
	SettingsActionToggleOverlay
)

var settingsKeys = []struct {
	key    ebiten.Key
	action SettingsAction
}{
	{ebiten.KeyR, SettingsActionNextResolution},
	{ebiten.KeyI, SettingsActionNextInsets},
	{ebiten.KeyO, SettingsActionToggleOrientation},
	{ebiten.KeyM, SettingsActionToggleAnchorMode},
	{ebiten.KeyN, SettingsActionToggleSanitizeMode},
	{ebiten.KeyG, SettingsActionToggleGate},
	{ebiten.KeyF, SettingsActionToggleFullscreen},
	{ebiten.KeyD, SettingsActionToggleOverlay},
}

// GetOrCreateSettings returns the settings component, creating the entity on first use
func GetOrCreateSettings(e *ecs.ECS) *components.DisplaySettingsData {
	entry, ok := components.DisplaySettings.First(e.World)
	if !ok {
		entry = factory.CreateSettings(e)
	}
	return components.DisplaySettings.Get(entry)
}

// UpdateSettings applies keyboard shortcuts and saves changed settings
func UpdateSettings(e *ecs.ECS) {
	for _, k := range settingsKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			HandleSettingsAction(e, k.action)
		}
	}

	settings := GetOrCreateSettings(e)
	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

// HandleSettingsAction updates the settings component and pushes the result
// to the screen, cameras and safe area panels
func HandleSettingsAction(e *ecs.ECS, action SettingsAction) {
	settings := GetOrCreateSettings(e)

	switch action {
	case SettingsActionNextResolution:
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
	case SettingsActionNextInsets:
		settings.InsetIndex = (settings.InsetIndex + 1) % len(cfg.Settings.InsetPresets)
	case SettingsActionToggleOrientation:
		settings.ForcedPortrait = !settings.ForcedPortrait
	case SettingsActionToggleAnchorMode:
		if settings.AnchorMaxMode == display.AnchorMaxFromCorner {
			settings.AnchorMaxMode = display.AnchorMaxFromSize
		} else {
			settings.AnchorMaxMode = display.AnchorMaxFromCorner
		}
	case SettingsActionToggleSanitizeMode:
		if settings.SanitizeMode == display.SanitizePerComponent {
			settings.SanitizeMode = display.SanitizePerVector
		} else {
			settings.SanitizeMode = display.SanitizePerComponent
		}
	case SettingsActionToggleGate:
		settings.GateOnOrientation = !settings.GateOnOrientation
	case SettingsActionToggleFullscreen:
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
	case SettingsActionToggleOverlay:
		settings.ShowOverlay = !settings.ShowOverlay
	default:
		return
	}

	ApplyDisplaySettings(e, settings, action)
	settings.Dirty = true
}

// ApplyDisplaySettings pushes the settings that changed with action into the
// world. SettingsActionNone applies everything.
func ApplyDisplaySettings(e *ecs.ECS, settings *components.DisplaySettingsData, action SettingsAction) {
	all := action == SettingsActionNone

	if screenEntry, ok := components.Screen.First(e.World); ok {
		screen := components.Screen.Get(screenEntry).Screen
		if all || action == SettingsActionNextInsets {
			screen.SetInsets(cfg.Settings.InsetPresets[settings.InsetIndex].Insets)
		}
		if all || action == SettingsActionToggleOrientation {
			if settings.ForcedPortrait {
				screen.ForceOrientation(display.OrientationPortrait)
			} else {
				screen.ForceOrientation(display.OrientationUnknown)
			}
		}
	}

	if all || action == SettingsActionNextResolution {
		target := cfg.Settings.Resolutions[settings.ResolutionIndex].Display()
		components.ViewportFitter.Each(e.World, func(entry *donburi.Entry) {
			components.ViewportFitter.Get(entry).Fitter.SetTarget(target)
		})
	}

	switch action {
	case SettingsActionNone, SettingsActionToggleAnchorMode, SettingsActionToggleSanitizeMode, SettingsActionToggleGate:
		opts := SafeAreaOptionsFor(settings)
		components.SafeArea.Each(e.World, func(entry *donburi.Entry) {
			components.SafeArea.Get(entry).Adapter.SetOptions(opts)
		})
	}
}

// SafeAreaOptionsFor converts the settings into adapter options
func SafeAreaOptionsFor(settings *components.DisplaySettingsData) display.SafeAreaOptions {
	return display.SafeAreaOptions{
		Anchors: display.AnchorOptions{
			MaxMode:  settings.AnchorMaxMode,
			Sanitize: settings.SanitizeMode,
		},
		GateOnOrientation: settings.GateOnOrientation,
	}
}

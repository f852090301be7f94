package factory

import (
	"github.com/automoto/screenfit/archetypes"
	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings spawns the settings entity seeded from config defaults
func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.DisplaySettings.Set(entry, &components.DisplaySettingsData{
		ResolutionIndex:   cfg.Settings.DefaultResolutionIndex,
		InsetIndex:        cfg.Settings.DefaultInsetIndex,
		AnchorMaxMode:     cfg.SafeArea.AnchorMaxMode,
		SanitizeMode:      cfg.SafeArea.SanitizeMode,
		GateOnOrientation: cfg.SafeArea.GateOnOrientation,
		ShowOverlay:       cfg.Debug.ShowOverlay,
	})
	return entry
}

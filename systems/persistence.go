package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/automoto/screenfit/shared/display"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ResolutionIndex   int    `json:"resolutionIndex"`
	InsetIndex        int    `json:"insetIndex"`
	AnchorMaxMode     string `json:"anchorMaxMode"`
	SanitizeMode      string `json:"sanitizeMode"`
	GateOnOrientation bool   `json:"gateOnOrientation"`
	ForcedPortrait    bool   `json:"forcedPortrait"`
	Fullscreen        bool   `json:"fullscreen"`
	ShowOverlay       bool   `json:"showOverlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "screenfit",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return DecodeSettings(data)
}

// DecodeSettings parses saved settings and drops out-of-range values
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		settings.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	if settings.InsetIndex < 0 || settings.InsetIndex >= len(cfg.Settings.InsetPresets) {
		settings.InsetIndex = cfg.Settings.DefaultInsetIndex
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// NewSavedSettings snapshots the settings component for storage
func NewSavedSettings(s *components.DisplaySettingsData) *SavedSettings {
	return &SavedSettings{
		ResolutionIndex:   s.ResolutionIndex,
		InsetIndex:        s.InsetIndex,
		AnchorMaxMode:     s.AnchorMaxMode.String(),
		SanitizeMode:      s.SanitizeMode.String(),
		GateOnOrientation: s.GateOnOrientation,
		ForcedPortrait:    s.ForcedPortrait,
		Fullscreen:        s.Fullscreen,
		ShowOverlay:       s.ShowOverlay,
	}
}

// SaveCurrentSettings saves the current settings from the DisplaySettingsData component
func SaveCurrentSettings(s *components.DisplaySettingsData) {
	_ = SaveSettings(NewSavedSettings(s))
}

// CopySavedSettings writes loaded settings into the settings component
func CopySavedSettings(dst *components.DisplaySettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	dst.ResolutionIndex = saved.ResolutionIndex
	dst.InsetIndex = saved.InsetIndex
	dst.AnchorMaxMode = display.AnchorMaxFromCorner
	if saved.AnchorMaxMode == display.AnchorMaxFromSize.String() {
		dst.AnchorMaxMode = display.AnchorMaxFromSize
	}
	dst.SanitizeMode = display.SanitizePerComponent
	if saved.SanitizeMode == display.SanitizePerVector.String() {
		dst.SanitizeMode = display.SanitizePerVector
	}
	dst.GateOnOrientation = saved.GateOnOrientation
	dst.ForcedPortrait = saved.ForcedPortrait
	dst.Fullscreen = saved.Fullscreen
	dst.ShowOverlay = saved.ShowOverlay
}

// ApplySavedSettingsGlobal applies the settings that live outside the ECS
// world. Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	cfg.Viewport.Target = cfg.Settings.Resolutions[saved.ResolutionIndex].Display()
	cfg.Settings.DefaultResolutionIndex = saved.ResolutionIndex
	cfg.Settings.DefaultInsetIndex = saved.InsetIndex
	cfg.Debug.ShowOverlay = saved.ShowOverlay
}

package config

import (
	"github.com/automoto/screenfit/shared/display"
	"github.com/yohamta/donburi/ecs"
)

const (
	Default ecs.LayerID = iota
	Overlay
)

// Config is the initial window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ViewportConfig controls camera letterboxing
type ViewportConfig struct {
	Target display.Resolution

	// Letterbox bar colour
	BarColor [4]uint8
}

// SafeAreaConfig controls how UI panels are inset
type SafeAreaConfig struct {
	AnchorMaxMode     display.AnchorMaxMode
	SanitizeMode      display.SanitizeMode
	GateOnOrientation bool // Only re-check on orientation changes
}

// Options converts the config into adapter options
func (c SafeAreaConfig) Options() display.SafeAreaOptions {
	return display.SafeAreaOptions{
		Anchors: display.AnchorOptions{
			MaxMode:  c.AnchorMaxMode,
			Sanitize: c.SanitizeMode,
		},
		GateOnOrientation: c.GateOnOrientation,
	}
}

// UIConfig contains safe area panel presentation values
type UIConfig struct {
	PanelTweenSeconds float32 // Time for the panel to ease to a new safe area
}

// DebugConfig contains debug overlay toggles
type DebugConfig struct {
	ShowOverlay bool
}

// Global configuration instances
var C *Config
var Viewport ViewportConfig
var SafeArea SafeAreaConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "screenfit",
	}

	Viewport = ViewportConfig{
		Target:   display.Resolution{Width: 1920, Height: 1080},
		BarColor: [4]uint8{0, 0, 0, 255},
	}

	SafeArea = SafeAreaConfig{
		AnchorMaxMode:     display.AnchorMaxFromCorner,
		SanitizeMode:      display.SanitizePerComponent,
		GateOnOrientation: true,
	}

	UI = UIConfig{
		PanelTweenSeconds: 0.25,
	}

	Debug = DebugConfig{
		ShowOverlay: true,
	}
}

package config

import "github.com/automoto/screenfit/shared/display"

// Resolution represents a target resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// Display converts the option to a target resolution
func (r Resolution) Display() display.Resolution {
	return display.Resolution{Width: float64(r.Width), Height: float64(r.Height)}
}

// InsetPreset is a named set of simulated device cutouts
type InsetPreset struct {
	Label  string
	Insets display.Insets
}

// SettingsConfig contains the selectable display options
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	InsetPresets           []InsetPreset
	DefaultInsetIndex      int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 1920, Height: 1080, Label: "1920 x 1080 (16:9)"},
			{Width: 1280, Height: 720, Label: "1280 x 720 (16:9)"},
			{Width: 1024, Height: 768, Label: "1024 x 768 (4:3)"},
			{Width: 2560, Height: 1080, Label: "2560 x 1080 (21:9)"},
			{Width: 1080, Height: 1920, Label: "1080 x 1920 (9:16)"},
		},
		DefaultResolutionIndex: 0,
		InsetPresets: []InsetPreset{
			{Label: "None"},
			// Sizes are in window pixels, landscape-left
			{Label: "Notch", Insets: display.Insets{Left: 48, Bottom: 21}},
			{Label: "Dynamic Island", Insets: display.Insets{Left: 59, Right: 59, Bottom: 21}},
			{Label: "Rounded Corners", Insets: display.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}},
			{Label: "Punch Hole", Insets: display.Insets{Left: 32}},
		},
		DefaultInsetIndex: 1,
	}
}

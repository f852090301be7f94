package components

import (
	"github.com/automoto/screenfit/shared/display"
	"github.com/yohamta/donburi"
)

// DisplaySettingsData stores the live display settings
type DisplaySettingsData struct {
	ResolutionIndex   int
	InsetIndex        int
	AnchorMaxMode     display.AnchorMaxMode
	SanitizeMode      display.SanitizeMode
	GateOnOrientation bool
	ForcedPortrait    bool
	Fullscreen        bool
	ShowOverlay       bool

	Dirty bool // Settings changed since last save
}

var DisplaySettings = donburi.NewComponentType[DisplaySettingsData]()

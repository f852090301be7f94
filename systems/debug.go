package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/automoto/screenfit/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2 with the ebitenui faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	debugMargin     = 8
	debugLineHeight = 14
)

var debugTextColor = color.RGBA{230, 230, 230, 255}

// DrawDisplayDebug prints the current viewport, safe area and settings
func DrawDisplayDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.ShowOverlay {
		return
	}

	lines := DebugLines(e)
	face := fonts.Mono.Get()

	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	vector.DrawFilledRect(screen,
		debugMargin/2, debugMargin/2,
		float32(width+debugMargin), float32(len(lines)*debugLineHeight+debugMargin),
		color.RGBA{0, 0, 0, 180}, false)

	for i, l := range lines {
		text.Draw(screen, l, face, debugMargin, debugMargin+(i+1)*debugLineHeight-2, debugTextColor)
	}
}

// DebugLines describes the display state of the world, one fact per line
func DebugLines(e *ecs.ECS) []string {
	settings := GetOrCreateSettings(e)
	var lines []string

	if screenEntry, ok := components.Screen.First(e.World); ok {
		screen := components.Screen.Get(screenEntry).Screen
		state := screen.State()
		lines = append(lines, fmt.Sprintf("screen   %.0fx%.0f %s", state.Width, state.Height, state.Orientation))

		status := components.SafeAreaStatus.Get(screenEntry)
		safe := status.LastSafeArea
		lines = append(lines,
			fmt.Sprintf("safe     %.0f,%.0f %.0fx%.0f (changes %d)", safe.X, safe.Y, safe.Width, safe.Height, status.Changes),
			fmt.Sprintf("anchors  (%.3f,%.3f)-(%.3f,%.3f)",
				status.LastAnchors.Min.X, status.LastAnchors.Min.Y,
				status.LastAnchors.Max.X, status.LastAnchors.Max.Y),
		)
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		vp := components.Camera.Get(cameraEntry).Viewport
		lines = append(lines, fmt.Sprintf("viewport %.3f,%.3f %.3fx%.3f", vp.X, vp.Y, vp.Width, vp.Height))
	}

	lines = append(lines,
		fmt.Sprintf("[R] target   %s", cfg.Settings.Resolutions[settings.ResolutionIndex].Label),
		fmt.Sprintf("[I] insets   %s", cfg.Settings.InsetPresets[settings.InsetIndex].Label),
		fmt.Sprintf("[O] portrait %v", settings.ForcedPortrait),
		fmt.Sprintf("[M] max mode %s", settings.AnchorMaxMode),
		fmt.Sprintf("[N] sanitize %s", settings.SanitizeMode),
		fmt.Sprintf("[G] gate     %v", settings.GateOnOrientation),
	)
	return lines
}

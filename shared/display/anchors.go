package display

import "github.com/yohamta/donburi/features/math"

// AnchorMaxMode selects how the upper anchor is derived from a safe area.
type AnchorMaxMode int

const (
	// AnchorMaxFromCorner uses the safe area's far corner, (x+w, y+h).
	AnchorMaxFromCorner AnchorMaxMode = iota
	// AnchorMaxFromSize uses the safe area's extent, (w, h). This only matches
	// the far corner when the safe area starts at the origin and is kept for
	// layouts tuned against the legacy behaviour.
	AnchorMaxFromSize
)

func (m AnchorMaxMode) String() string {
	if m == AnchorMaxFromSize {
		return "size"
	}
	return "corner"
}

// SanitizeMode selects how non-finite anchors are replaced.
type SanitizeMode int

const (
	// SanitizePerComponent replaces each non-finite component on its own.
	SanitizePerComponent SanitizeMode = iota
	// SanitizePerVector replaces the whole vector if any component is non-finite.
	SanitizePerVector
)

func (m SanitizeMode) String() string {
	if m == SanitizePerVector {
		return "vector"
	}
	return "component"
}

type AnchorOptions struct {
	MaxMode  AnchorMaxMode
	Sanitize SanitizeMode
}

// ComputeAnchors maps a pixel safe area on a screenWidth x screenHeight screen
// to normalized anchors. Non-finite results fall back to 0 for Min and 1 for
// Max, and every component is clamped to [0,1].
func ComputeAnchors(safe Rect, screenWidth, screenHeight float64, opts AnchorOptions) AnchorBounds {
	min := math.NewVec2(safe.X/screenWidth, safe.Y/screenHeight)

	var max math.Vec2
	switch opts.MaxMode {
	case AnchorMaxFromSize:
		max = math.NewVec2(safe.Width/screenWidth, safe.Height/screenHeight)
	default:
		max = math.NewVec2((safe.X+safe.Width)/screenWidth, (safe.Y+safe.Height)/screenHeight)
	}

	min = sanitize(min, 0, opts.Sanitize)
	max = sanitize(max, 1, opts.Sanitize)

	return AnchorBounds{
		Min: math.NewVec2(clamp01(min.X), clamp01(min.Y)),
		Max: math.NewVec2(clamp01(max.X), clamp01(max.Y)),
	}
}

func sanitize(v math.Vec2, fallback float64, mode SanitizeMode) math.Vec2 {
	if mode == SanitizePerVector {
		if isFinite(v.X) && isFinite(v.Y) {
			return v
		}
		return math.NewVec2(fallback, fallback)
	}
	if !isFinite(v.X) {
		v.X = fallback
	}
	if !isFinite(v.Y) {
		v.Y = fallback
	}
	return v
}

package systems

import (
	"image"
	"image/color"

	"github.com/automoto/screenfit/components"
	cfg "github.com/automoto/screenfit/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const sceneGridSize = 120

var (
	sceneImage  *ebiten.Image
	sceneDrawOp = &ebiten.DrawImageOptions{}

	sceneBackground = color.RGBA{30, 34, 48, 255}
	sceneGridColor  = color.RGBA{60, 70, 96, 255}
	sceneFrameColor = color.RGBA{240, 200, 80, 255}
	safeAreaColor   = color.RGBA{80, 220, 140, 255}
)

// CameraViewport returns the camera's viewport in screen pixels
func CameraViewport(e *ecs.ECS, screen *ebiten.Image) (image.Rectangle, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return image.Rectangle{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	b := screen.Bounds()
	return camera.Viewport.Pixels(b.Dx(), b.Dy()), true
}

// DrawScene renders a reference grid at the target resolution and scales it
// into the camera viewport
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	vp, ok := CameraViewport(e, screen)
	if !ok || vp.Empty() {
		return
	}

	target := cfg.Viewport.Target
	if fitterEntry, ok := components.ViewportFitter.First(e.World); ok {
		target = components.ViewportFitter.Get(fitterEntry).Fitter.Target
	}
	w, h := int(target.Width), int(target.Height)
	if w <= 0 || h <= 0 {
		return
	}

	if sceneImage == nil || sceneImage.Bounds().Dx() != w || sceneImage.Bounds().Dy() != h {
		if sceneImage != nil {
			sceneImage.Deallocate()
		}
		sceneImage = ebiten.NewImage(w, h)
	}
	drawReferenceGrid(sceneImage)

	sceneDrawOp.GeoM = ViewportGeoM(vp, w, h)
	sceneDrawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(sceneImage, sceneDrawOp)
}

// ViewportGeoM maps a srcW x srcH image onto the pixel viewport vp
func ViewportGeoM(vp image.Rectangle, srcW, srcH int) ebiten.GeoM {
	var g ebiten.GeoM
	if srcW <= 0 || srcH <= 0 {
		return g
	}
	g.Scale(float64(vp.Dx())/float64(srcW), float64(vp.Dy())/float64(srcH))
	g.Translate(float64(vp.Min.X), float64(vp.Min.Y))
	return g
}

func drawReferenceGrid(img *ebiten.Image) {
	img.Fill(sceneBackground)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	for x := sceneGridSize; x < w; x += sceneGridSize {
		vector.StrokeLine(img, float32(x), 0, float32(x), float32(h), 2, sceneGridColor, false)
	}
	for y := sceneGridSize; y < h; y += sceneGridSize {
		vector.StrokeLine(img, 0, float32(y), float32(w), float32(y), 2, sceneGridColor, false)
	}

	// Frame and centre cross make any stretching obvious
	vector.StrokeRect(img, 4, 4, float32(w-8), float32(h-8), 8, sceneFrameColor, false)
	vector.StrokeCircle(img, float32(w)/2, float32(h)/2, float32(h)/4, 6, sceneFrameColor, true)
}

// DrawLetterbox fills the bars outside the camera viewport
func DrawLetterbox(e *ecs.ECS, screen *ebiten.Image) {
	vp, ok := CameraViewport(e, screen)
	if !ok {
		return
	}
	c := cfg.Viewport.BarColor
	barColor := color.RGBA{c[0], c[1], c[2], c[3]}

	for _, bar := range LetterboxBars(screen.Bounds(), vp) {
		vector.DrawFilledRect(screen,
			float32(bar.Min.X), float32(bar.Min.Y),
			float32(bar.Dx()), float32(bar.Dy()),
			barColor, false)
	}
}

// LetterboxBars returns the non-empty parts of bounds outside vp
func LetterboxBars(bounds, vp image.Rectangle) []image.Rectangle {
	vp = vp.Intersect(bounds)
	if vp.Empty() {
		return []image.Rectangle{bounds}
	}
	candidates := []image.Rectangle{
		image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, vp.Min.Y), // top
		image.Rect(bounds.Min.X, vp.Max.Y, bounds.Max.X, bounds.Max.Y), // bottom
		image.Rect(bounds.Min.X, vp.Min.Y, vp.Min.X, vp.Max.Y),         // left
		image.Rect(vp.Max.X, vp.Min.Y, bounds.Max.X, vp.Max.Y),         // right
	}
	bars := candidates[:0]
	for _, r := range candidates {
		if !r.Empty() {
			bars = append(bars, r)
		}
	}
	return bars
}

// DrawSafeAreaOutline strokes the raw safe area reported by the screen
func DrawSafeAreaOutline(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.ShowOverlay {
		return
	}
	screenEntry, ok := components.Screen.First(e.World)
	if !ok {
		return
	}
	safe := components.Screen.Get(screenEntry).Screen.SafeArea()
	vector.StrokeRect(screen,
		float32(safe.X), float32(safe.Y),
		float32(safe.Width), float32(safe.Height),
		2, safeAreaColor, false)
}

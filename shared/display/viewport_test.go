package display

import (
	stdmath "math"
	"testing"
)

const epsilon = 1e-6

func approx(a, b float64) bool {
	return stdmath.Abs(a-b) < epsilon
}

func rectApprox(a, b Rect) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Width, b.Width) && approx(a.Height, b.Height)
}

type fakeScreen struct {
	state    ScreenState
	safeArea Rect
}

func (s *fakeScreen) State() ScreenState { return s.state }
func (s *fakeScreen) SafeArea() Rect     { return s.safeArea }

type fakeCamera struct {
	viewport Rect
	writes   int
}

func (c *fakeCamera) SetViewport(r Rect) {
	c.viewport = r
	c.writes++
}

func TestComputeViewport(t *testing.T) {
	hd := Resolution{Width: 1920, Height: 1080}
	tests := []struct {
		name   string
		target Resolution
		w, h   float64
		want   Rect
	}{
		{"matching aspect", hd, 1920, 1080, Rect{0, 0, 1, 1}},
		{"matching aspect scaled", hd, 1280, 720, Rect{0, 0, 1, 1}},
		{"wider screen pillarboxed", hd, 2560, 1080, Rect{0.125, 0, 0.75, 1}},
		{"portrait screen letterboxed", hd, 1080, 1920, Rect{0, 0.341796875, 1, 0.31640625}},
		{"4:3 screen letterboxed", hd, 1024, 768, Rect{0, 0.0625, 1, 0.75}},
		{"zero screen height", hd, 1920, 0, FullViewport},
		{"negative screen width", hd, -1, 1080, FullViewport},
		{"zero target height", Resolution{Width: 1920}, 1920, 1080, FullViewport},
		{"NaN screen", hd, stdmath.NaN(), 1080, FullViewport},
		{"infinite target", Resolution{Width: stdmath.Inf(1), Height: 1080}, 1920, 1080, FullViewport},
		{"overflowing aspects", Resolution{Width: stdmath.MaxFloat64, Height: 1e-300}, stdmath.MaxFloat64, 1e-300, FullViewport},
		{"overflowing screen aspect", hd, stdmath.MaxFloat64, 1e-300, FullViewport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeViewport(tt.target, tt.w, tt.h)
			if !rectApprox(got, tt.want) {
				t.Errorf("ComputeViewport(%v, %v, %v) = %+v, want %+v", tt.target, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestComputeViewportStaysInUnitSquare(t *testing.T) {
	sizes := []float64{1, 3, 17, 240, 360, 640, 720, 1080, 1170, 1920, 2532, 3840}
	for _, tw := range sizes {
		for _, th := range sizes {
			target := Resolution{Width: tw, Height: th}
			for _, sw := range sizes {
				for _, sh := range sizes {
					r := ComputeViewport(target, sw, sh)
					if r.X < 0 || r.Y < 0 || r.X+r.Width > 1+epsilon || r.Y+r.Height > 1+epsilon {
						t.Fatalf("target %vx%v screen %vx%v: viewport %+v leaves unit square", tw, th, sw, sh, r)
					}
					if r != ComputeViewport(target, sw, sh) {
						t.Fatalf("target %vx%v screen %vx%v: result not deterministic", tw, th, sw, sh)
					}
				}
			}
		}
	}
}

func TestViewportFitterResize(t *testing.T) {
	screen := &fakeScreen{state: ScreenState{Width: 1920, Height: 1080}}
	cam := &fakeCamera{}
	f := NewViewportFitter(Resolution{Width: 1920, Height: 1080}, screen, cam)

	f.Init()
	if cam.writes != 1 || cam.viewport != FullViewport {
		t.Fatalf("after Init: writes=%d viewport=%+v", cam.writes, cam.viewport)
	}

	if f.OnResize() {
		t.Error("OnResize reported a change with an unchanged screen")
	}
	if cam.writes != 1 {
		t.Errorf("camera written %d times, want 1", cam.writes)
	}

	screen.state.Width = 2560
	if !f.OnResize() {
		t.Fatal("OnResize missed a width change")
	}
	if !rectApprox(cam.viewport, Rect{0.125, 0, 0.75, 1}) {
		t.Errorf("viewport = %+v", cam.viewport)
	}
	if f.Viewport() != cam.viewport {
		t.Errorf("Viewport() = %+v, camera has %+v", f.Viewport(), cam.viewport)
	}

	f.SetTarget(Resolution{Width: 2560, Height: 1080})
	if !rectApprox(cam.viewport, FullViewport) {
		t.Errorf("after SetTarget viewport = %+v", cam.viewport)
	}
}

func TestViewportFitterOnResizeBeforeInit(t *testing.T) {
	screen := &fakeScreen{state: ScreenState{Width: 800, Height: 600}}
	cam := &fakeCamera{}
	f := NewViewportFitter(Resolution{Width: 800, Height: 600}, screen, cam)

	if !f.OnResize() {
		t.Fatal("first OnResize should apply")
	}
	if cam.writes != 1 {
		t.Errorf("writes = %d", cam.writes)
	}
}

func TestRectPixels(t *testing.T) {
	got := Rect{X: 0.125, Y: 0, Width: 0.75, Height: 1}.Pixels(2560, 1080)
	if got.Min.X != 320 || got.Min.Y != 0 || got.Max.X != 2240 || got.Max.Y != 1080 {
		t.Errorf("Pixels = %v", got)
	}
}

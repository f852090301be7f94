package components

import (
	"github.com/automoto/screenfit/shared/display"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Viewport display.Rect // Normalized, written by the viewport fitter
}

func (c *CameraData) SetViewport(r display.Rect) {
	c.Viewport = r
}

var Camera = donburi.NewComponentType[CameraData]()

type cameraEntry struct {
	entry *donburi.Entry
}

func (c cameraEntry) SetViewport(r display.Rect) {
	if !c.entry.Valid() {
		return
	}
	Camera.Get(c.entry).SetViewport(r)
}

// CameraOf returns a display.Camera that writes into the entry's Camera component
func CameraOf(entry *donburi.Entry) display.Camera {
	return cameraEntry{entry: entry}
}

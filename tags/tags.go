package tags

import "github.com/yohamta/donburi"

var (
	Camera        = donburi.NewTag().SetName("Camera")
	SafeAreaPanel = donburi.NewTag().SetName("SafeAreaPanel")
	Screen        = donburi.NewTag().SetName("Screen")
	Settings      = donburi.NewTag().SetName("Settings")
)

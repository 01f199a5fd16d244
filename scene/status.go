package scene

import (
	"fmt"
)

// Status is the one-line summary shown on the HUD.
func (f Frame) Status() string {
	sky := "night"
	if f.IsDay {
		sky = "day"
	}
	shading := "phong"
	if f.IsBlinn {
		shading = "blinn-phong"
	}
	return fmt.Sprintf("camera: %s | %s | %s | orbit: %s | spotlight: %s",
		f.CameraID, sky, shading, onOff(f.MotionEnabled), onOff(f.SpotFollows))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Package orbit drives the object and spotlight that circle the scene.
package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LightPhaseFactor scales the angular speed into the light's phase lead.
const LightPhaseFactor = 0.08

// Motion advances an orbit parameter and places things on the circle.
type Motion struct {
	Radius float32
	// Speed is the angular speed in radians per second.
	Speed  float32
	Center mgl32.Vec3

	time float32
}

// NewMotion returns a motion at orbit time zero.
func NewMotion(radius, speed float32, center mgl32.Vec3) *Motion {
	return &Motion{
		Radius: radius,
		Speed:  speed,
		Center: center,
		time:   0,
	}
}

// Advance accumulates speed*elapsed into the orbit time when enabled.
// A disabled motion keeps its time exactly.
func (m *Motion) Advance(elapsed float32, enabled bool) {
	if !enabled {
		return
	}
	m.time += m.Speed * elapsed
}

// Time is the accumulated orbit angle in radians.
func (m *Motion) Time() float32 {
	return m.time
}

// PositionAt returns the circle coordinates at the current time plus phase.
func (m *Motion) PositionAt(phase float32) (x, z float32) {
	angle := float64(m.time + phase)
	return float32(math.Sin(angle)) * m.Radius, float32(math.Cos(angle)) * m.Radius
}

// LightPhase is the phase offset of the trailing light.
func (m *Motion) LightPhase() float32 {
	return m.Speed * LightPhaseFactor
}

// ObjectPosition is the orbiting object's world position.
func (m *Motion) ObjectPosition() mgl32.Vec3 {
	return m.worldAt(0)
}

// LightPosition is the orbiting spotlight's world position.
func (m *Motion) LightPosition() mgl32.Vec3 {
	return m.worldAt(m.LightPhase())
}

func (m *Motion) worldAt(phase float32) mgl32.Vec3 {
	x, z := m.PositionAt(phase)
	return m.Center.Add(mgl32.Vec3{x, 0, z})
}

// ObjectModel is the orbiting object's model matrix: translated onto the
// circle and spun about Y by the orbit angle.
func (m *Motion) ObjectModel() mgl32.Mat4 {
	p := m.ObjectPosition()
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.HomogRotate3DY(m.time))
}

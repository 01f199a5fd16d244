// Package aim steers the orbiting spotlight relative to the object-follow camera.
package aim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/braheezy/orbit-lights/camera"
)

// Direction is a held aim key.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

const (
	// DefaultRate is the aim speed in degrees per second.
	DefaultRate = 5.0
	limit       = 89.0
)

// Aimer accumulates a yaw/pitch offset, in degrees, each clamped to [-89, 89].
type Aimer struct {
	Yaw, Pitch float32
	Rate       float32
}

func NewAimer(rate float32) *Aimer {
	return &Aimer{Rate: rate}
}

// Update moves the offset by rate*elapsed. Up raises pitch, Left raises yaw.
func (a *Aimer) Update(direction Direction, elapsed float32) {
	velocity := a.Rate * elapsed
	switch direction {
	case Up:
		a.Pitch += velocity
	case Down:
		a.Pitch -= velocity
	case Left:
		a.Yaw += velocity
	case Right:
		a.Yaw -= velocity
	}

	a.Pitch = mgl32.Clamp(a.Pitch, -limit, limit)
	a.Yaw = mgl32.Clamp(a.Yaw, -limit, limit)
}

// Direction returns the unit aim vector for a base camera orientation.
func (a *Aimer) Direction(cameraYaw, cameraPitch float32) mgl32.Vec3 {
	return camera.FrontFromEuler(cameraYaw+a.Yaw, cameraPitch+a.Pitch)
}

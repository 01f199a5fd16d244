// Package camera provides Euler-angle cameras and the rig that switches between them.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a held-key camera movement.
type Movement int

const (
	FORWARD Movement = iota
	BACKWARD
	LEFT
	RIGHT
)

const (
	// pitch limit, keeps front away from worldUp so the cross products stay defined
	maxPitch = 89.0
	minZoom  = 1.0
	maxZoom  = 45.0
)

// Camera provides a fly camera to navigate a scene
type Camera struct {
	// camera attributes
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3
	// euler angles, degrees
	Yaw, Pitch float32
	// camera options
	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

func newCamera() *Camera {
	c := Camera{
		Position:         mgl32.Vec3{0.0, 0.0, 0.0},
		WorldUp:          mgl32.Vec3{0.0, 1.0, 0.0},
		Up:               mgl32.Vec3{0.0, 1.0, 0.0},
		Yaw:              -90.0,
		Pitch:            0.0,
		Zoom:             45.0,
		MouseSensitivity: 0.1,
		MovementSpeed:    2.5,
	}
	return &c
}

func NewDefaultCamera() *Camera {
	c := newCamera()

	c.updateVectors()
	return c
}

func NewDefaultCameraAtPosition(position mgl32.Vec3) *Camera {
	c := newCamera()

	c.Position = position

	c.updateVectors()
	return c
}

func NewCamera(position mgl32.Vec3, worldUp mgl32.Vec3, yaw float32, pitch float32) *Camera {
	c := newCamera()

	c.Position = position
	c.WorldUp = worldUp
	c.Yaw = yaw
	c.Pitch = pitch

	c.updateVectors()
	return c
}

// SetOrientation replaces yaw and pitch and recomputes the basis.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = pitch
	c.updateVectors()
}

func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case FORWARD:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case BACKWARD:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case LEFT:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case RIGHT:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera. yOffset grows upward, so callers
// holding a screen-space delta pass it negated.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	xOffset *= c.MouseSensitivity
	yOffset *= c.MouseSensitivity

	c.Yaw += xOffset
	c.Pitch += yOffset

	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)
	}

	c.updateVectors()
}

func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-yOffset, minZoom, maxZoom)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	// look one unit ahead along Front
	target := c.Position.Add(c.Front)
	return mgl32.LookAtV(c.Position, target, c.Up)
}

// ProjectionMatrix is the perspective projection for the current zoom.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

func (c *Camera) updateVectors() {
	// calculate new front vector
	c.Front = frontFromEuler(c.Yaw, c.Pitch)
	// re-calc right and up too
	// normalize the vectors, because their length gets closer to 0 the more you look up or down which results in slower movement.
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// FrontFromEuler converts yaw and pitch in degrees into a unit direction.
func FrontFromEuler(yaw, pitch float32) mgl32.Vec3 {
	return frontFromEuler(yaw, pitch)
}

func frontFromEuler(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	front := mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}
	return front.Normalize()
}

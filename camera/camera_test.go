package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// assertVec3 compares component-wise with an absolute tolerance.
func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

func assertOrthonormal(t *testing.T, c Camera) {
	t.Helper()
	assert.InDelta(t, 1, c.Front.Len(), 1e-5)
	assert.InDelta(t, 1, c.Right.Len(), 1e-5)
	assert.InDelta(t, 1, c.Up.Len(), 1e-5)
	assert.InDelta(t, 0, c.Front.Dot(c.Right), 1e-5)
	assert.InDelta(t, 0, c.Front.Dot(c.Up), 1e-5)
	assert.InDelta(t, 0, c.Right.Dot(c.Up), 1e-5)
	assertVec3(t, c.Up, c.Right.Cross(c.Front), 1e-5)
}

func TestDefaultCameraLooksDownNegativeZ(t *testing.T) {
	c := NewDefaultCamera()
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Front, 1e-6)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Right, 1e-6)
	assertOrthonormal(t, *c)
}

func TestProcessKeyboard(t *testing.T) {
	c := NewDefaultCameraAtPosition(mgl32.Vec3{0, 0, 3})

	c.ProcessKeyboard(FORWARD, 1)
	assertVec3(t, mgl32.Vec3{0, 0, 0.5}, c.Position, 1e-5)

	c.ProcessKeyboard(BACKWARD, 1)
	assertVec3(t, mgl32.Vec3{0, 0, 3}, c.Position, 1e-5)

	c.ProcessKeyboard(RIGHT, 0.4)
	assertVec3(t, mgl32.Vec3{1, 0, 3}, c.Position, 1e-5)

	c.ProcessKeyboard(LEFT, 0.4)
	assertVec3(t, mgl32.Vec3{0, 0, 3}, c.Position, 1e-5)
}

func TestProcessMouseMovementClampsPitch(t *testing.T) {
	c := NewDefaultCamera()

	for i := 0; i < 100; i++ {
		c.ProcessMouseMovement(3, 1000, true)
		assert.LessOrEqual(t, c.Pitch, float32(89))
		assertOrthonormal(t, *c)
	}
	assert.Equal(t, float32(89), c.Pitch)

	c.ProcessMouseMovement(0, -100000, true)
	assert.Equal(t, float32(-89), c.Pitch)
	assertOrthonormal(t, *c)
}

func TestProcessMouseMovementSensitivity(t *testing.T) {
	c := NewDefaultCamera()
	c.ProcessMouseMovement(10, -20, true)
	assert.InDelta(t, -89, c.Yaw, 1e-5)
	assert.InDelta(t, -2, c.Pitch, 1e-5)
}

func TestProcessMouseScrollClamp(t *testing.T) {
	c := NewDefaultCamera()

	c.ProcessMouseScroll(10)
	assert.Equal(t, float32(35), c.Zoom)

	for i := 0; i < 20; i++ {
		c.ProcessMouseScroll(5)
	}
	assert.Equal(t, float32(1), c.Zoom)

	c.ProcessMouseScroll(-1000)
	assert.Equal(t, float32(45), c.Zoom)
}

func TestSetOrientationRecomputesBasis(t *testing.T) {
	c := NewDefaultCamera()
	c.SetOrientation(0, 0)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Front, 1e-6)
	assertOrthonormal(t, *c)

	c.SetOrientation(30, -45)
	want := mgl32.Vec3{
		float32(math.Cos(math.Pi/6) * math.Cos(-math.Pi/4)),
		float32(math.Sin(-math.Pi / 4)),
		float32(math.Sin(math.Pi/6) * math.Cos(-math.Pi/4)),
	}
	assertVec3(t, want, c.Front, 1e-5)
	assertOrthonormal(t, *c)
}

func TestViewMatrixLooksAlongFront(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 15, 11}, mgl32.Vec3{0, 1, 0}, -90, -45)
	view := c.ViewMatrix()

	eye := view.Mul4x1(c.Position.Vec4(1)).Vec3()
	assertVec3(t, mgl32.Vec3{}, eye, 1e-5)

	ahead := view.Mul4x1(c.Position.Add(c.Front.Mul(2)).Vec4(1)).Vec3()
	assertVec3(t, mgl32.Vec3{0, 0, -2}, ahead, 1e-5)

	above := view.Mul4x1(c.Position.Add(c.Up).Vec4(1)).Vec3()
	assertVec3(t, mgl32.Vec3{0, 1, 0}, above, 1e-5)
}

func TestProjectionMatrixUsesZoom(t *testing.T) {
	c := NewDefaultCamera()
	c.Zoom = 30
	got := c.ProjectionMatrix(1.5, 0.1, 100)
	want := mgl32.Perspective(mgl32.DegToRad(30), 1.5, 0.1, 100)
	assert.Equal(t, want, got)
}

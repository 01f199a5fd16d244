package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var center = mgl32.Vec3{0, 0, -10}

// assertVec3 compares component-wise with an absolute tolerance.
func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

func TestNewMotionStartsAtZero(t *testing.T) {
	m := NewMotion(5, 0.75, center)
	assert.Equal(t, float32(0), m.Time())

	x, z := m.PositionAt(0)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(5), z)
	assert.Equal(t, mgl32.Vec3{0, 0, -5}, m.ObjectPosition())
}

func TestAdvanceLinear(t *testing.T) {
	const speed = 0.75
	m := NewMotion(5, speed, center)
	m.Advance(1.0, true)
	m.Advance(1.0, true)
	assert.Equal(t, float32(2*speed), m.Time())
}

func TestAdvancePausedIsExact(t *testing.T) {
	m := NewMotion(5, 0.75, center)
	m.Advance(0.37, true)
	before := m.Time()
	for i := 0; i < 50; i++ {
		m.Advance(0.016, false)
		m.Advance(3, false)
	}
	assert.Equal(t, before, m.Time())

	// paused from the very first frame stays at zero
	fresh := NewMotion(5, 0.75, center)
	fresh.Advance(1, false)
	assert.Equal(t, float32(0), fresh.Time())
}

func TestPositionsShareCircle(t *testing.T) {
	m := NewMotion(5, 0.75, center)
	for i := 0; i < 40; i++ {
		m.Advance(0.13, true)

		obj := m.ObjectPosition().Sub(center)
		light := m.LightPosition().Sub(center)
		assert.InDelta(t, 5, obj.Len(), 1e-4)
		assert.InDelta(t, 5, light.Len(), 1e-4)
		assert.Equal(t, float32(0), obj.Y())

		// the light leads the object by speed*0.08 radians
		angle := math.Acos(float64(mgl32.Clamp(obj.Normalize().Dot(light.Normalize()), -1, 1)))
		assert.InDelta(t, 0.75*LightPhaseFactor, angle, 1e-3)
	}
}

func TestPositionAt(t *testing.T) {
	m := NewMotion(2, 1, center)
	m.Advance(math.Pi/2, true)
	x, z := m.PositionAt(0)
	assert.InDelta(t, 2, x, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)

	x, z = m.PositionAt(math.Pi / 2)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, -2, z, 1e-6)
}

func TestObjectModel(t *testing.T) {
	m := NewMotion(5, 1, center)
	m.Advance(0.5, true)

	model := m.ObjectModel()
	origin := model.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assertVec3(t, m.ObjectPosition(), origin, 1e-5)
}

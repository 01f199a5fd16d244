// Package lighting assembles the per-frame light set shared by every lit shader.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/braheezy/orbit-lights/camera"
)

const (
	NumPointLights = 4
	NumSpotLights  = 2

	DayAmbient   = 0.05
	NightAmbient = 0.005
)

type DirLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	// cosines of the inner and outer cone half-angles
	CutOff      float32
	OuterCutOff float32
}

// Snapshot is the complete light state for one frame.
type Snapshot struct {
	ViewPos     mgl32.Vec3
	DirLight    DirLight
	PointLights [NumPointLights]PointLight
	SpotLights  [NumSpotLights]SpotLight
	// Blinn selects the Blinn-Phong pipeline. It does not affect any value above.
	Blinn bool
}

// Frame is everything Build reads.
type Frame struct {
	Camera   camera.Camera
	CameraID camera.ID

	OrbitLightPos mgl32.Vec3
	// OrbitLightDir is the aimed direction of the orbiting spotlight.
	OrbitLightDir mgl32.Vec3

	IsDay             bool
	IsBlinn           bool
	SpotFollowsCamera bool
}

// DefaultPointLightPositions are the four fixed lamps.
var DefaultPointLightPositions = [NumPointLights]mgl32.Vec3{
	{0.7, 0.2, 2.0},
	{2.3, -3.3, -4.0},
	{-4.0, 2.0, -12.0},
	{0.0, 0.0, -3.0},
}

// Builder holds the static part of the light set.
type Builder struct {
	PointLightPositions [NumPointLights]mgl32.Vec3
}

func NewBuilder(pointLightPositions [NumPointLights]mgl32.Vec3) Builder {
	return Builder{PointLightPositions: pointLightPositions}
}

var (
	dirLightDirection = mgl32.Vec3{-0.2, -1.0, -0.3}
	spotCutOff        = float32(math.Cos(float64(mgl32.DegToRad(12.5))))
	spotOuterCutOff   = float32(math.Cos(float64(mgl32.DegToRad(15.0))))
)

func gray(v float32) mgl32.Vec3 { return mgl32.Vec3{v, v, v} }

// Build derives the frame's lights. It only reads f, so equal frames give
// identical snapshots.
func (b Builder) Build(f Frame) Snapshot {
	ambient := float32(NightAmbient)
	if f.IsDay {
		ambient = DayAmbient
	}

	s := Snapshot{
		ViewPos: f.Camera.Position,
		DirLight: DirLight{
			Direction: dirLightDirection,
			Ambient:   gray(ambient),
			Diffuse:   gray(0.4),
			Specular:  gray(0.5),
		},
		Blinn: f.IsBlinn,
	}

	for i, pos := range b.PointLightPositions {
		s.PointLights[i] = PointLight{
			Position:  pos,
			Ambient:   gray(0.05),
			Diffuse:   gray(0.8),
			Specular:  gray(1.0),
			Constant:  1.0,
			Linear:    0.09,
			Quadratic: 0.032,
		}
	}

	// the camera spotlight is off when not wanted and always on the follow
	// camera, which sits right above the orbiting spotlight
	x := float32(0)
	if f.SpotFollowsCamera && f.CameraID != camera.ObjectFollow {
		x = 1
	}
	s.SpotLights[0] = spot(f.Camera.Position, f.Camera.Front, x)
	s.SpotLights[1] = spot(f.OrbitLightPos, f.OrbitLightDir, 1)

	return s
}

func spot(position, direction mgl32.Vec3, x float32) SpotLight {
	return SpotLight{
		Position:    position,
		Direction:   direction,
		Ambient:     gray(0),
		Diffuse:     gray(1.0 * x),
		Specular:    gray(1.0 * x),
		Constant:    1.0 * x,
		Linear:      0.09 * x,
		Quadratic:   0.032 * x,
		CutOff:      spotCutOff,
		OuterCutOff: spotOuterCutOff,
	}
}

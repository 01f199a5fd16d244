package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LampScale shrinks the unit cube into a point light marker.
const LampScale = 0.2

// ContainerPositions are the eight fixed crates.
var ContainerPositions = [8]mgl32.Vec3{
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
}

var containerAxis = mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()

// ContainerModels returns the model matrix of every crate. Crate i (from 1)
// is tilted by 20*i degrees.
func ContainerModels() []mgl32.Mat4 {
	models := make([]mgl32.Mat4, len(ContainerPositions))
	for i, p := range ContainerPositions {
		angle := mgl32.DegToRad(20 * float32(i+1))
		models[i] = mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.HomogRotate3D(angle, containerAxis))
	}
	return models
}

// LampModels places a small cube at each point light.
func LampModels(positions [4]mgl32.Vec3) []mgl32.Mat4 {
	models := make([]mgl32.Mat4, len(positions))
	for i, p := range positions {
		models[i] = mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.Scale3D(LampScale, LampScale, LampScale))
	}
	return models
}

// SphereModel is the sphere's model matrix: centred on the origin, scaled.
func SphereModel(scale float32) mgl32.Mat4 {
	return mgl32.Scale3D(scale, scale, scale)
}

// SkyboxView strips the translation from a view matrix so the sky stays
// centred on the camera.
func SkyboxView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// CubeVertices is a unit cube as 36 position/normal vertices, stride 6,
// counter-clockwise from outside.
var CubeVertices = cubeVertices()

// SkyboxVertices is the cube the sky is drawn on, positions only, wound to be
// seen from inside.
var SkyboxVertices = skyboxVertices()

type face struct {
	normal, u, v mgl32.Vec3
}

// u x v == normal for every face, which makes the corner order below
// counter-clockwise seen from outside.
var cubeFaces = [6]face{
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{0, 1, 0}, v: mgl32.Vec3{1, 0, 0}},
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 1, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{1, 0, 0}},
}

// corners returns the two triangles of a face of the cube [-half, half]^3.
func (f face) corners(half float32) [6]mgl32.Vec3 {
	c := f.normal.Mul(half)
	u, v := f.u.Mul(half), f.v.Mul(half)
	p00 := c.Sub(u).Sub(v)
	p10 := c.Add(u).Sub(v)
	p11 := c.Add(u).Add(v)
	p01 := c.Sub(u).Add(v)
	return [6]mgl32.Vec3{p00, p10, p11, p11, p01, p00}
}

func cubeVertices() []float32 {
	data := make([]float32, 0, 36*6)
	for _, f := range cubeFaces {
		for _, p := range f.corners(0.5) {
			data = append(data, p[0], p[1], p[2], f.normal[0], f.normal[1], f.normal[2])
		}
	}
	return data
}

func skyboxVertices() []float32 {
	data := make([]float32, 0, 36*3)
	for _, f := range cubeFaces {
		c := f.corners(1)
		// reversed, so the inside faces the camera
		for i := len(c) - 1; i >= 0; i-- {
			data = append(data, c[i][0], c[i][1], c[i][2])
		}
	}
	return data
}

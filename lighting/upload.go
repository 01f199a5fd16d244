package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the part of a shader program the light upload needs.
type Uniforms interface {
	SetVec3(name string, value mgl32.Vec3)
	SetFloat(name string, value float32)
}

// Material is a surface description. Programs that shade with a single
// object colour read ObjectColor; the others read Diffuse and Specular.
type Material struct {
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
	ObjectColor mgl32.Vec3
	Shininess   float32
}

var (
	CubeMaterial = Material{
		Diffuse:   mgl32.Vec3{1.0, 0.5, 0.31},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess: 32.0,
	}
	SphereMaterial = Material{
		ObjectColor: mgl32.Vec3{1.0, 0.5, 0.31},
		Specular:    mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:   32.0,
	}
)

// Upload sets viewPos and every dirLight, pointLights[i] and spotLight[i]
// uniform from s. The caller must have made the program current.
func Upload(u Uniforms, s Snapshot) {
	u.SetVec3("viewPos", s.ViewPos)

	u.SetVec3("dirLight.direction", s.DirLight.Direction)
	u.SetVec3("dirLight.ambient", s.DirLight.Ambient)
	u.SetVec3("dirLight.diffuse", s.DirLight.Diffuse)
	u.SetVec3("dirLight.specular", s.DirLight.Specular)

	for i, p := range s.PointLights {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		u.SetVec3(prefix+"position", p.Position)
		u.SetVec3(prefix+"ambient", p.Ambient)
		u.SetVec3(prefix+"diffuse", p.Diffuse)
		u.SetVec3(prefix+"specular", p.Specular)
		u.SetFloat(prefix+"constant", p.Constant)
		u.SetFloat(prefix+"linear", p.Linear)
		u.SetFloat(prefix+"quadratic", p.Quadratic)
	}

	for i, sp := range s.SpotLights {
		prefix := fmt.Sprintf("spotLight[%d].", i)
		u.SetVec3(prefix+"position", sp.Position)
		u.SetVec3(prefix+"direction", sp.Direction)
		u.SetVec3(prefix+"ambient", sp.Ambient)
		u.SetVec3(prefix+"diffuse", sp.Diffuse)
		u.SetVec3(prefix+"specular", sp.Specular)
		u.SetFloat(prefix+"constant", sp.Constant)
		u.SetFloat(prefix+"linear", sp.Linear)
		u.SetFloat(prefix+"quadratic", sp.Quadratic)
		u.SetFloat(prefix+"cutOff", sp.CutOff)
		u.SetFloat(prefix+"outerCutOff", sp.OuterCutOff)
	}
}

// UploadMaterial sets the material.* uniforms.
func UploadMaterial(u Uniforms, m Material) {
	u.SetVec3("material.diffuse", m.Diffuse)
	u.SetVec3("material.specular", m.Specular)
	u.SetVec3("material.objectColor", m.ObjectColor)
	u.SetFloat("material.shininess", m.Shininess)
}

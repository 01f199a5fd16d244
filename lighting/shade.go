package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Albedo is the colour lit by ambient and diffuse terms.
func (m Material) Albedo() mgl32.Vec3 {
	if m.ObjectColor != (mgl32.Vec3{}) {
		return m.ObjectColor
	}
	return m.Diffuse
}

// Shade evaluates the lights in s at one surface point. It follows the
// fragment shaders: Phong reflection, or Blinn-Phong half vectors when
// s.Blinn is set.
func Shade(s Snapshot, m Material, fragPos, normal mgl32.Vec3) mgl32.Vec3 {
	norm := normal.Normalize()
	viewDir := s.ViewPos.Sub(fragPos).Normalize()

	result := shadeDir(s.DirLight, m, norm, viewDir, s.Blinn)
	for _, p := range s.PointLights {
		result = result.Add(shadePoint(p, m, norm, fragPos, viewDir, s.Blinn))
	}
	for _, sp := range s.SpotLights {
		result = result.Add(shadeSpot(sp, m, norm, fragPos, viewDir, s.Blinn))
	}
	return result
}

func shadeDir(light DirLight, m Material, normal, viewDir mgl32.Vec3, blinn bool) mgl32.Vec3 {
	lightDir := light.Direction.Mul(-1).Normalize()
	diff := max(normal.Dot(lightDir), 0)
	spec := specular(normal, lightDir, viewDir, m.Shininess, blinn)
	return combine(light.Ambient, light.Diffuse, light.Specular, m, diff, spec)
}

func shadePoint(light PointLight, m Material, normal, fragPos, viewDir mgl32.Vec3, blinn bool) mgl32.Vec3 {
	toLight := light.Position.Sub(fragPos)
	lightDir := toLight.Normalize()
	diff := max(normal.Dot(lightDir), 0)
	spec := specular(normal, lightDir, viewDir, m.Shininess, blinn)
	att := attenuation(light.Constant, light.Linear, light.Quadratic, toLight.Len())
	if att == 0 {
		return mgl32.Vec3{}
	}
	return combine(light.Ambient, light.Diffuse, light.Specular, m, diff, spec).Mul(att)
}

func shadeSpot(light SpotLight, m Material, normal, fragPos, viewDir mgl32.Vec3, blinn bool) mgl32.Vec3 {
	toLight := light.Position.Sub(fragPos)
	att := attenuation(light.Constant, light.Linear, light.Quadratic, toLight.Len())
	if att == 0 {
		return mgl32.Vec3{}
	}
	lightDir := toLight.Normalize()
	diff := max(normal.Dot(lightDir), 0)
	spec := specular(normal, lightDir, viewDir, m.Shininess, blinn)

	theta := lightDir.Dot(light.Direction.Mul(-1).Normalize())
	epsilon := light.CutOff - light.OuterCutOff
	intensity := float32(1)
	if epsilon != 0 {
		intensity = mgl32.Clamp((theta-light.OuterCutOff)/epsilon, 0, 1)
	}

	return combine(light.Ambient, light.Diffuse, light.Specular, m, diff, spec).Mul(att * intensity)
}

func combine(ambient, diffuse, specularColor mgl32.Vec3, m Material, diff, spec float32) mgl32.Vec3 {
	albedo := m.Albedo()
	return mul(ambient, albedo).
		Add(mul(diffuse, albedo).Mul(diff)).
		Add(mul(specularColor, m.Specular).Mul(spec))
}

func specular(normal, lightDir, viewDir mgl32.Vec3, shininess float32, blinn bool) float32 {
	var d float32
	if blinn {
		halfway := lightDir.Add(viewDir).Normalize()
		d = normal.Dot(halfway)
	} else {
		d = reflect(lightDir.Mul(-1), normal).Dot(viewDir)
	}
	return float32(math.Pow(float64(max(d, 0)), float64(shininess)))
}

// attenuation is 1/(c + l*d + q*d^2). A light with all terms zeroed is off.
func attenuation(constant, linear, quadratic, distance float32) float32 {
	denom := constant + linear*distance + quadratic*distance*distance
	if denom <= 0 {
		return 0
	}
	return 1 / denom
}

func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

func mul(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

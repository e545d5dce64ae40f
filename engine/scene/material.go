package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/lightscene/engine/colors"
	"github.com/hubastard/lightscene/engine/core"
)

// Material holds Phong reflectance terms.
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// Coral is the material of the lit cube.
var Coral = Material{
	Ambient:   colors.Coral.RGB(),
	Diffuse:   colors.Coral.RGB(),
	Specular:  colors.Gray.RGB(),
	Shininess: 32,
}

// Apply uploads the material.* uniforms to the bound shader.
func (m Material) Apply(s core.Shader) {
	s.SetVec3("material.ambient", m.Ambient)
	s.SetVec3("material.diffuse", m.Diffuse)
	s.SetVec3("material.specular", m.Specular)
	s.SetFloat("material.shininess", m.Shininess)
}

package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/lightscene/engine/colors"
	"github.com/hubastard/lightscene/engine/core"
)

// Light orbit step applied each frame, degrees.
const (
	orbitStepZ      float32 = 0.01
	orbitWobbleStep float32 = 0.02
)

const lampScale float32 = 0.2

// OrbitLight is a point light that drifts around the origin.
type OrbitLight struct {
	Position mgl32.Vec3
}

func NewOrbitLight(position mgl32.Vec3) *OrbitLight {
	return &OrbitLight{Position: position}
}

// Step advances the orbit by one frame. t is the elapsed time in seconds and
// only modulates the wobble about X.
//
// The step is per frame, not per second, so orbit speed follows the frame rate.
func (l *OrbitLight) Step(t float64) {
	wobble := orbitWobbleStep * float32(math.Sin(t))
	rot := mgl32.HomogRotate3DZ(mgl32.DegToRad(orbitStepZ)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(wobble)))
	l.Position = rot.Mul4x1(l.Position.Vec4(1)).Vec3()
}

// Model returns the transform for the small lamp cube drawn at the light.
func (l *OrbitLight) Model() mgl32.Mat4 {
	return mgl32.Translate3D(l.Position.X(), l.Position.Y(), l.Position.Z()).
		Mul4(mgl32.Scale3D(lampScale, lampScale, lampScale))
}

// LightColors are the Phong terms of a light.
type LightColors struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// CyclingLightColors derives the light terms from a color that cycles with t seconds.
func CyclingLightColors(t float64) LightColors {
	color := mgl32.Vec3{
		float32(math.Sin(t * 2.0)),
		float32(math.Sin(t * 0.7)),
		float32(math.Sin(t * 1.3)),
	}
	diffuse := color.Mul(0.5)
	return LightColors{
		Ambient:  diffuse.Mul(0.2),
		Diffuse:  diffuse,
		Specular: colors.White.RGB(),
	}
}

// Apply uploads the light.* uniforms to the bound shader.
func (lc LightColors) Apply(s core.Shader, position mgl32.Vec3) {
	s.SetVec3("light.ambient", lc.Ambient)
	s.SetVec3("light.diffuse", lc.Diffuse)
	s.SetVec3("light.specular", lc.Specular)
	s.SetVec3("light.position", position)
}

package colors

import "github.com/go-gl/mathgl/mgl32"

type Color [4]float32

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Coral = Color{1.0, 0.5, 0.31, 1}
	Gray  = Color{0.5, 0.5, 0.5, 1}
)

// RGB drops alpha, for vec3 color uniforms.
func (c Color) RGB() mgl32.Vec3 { return mgl32.Vec3{c[0], c[1], c[2]} }


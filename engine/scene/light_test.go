package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type uniformRecorder struct {
	vec3s  map[string]mgl32.Vec3
	floats map[string]float32
}

func newUniformRecorder() *uniformRecorder {
	return &uniformRecorder{vec3s: map[string]mgl32.Vec3{}, floats: map[string]float32{}}
}

func (r *uniformRecorder) Use()                                  {}
func (r *uniformRecorder) SetInt(string, int32)                  {}
func (r *uniformRecorder) SetFloat(name string, v float32)       { r.floats[name] = v }
func (r *uniformRecorder) SetVec3(name string, v mgl32.Vec3)     { r.vec3s[name] = v }
func (r *uniformRecorder) SetVec3f(name string, x, y, z float32) { r.vec3s[name] = mgl32.Vec3{x, y, z} }
func (r *uniformRecorder) SetMat4(string, mgl32.Mat4)            {}

func TestOrbitLightStepKeepsDistance(t *testing.T) {
	l := NewOrbitLight(mgl32.Vec3{1, 1.5, -1})
	r := l.Position.Len()
	for i := 0; i < 1000; i++ {
		l.Step(float64(i) * 0.016)
	}
	// float32 rounding accumulates over the steps
	if math.Abs(float64(l.Position.Len()/r-1)) > 1e-3 {
		t.Fatalf("|position| drifted from %v to %v", r, l.Position.Len())
	}
	if l.Position.ApproxEqualThreshold(mgl32.Vec3{1, 1.5, -1}, 1e-3) {
		t.Fatalf("light did not move: %v", l.Position)
	}
}

func TestOrbitLightStepAtTimeZero(t *testing.T) {
	// sin(0) removes the wobble, leaving only the step about Z.
	l := NewOrbitLight(mgl32.Vec3{1, 1.5, -1})
	l.Step(0)

	a := float64(mgl32.DegToRad(0.01))
	want := mgl32.Vec3{
		float32(1*math.Cos(a) - 1.5*math.Sin(a)),
		float32(1*math.Sin(a) + 1.5*math.Cos(a)),
		-1,
	}
	if !l.Position.ApproxEqualThreshold(want, eps) {
		t.Fatalf("position = %v, want %v", l.Position, want)
	}
}

func TestOrbitLightModel(t *testing.T) {
	l := NewOrbitLight(mgl32.Vec3{1, 1.5, -1})
	m := l.Model()
	if got := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3(); !got.ApproxEqualThreshold(l.Position, eps) {
		t.Fatalf("model origin = %v, want %v", got, l.Position)
	}
	corner := m.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3().Sub(l.Position)
	if !corner.ApproxEqualThreshold(mgl32.Vec3{0.1, 0.1, 0.1}, eps) {
		t.Fatalf("scaled corner offset = %v, want 0.1 each", corner)
	}
}

func TestCyclingLightColors(t *testing.T) {
	lc := CyclingLightColors(0)
	if lc.Diffuse != (mgl32.Vec3{}) || lc.Ambient != (mgl32.Vec3{}) {
		t.Fatalf("t=0 colors = %+v, want black ambient/diffuse", lc)
	}
	if lc.Specular != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("specular = %v", lc.Specular)
	}

	tt := math.Pi / 4 // sin(2t) = 1
	lc = CyclingLightColors(tt)
	if !approx(lc.Diffuse.X(), 0.5) || !approx(lc.Ambient.X(), 0.1) {
		t.Fatalf("red diffuse/ambient = %v/%v, want 0.5/0.1", lc.Diffuse.X(), lc.Ambient.X())
	}
	if want := float32(0.5 * math.Sin(0.7*tt)); !approx(lc.Diffuse.Y(), want) {
		t.Fatalf("green diffuse = %v, want %v", lc.Diffuse.Y(), want)
	}
	if want := float32(0.1 * math.Sin(1.3*tt)); !approx(lc.Ambient.Z(), want) {
		t.Fatalf("blue ambient = %v, want %v", lc.Ambient.Z(), want)
	}
}

func TestLightAndMaterialUniforms(t *testing.T) {
	rec := newUniformRecorder()
	pos := mgl32.Vec3{1, 2, 3}
	CyclingLightColors(math.Pi/4).Apply(rec, pos)
	Coral.Apply(rec)

	for _, name := range []string{
		"light.ambient", "light.diffuse", "light.specular", "light.position",
		"material.ambient", "material.diffuse", "material.specular",
	} {
		if _, ok := rec.vec3s[name]; !ok {
			t.Errorf("uniform %q not set", name)
		}
	}
	if rec.vec3s["light.position"] != pos {
		t.Errorf("light.position = %v", rec.vec3s["light.position"])
	}
	if rec.vec3s["material.diffuse"] != (mgl32.Vec3{1, 0.5, 0.31}) {
		t.Errorf("material.diffuse = %v", rec.vec3s["material.diffuse"])
	}
	if rec.floats["material.shininess"] != 32 {
		t.Errorf("material.shininess = %v", rec.floats["material.shininess"])
	}
}

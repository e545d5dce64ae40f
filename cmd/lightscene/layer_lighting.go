package main

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/lightscene/engine/assets"
	"github.com/hubastard/lightscene/engine/core"
	"github.com/hubastard/lightscene/engine/geometry"
	"github.com/hubastard/lightscene/engine/scene"
)

var (
	cameraStart = mgl32.Vec3{0, 0, 3}
	lightStart  = mgl32.Vec3{1, 1.5, -1}

	// Lit cubes; cube i is also rotated 20°·i about cubeAxis.
	cubePositions = []mgl32.Vec3{{0, 0, 0}}
	cubeAxis      = mgl32.Vec3{1, 0.3, 0.5}
)

// LayerLighting draws a Phong-lit cube and the lamp cube lighting it, viewed
// through a free-fly camera.
type LayerLighting struct {
	cfg     core.Config
	cam     *scene.FlyCamera
	ctrl    *scene.FlyController
	light   *scene.OrbitLight
	mat     scene.Material
	elapsed float64 // seconds

	objectShader core.Shader
	lampShader   core.Shader
	cube         core.Mesh
	lamp         core.Mesh
	projection   mgl32.Mat4
}

func NewLayerLighting(cfg core.Config) *LayerLighting {
	return &LayerLighting{cfg: cfg, mat: scene.Coral}
}

func (l *LayerLighting) OnAttach(e *core.Engine) {
	vert := loadShaderSource("scene.vert")
	l.objectShader = e.Renderer.CreateShader(vert, loadShaderSource("phong.frag"))
	l.lampShader = e.Renderer.CreateShader(vert, loadShaderSource("light_cube.frag"))

	var err error
	if l.cube, err = e.Renderer.CreateMesh(geometry.CubeMesh()); err != nil {
		panic(err)
	}
	if l.lamp, err = e.Renderer.CreateMesh(geometry.CubeMesh()); err != nil {
		panic(err)
	}

	l.cam = scene.NewFlyCamera(cameraStart)
	if l.cfg.FOV > 0 {
		l.cam.Zoom = l.cfg.FOV
	}
	l.ctrl = scene.NewFlyController(l.cam)
	l.light = scene.NewOrbitLight(lightStart)

	// Fixed for the run; the window is not resizable.
	w, h := e.Window.FramebufferSize()
	l.projection = l.cam.Projection(aspect(w, h), l.cfg.Near, l.cfg.Far)
}

func (l *LayerLighting) OnDetach(e *core.Engine) {}

func (l *LayerLighting) OnUpdate(e *core.Engine, dt float64) {
	l.elapsed += dt
	l.ctrl.Update(e.Input, float32(dt))
	l.light.Step(l.elapsed)
}

func (l *LayerLighting) OnRender(e *core.Engine) {
	view := l.cam.ViewMatrix()

	l.lampShader.Use()
	l.lampShader.SetMat4("view", view)
	l.lampShader.SetMat4("projection", l.projection)
	l.lampShader.SetMat4("model", l.light.Model())
	l.lamp.Draw()

	l.objectShader.Use()
	l.mat.Apply(l.objectShader)
	scene.CyclingLightColors(l.elapsed).Apply(l.objectShader, l.light.Position)
	l.objectShader.SetVec3("viewPos", l.cam.Position)
	l.objectShader.SetMat4("view", view)
	l.objectShader.SetMat4("projection", l.projection)
	for i, pos := range cubePositions {
		angle := mgl32.DegToRad(20 * float32(i))
		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
			Mul4(mgl32.HomogRotate3D(angle, cubeAxis.Normalize()))
		l.objectShader.SetMat4("model", model)
		l.cube.Draw()
	}
}

func (l *LayerLighting) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventKey); ok && v.Down && v.Key == core.KeyEscape {
		e.Window.RequestClose()
		return true
	}
	return false
}

// loadShaderSource falls back to an empty source so the failure surfaces as a
// logged compile error instead of stopping the program.
func loadShaderSource(name string) string {
	src, err := assets.LoadShader(name)
	if err != nil {
		log.Printf("shader source: %v", err)
		return "\x00"
	}
	return src
}

func aspect(w, h int) float32 {
	if h < 1 {
		return 1
	}
	return float32(w) / float32(h)
}

package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/lightscene/engine/core"
)

type RendererGL struct {
	win     core.Window
	shaders []*Shader
	meshes  []*Mesh
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) CreateShader(vertSrc, fragSrc string) core.Shader {
	s := NewShader(vertSrc, fragSrc)
	r.shaders = append(r.shaders, s)
	return s
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	m, err := NewMesh(desc)
	if err != nil {
		return nil, err
	}
	r.meshes = append(r.meshes, m)
	return m, nil
}

// Shutdown releases every shader and mesh created through r.
func (r *RendererGL) Shutdown() {
	for _, m := range r.meshes {
		m.Delete()
	}
	for _, s := range r.shaders {
		s.Delete()
	}
	r.meshes, r.shaders = nil, nil
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

package core

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/lightscene/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)              // called once after window/renderer init
	OnUpdate(e *Engine, dt float64) // called once per frame with the previous frame's duration in seconds
	OnRender(e *Engine)             // issue draw calls for the frame
	OnEvent(e *Engine, ev Event)    // input/window events
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// PushLayer attaches l and adds it on top of the layer stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	CursorPos() (float64, float64)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer abstraction. Resources created through a Renderer are released by Shutdown.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreateShader(vertSrc, fragSrc string) Shader
	CreateMesh(desc MeshDesc) (Mesh, error)
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

// Shader is a linked GPU program. Setters write into the currently bound program.
type Shader interface {
	Use()
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
	SetVec3f(name string, x, y, z float32)
	SetMat4(name string, m mgl32.Mat4)
}

// Mesh is a non-indexed triangle list living on the GPU.
type Mesh interface {
	Draw()
	VertexCount() int
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32 // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int32 // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Layout   VertexLayout
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyX
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title         string
	Width         int
	Height        int
	VSync         bool
	Resizable     bool
	CaptureCursor bool // hide and lock the cursor for mouse-look
	ClearColor    colors.Color

	// Projection
	FOV  float32 // vertical, degrees
	Near float32
	Far  float32
}

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hubastard/lightscene/engine/colors"
	"github.com/hubastard/lightscene/engine/core"
	glbackend "github.com/hubastard/lightscene/engine/gfx/gl"
	"github.com/hubastard/lightscene/engine/platform"
	"github.com/hubastard/lightscene/engine/profiler"
)

// titleInterval is how often the FPS readout in the window title refreshes.
const titleInterval = time.Second

type App struct {
	cfg        core.Config
	frames     *profiler.FrameStats
	sinceTitle time.Duration
	layer      *LayerLighting
}

func (a *App) OnStart(e *core.Engine) {
	log.Printf("GPU: %s (%s), %s", e.Renderer.GPURenderer(), e.Renderer.GPUVendor(), e.Renderer.GPUVersion())

	a.frames = profiler.NewFrameStats(120)
	a.layer = NewLayerLighting(a.cfg)
	e.PushLayer(a.layer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	d := time.Duration(dt * float64(time.Second))
	a.frames.Add(d)

	a.sinceTitle += d
	if a.sinceTitle >= titleInterval {
		a.sinceTitle = 0
		e.Window.SetTitle(fmt.Sprintf("%s - %.0f FPS", a.cfg.Title, a.frames.FPS()))
	}
}

func (a *App) OnRender(e *core.Engine)               {}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	log.Printf("ran for %s, avg frame %s", e.Uptime().Round(time.Millisecond), a.frames.Average())
}

func main() {
	cfg := core.Config{
		Title:         "Learn3DOpenGL",
		Width:         800,
		Height:        600,
		VSync:         true,
		Resizable:     false,
		CaptureCursor: true,
		ClearColor:    colors.Black,
		FOV:           45,
		Near:          0.1,
		Far:           100,
	}
	app := &App{cfg: cfg}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}

package core

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
//
// Each frame is strictly sequential: poll events, sample the cursor, update
// with the previous frame's duration, clear, render, swap. Window or renderer
// creation failures are returned before the loop starts.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	// window owns the context; renderer shuts down first (below)
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) { dispatch(eng, app, ev) })

	app.OnStart(eng)
	eng.Input.SeedMouse(win.CursorPos())

	var (
		prev  = time.Now()
		clear = cfg.ClearColor
	)

	for !win.ShouldClose() {
		now := time.Now()
		dt := now.Sub(prev).Seconds()
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()
		eng.Input.SampleMouse(win.CursorPos())

		app.OnUpdate(eng, dt)
		eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng) })

		// Present
		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	log.Println("Engine exit")
	return nil
}

func dispatch(eng *Engine, app App, ev Event) {
	eng.Input.Handle(ev)
	app.OnEvent(eng, ev)
	eng.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(eng, ev) })
	switch v := ev.(type) {
	case EventResize:
		if v.W < 1 || v.H < 1 {
			return
		}
		eng.Renderer.Resize(v.W, v.H)
	case EventCloseRequested:
		eng.Window.RequestClose()
	}
}

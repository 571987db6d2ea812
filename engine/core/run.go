package core

import (
	"log/slog"
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		switch ev := ev.(type) {
		case EventResize:
			if ev.W < 1 || ev.H < 1 {
				return
			}
			rend.Resize(ev.W, ev.H)
		case EventCloseRequested:
			win.RequestClose()
		}
	})

	app.OnStart(eng)

	// Fixed-timestep with interpolation
	rate := cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	tick := time.Second / time.Duration(rate)
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, tick.Seconds())
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		rend.Flush()

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	slog.Info("engine exit", "uptime", eng.Uptime())
	return nil
}

package core

import (
	"time"

	"github.com/hubastard/canopy/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetCursor(shape int)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer abstraction. Only solid quads are needed by the shell.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	FillRect(x, y, w, h float32, c colors.Color)
	Flush()
	Shutdown()
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
	TickRate   int // fixed updates per second, 60 when zero
}

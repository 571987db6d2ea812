package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/canopy/engine/core"
)

// Cursor shapes accepted by SetCursor, in ui.Cursor order.
const (
	cursorArrow = iota
	cursorIBeam
	cursorCrosshair
	cursorHand
	cursorHResize
	cursorVResize
	cursorCount
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
// Pointer positions are reported in framebuffer pixels so they share a
// space with EventResize.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)

	cursors [cursorCount]*glfw.Cursor
	shape   int

	mx, my float64 // last pointer position, framebuffer pixels
	mods   core.Mod
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	slog.Info("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win, onEv: onEvent}
	gw.cursors = [cursorCount]*glfw.Cursor{
		cursorArrow:     glfw.CreateStandardCursor(glfw.ArrowCursor),
		cursorIBeam:     glfw.CreateStandardCursor(glfw.IBeamCursor),
		cursorCrosshair: glfw.CreateStandardCursor(glfw.CrosshairCursor),
		cursorHand:      glfw.CreateStandardCursor(glfw.HandCursor),
		cursorHResize:   glfw.CreateStandardCursor(glfw.HResizeCursor),
		cursorVResize:   glfw.CreateStandardCursor(glfw.VResizeCursor),
	}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.mx, gw.my = gw.toFramebuffer(x, y)
		gw.emit(core.EventMouseMove{X: gw.mx, Y: gw.my})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		gw.mods = translateMods(mods)
		gw.mx, gw.my = gw.toFramebuffer(win.GetCursorPos())
		gw.emit(core.EventMouseButton{Button: btn, Down: action == glfw.Press, X: gw.mx, Y: gw.my, Mods: gw.mods})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff, X: gw.mx, Y: gw.my})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		gw.mods = translateMods(mods)
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{
			Key:      k,
			Scancode: scancode,
			Down:     action != glfw.Release,
			Repeat:   action == glfw.Repeat,
			Mods:     gw.mods,
		})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventChar{Rune: r, Mods: gw.mods})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// toFramebuffer scales screen coordinates to framebuffer pixels; they
// differ on high-DPI displays.
func (g *GLFWWindow) toFramebuffer(x, y float64) (float64, float64) {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return x, y
	}
	return x * float64(fw) / float64(ww), y * float64(fh) / float64(wh)
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// SetCursor switches the pointer shape. Unknown shapes fall back to the arrow.
func (g *GLFWWindow) SetCursor(shape int) {
	if shape < 0 || shape >= cursorCount {
		shape = cursorArrow
	}
	if shape == g.shape {
		return
	}
	g.shape = shape
	g.w.SetCursor(g.cursors[shape])
}

// Destroy releases the cursors and the window and terminates GLFW. Run
// calls it after the renderer has shut down.
func (g *GLFWWindow) Destroy() {
	for _, c := range g.cursors {
		if c != nil {
			c.Destroy()
		}
	}
	g.w.Destroy()
	glfw.Terminate()
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	case glfw.MouseButton4:
		return core.MouseButton4, true
	case glfw.MouseButton5:
		return core.MouseButton5, true
	default:
		return 0, false
	}
}

var keyTable = map[glfw.Key]core.Key{
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyEnter:        core.KeyEnter,
	glfw.KeyKPEnter:      core.KeyEnter,
	glfw.KeyTab:          core.KeyTab,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeyDelete:       core.KeyDelete,
	glfw.KeyInsert:       core.KeyInsert,
	glfw.KeyLeft:         core.KeyLeft,
	glfw.KeyRight:        core.KeyRight,
	glfw.KeyUp:           core.KeyUp,
	glfw.KeyDown:         core.KeyDown,
	glfw.KeyHome:         core.KeyHome,
	glfw.KeyEnd:          core.KeyEnd,
	glfw.KeyPageUp:       core.KeyPageUp,
	glfw.KeyPageDown:     core.KeyPageDown,
	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyLeftControl:  core.KeyLeftControl,
	glfw.KeyRightControl: core.KeyRightControl,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyRightAlt:     core.KeyRightAlt,
	glfw.KeyLeftSuper:    core.KeyLeftSuper,
	glfw.KeyRightSuper:   core.KeyRightSuper,
}

func translateKey(k glfw.Key) core.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return core.KeyA + core.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return core.Key0 + core.Key(k-glfw.Key0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return core.KeyF1 + core.Key(k-glfw.KeyF1)
	}
	if ck, ok := keyTable[k]; ok {
		return ck
	}
	return core.KeyUnknown
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}

package ui

import (
	"time"

	"github.com/hubastard/canopy/engine/core"
)

// PointerEvent is delivered to pointer handlers. Handlers communicate back
// to the dispatcher through Handled and Delayed.
type PointerEvent struct {
	Button  core.MouseButton // button that changed; meaningless for moves and wheels
	Buttons core.ButtonMask  // buttons held after this event
	Mods    core.Mod

	X, Y             float32 // control-local
	WindowX, WindowY float32
	WheelX, WheelY   float32

	Time time.Time

	Handled bool
	Delayed bool

	// Replayed marks the pointer-down re-emitted once a delayed right-click
	// resolves. A replayed event cannot be delayed again.
	Replayed bool
}

// Delay asks the dispatcher to hold a right-button press until it is known
// whether it is a click or the start of a drag. It is ignored for other
// buttons and for replayed presses.
func (ev *PointerEvent) Delay() {
	if ev.Button == core.MouseRight && !ev.Replayed {
		ev.Delayed = true
	}
}

type KeyEvent struct {
	Key      core.Key
	Scancode int
	Mods     core.Mod
	Repeat   bool
	Handled  bool
}

type CharEvent struct {
	Rune    rune
	Mods    core.Mod
	Handled bool
}

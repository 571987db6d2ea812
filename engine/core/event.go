package core

// Event model. Coordinates are window-local pixels, origin top-left.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key      Key
	Scancode int
	Down     bool
	Repeat   bool
	Mods     Mod
}

func (EventKey) isEvent() {}

// EventChar carries one unicode code point of text input.
type EventChar struct {
	Rune rune
	Mods Mod
}

func (EventChar) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   float64
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

// EventScroll carries wheel offsets and the pointer position at the time of scrolling.
type EventScroll struct {
	Xoff, Yoff float64
	X, Y       float64
}

func (EventScroll) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseButton4
	MouseButton5
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	case MouseButton4:
		return "button4"
	case MouseButton5:
		return "button5"
	}
	return "unknown"
}

// Mask returns the bit for b in a button-state bitmask.
func (b MouseButton) Mask() ButtonMask { return 1 << uint(b) }

type ButtonMask uint8

func (m ButtonMask) Has(b MouseButton) bool { return m&b.Mask() != 0 }

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

func (m Mod) Shift() bool { return m&ModShift != 0 }
func (m Mod) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Mod) Alt() bool   { return m&ModAlt != 0 }
func (m Mod) Super() bool { return m&ModSuper != 0 }

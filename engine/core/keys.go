package core

import "strconv"

// Key/mod enums (subset of what GLFW reports; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
)

var keyNames = map[Key]string{
	KeyEscape:    "esc",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "f" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsModifier reports whether k is a shift/ctrl/alt/super key.
func (k Key) IsModifier() bool { return k >= KeyLeftShift && k <= KeyRightSuper }

package ui

import (
	"errors"
	"fmt"

	"github.com/hubastard/canopy/engine/core"
)

var (
	// ErrNoButtonDown is returned when capture is requested while no
	// pointer button is held from the preceding press.
	ErrNoButtonDown = errors.New("ui: capture requested with no button down")

	// ErrUnknownToken is the panic value for releasing a token that was never issued.
	ErrUnknownToken = errors.New("ui: capture token was never issued")
)

// Token identifies one grant of pointer capture. Tokens increase
// monotonically; zero is never issued.
type Token uint64

// Capture is the single pointer-capture slot of a window. While a control
// holds it, pointer events route to that control regardless of hit-testing
// until the button that was down at capture time is released.
type Capture struct {
	control Control
	button  core.MouseButton
	token   Token

	// Button held from the most recent press, if still down.
	down    bool
	pressed core.MouseButton
}

// Capture grants the slot to c and returns a token for later validation.
// It fails unless a button is held from the preceding press.
func (cp *Capture) Capture(c Control) (Token, error) {
	if !cp.down {
		return 0, ErrNoButtonDown
	}
	cp.token++
	cp.control = c
	cp.button = cp.pressed
	return cp.token, nil
}

// Release clears the captured control unconditionally.
func (cp *Capture) Release() { cp.control = nil }

// ReleaseToken releases capture only if t is still the current grant and
// reports whether it did. Releasing a token that was never issued panics.
func (cp *Capture) ReleaseToken(t Token) bool {
	if t == 0 || t > cp.token {
		panic(fmt.Errorf("%w: %d", ErrUnknownToken, t))
	}
	if !cp.Valid(t) {
		return false
	}
	cp.Release()
	return true
}

// Valid reports whether t is the live grant, i.e. it has been neither
// released nor superseded by a later capture.
func (cp *Capture) Valid(t Token) bool {
	return t != 0 && t == cp.token && cp.control != nil
}

func (cp *Capture) Captured() Control        { return cp.control }
func (cp *Capture) Button() core.MouseButton { return cp.button }

func (cp *Capture) notePress(b core.MouseButton) {
	cp.down = true
	cp.pressed = b
}

// noteRelease records a button release and ends capture when b is the
// button that initiated it. It reports whether capture ended.
func (cp *Capture) noteRelease(b core.MouseButton) bool {
	if cp.down && cp.pressed == b {
		cp.down = false
	}
	if cp.control != nil && cp.button == b {
		cp.Release()
		return true
	}
	return false
}

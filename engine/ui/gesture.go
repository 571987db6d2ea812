package ui

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/hubastard/canopy/engine/config"
	"github.com/hubastard/canopy/engine/core"
)

// Gestures turns raw presses into double-clicks and holds delayed
// right-clicks until they resolve. It only keeps state; the Window does
// the dispatching.
type Gestures struct {
	cfg config.Input

	// last press, armed for a double-click
	armed  bool
	button core.MouseButton
	target Control
	at     time.Time
	x, y   float32

	pending *delayedClick
}

type delayedClick struct {
	target Control
	ev     PointerEvent
	at     time.Time
	moved  bool
}

func (g *Gestures) SetConfig(cfg config.Input) { g.cfg = cfg }

// Press records a press of button on target at window position (x, y) and
// reports whether it completes a double-click. A completed double-click
// disarms the state so a third press starts a new sequence.
func (g *Gestures) Press(target Control, button core.MouseButton, x, y float32, now time.Time) bool {
	if g.qualifies(target, button, x, y, now) {
		g.Reset()
		return true
	}
	g.armed = true
	g.button, g.target, g.at = button, target, now
	g.x, g.y = x, y
	return false
}

func (g *Gestures) qualifies(target Control, button core.MouseButton, x, y float32, now time.Time) bool {
	if !g.armed || g.button != button || g.target != target {
		return false
	}
	if now.Sub(g.at) > g.cfg.DoubleClickTime() {
		return false
	}
	return math32.Hypot(x-g.x, y-g.y) <= g.cfg.DoubleClickDistance
}

// Reset disarms double-click detection.
func (g *Gestures) Reset() {
	g.armed = false
	g.target = nil
}

// Defer holds a right-button press that target marked as delayed.
func (g *Gestures) Defer(target Control, ev PointerEvent, now time.Time) {
	g.pending = &delayedClick{target: target, ev: ev, at: now}
}

// Pending returns the control waiting on a delayed click, or nil.
func (g *Gestures) Pending() Control {
	if g.pending == nil {
		return nil
	}
	return g.pending.target
}

// Move tracks pointer travel from the delayed press and reports whether
// motion must be suppressed. Once the pointer leaves the slop radius the
// click can no longer fire on time and motion stays suppressed until it
// resolves or is cancelled.
func (g *Gestures) Move(x, y float32) bool {
	p := g.pending
	if p == nil {
		return false
	}
	if !p.moved && math32.Hypot(x-p.ev.WindowX, y-p.ev.WindowY) > g.cfg.DelayedClickSlop {
		p.moved = true
	}
	return p.moved
}

// Due reports whether the delayed click has been held long enough without
// moving to fire.
func (g *Gestures) Due(now time.Time) bool {
	p := g.pending
	return p != nil && !p.moved && now.Sub(p.at) >= g.cfg.DelayedClickTime()
}

// Take removes the delayed click and returns its target and press event.
func (g *Gestures) Take() (Control, PointerEvent, bool) {
	p := g.pending
	if p == nil {
		return nil, PointerEvent{}, false
	}
	g.pending = nil
	return p.target, p.ev, true
}

// Cancel drops the delayed click without emitting it.
func (g *Gestures) Cancel() bool {
	if g.pending == nil {
		return false
	}
	g.pending = nil
	return true
}

// Forget drops every reference to c or its descendants.
func (g *Gestures) Forget(c Control) {
	if g.pending != nil && within(g.pending.target, c) {
		g.pending = nil
	}
	if g.target != nil && within(g.target, c) {
		g.Reset()
	}
}

package ui

import (
	"time"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/config"
)

// probe records every event it receives.
type probe struct {
	Common[*probe]
	name   string
	events []string
	last   *PointerEvent

	onDown func(*PointerEvent)
	onKey  func(*KeyEvent)
}

func newProbe(name string, x, y, w, h float32) *probe {
	p := &probe{name: name}
	p.Common = NewCommon(p)
	p.base.SetRect(Rect{x, y, w, h})
	return p
}

func (p *probe) record(kind string, ev *PointerEvent) {
	p.events = append(p.events, kind)
	if ev != nil {
		cp := *ev
		p.last = &cp
	}
}

// PointerDown records a replayed delayed press as "replay".
func (p *probe) PointerDown(ev *PointerEvent) {
	if ev.Replayed {
		p.record("replay", ev)
	} else {
		p.record("down", ev)
	}
	if p.onDown != nil {
		p.onDown(ev)
	}
}
func (p *probe) PointerUp(ev *PointerEvent)       { p.record("up", ev) }
func (p *probe) PointerMove(ev *PointerEvent)     { p.record("move", ev) }
func (p *probe) DoubleClick(ev *PointerEvent)     { p.record("double", ev) }
func (p *probe) Wheel(ev *PointerEvent)           { p.record("wheel", ev) }
func (p *probe) HorizontalWheel(ev *PointerEvent) { p.record("hwheel", ev) }
func (p *probe) PointerEnter()                    { p.record("enter", nil) }
func (p *probe) PointerLeave()                    { p.record("leave", nil) }
func (p *probe) KeyDown(ev *KeyEvent) {
	p.events = append(p.events, "keydown")
	if p.onKey != nil {
		p.onKey(ev)
	}
}
func (p *probe) KeyUp(*KeyEvent) { p.events = append(p.events, "keyup") }
func (p *probe) Char(*CharEvent) { p.events = append(p.events, "char") }

func (p *probe) count(kind string) int {
	n := 0
	for _, e := range p.events {
		if e == kind {
			n++
		}
	}
	return n
}

func (p *probe) reset() { p.events, p.last = nil, nil }

// panicErr runs f and returns the error it panicked with, if any.
func panicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

// fakeClock is advanced by hand so timing tests never sleep.
type fakeClock struct{ t time.Time }

func newClock() *fakeClock                   { return &fakeClock{t: time.Unix(1_700_000_000, 0)} }
func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestWindow returns an 800x600 window around main, driven by clk.
func newTestWindow(main Control, clk *fakeClock) *Window {
	w := NewWindow(main, WithClock(clk.Now), WithConfig(config.Default()))
	w.Resize(800, 600)
	return w
}

// recordPainter collects fill calls.
type recordPainter struct {
	rects  []Rect
	colors []colors.Color
}

func (r *recordPainter) FillRect(x, y, w, h float32, c colors.Color) {
	r.rects = append(r.rects, Rect{x, y, w, h})
	r.colors = append(r.colors, c)
}

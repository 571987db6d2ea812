package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

// UIButton fires OnClick when the left button is pressed and released
// over it. It captures the pointer while pressed so a release outside
// cancels the click. With OnContextMenu set, a right press is delayed until
// it is known not to be the start of a drag.
type UIButton struct {
	Common[*UIButton]

	hover   bool
	pressed bool
	token   Token

	onClick       func()
	onDoubleClick func()
	onContextMenu func(x, y float32)
}

func Button() *UIButton {
	b := &UIButton{}
	b.Common = NewCommon(b)
	b.base.color = colors.SteelBlue
	b.base.cursor = CursorHand
	return b
}

func (b *UIButton) OnClick(fn func()) *UIButton       { b.onClick = fn; return b }
func (b *UIButton) OnDoubleClick(fn func()) *UIButton { b.onDoubleClick = fn; return b }

// OnContextMenu sets the handler for a resolved right click. It receives
// the press position in window coordinates.
func (b *UIButton) OnContextMenu(fn func(x, y float32)) *UIButton { b.onContextMenu = fn; return b }

func (b *UIButton) Pressed() bool { return b.pressed }
func (b *UIButton) Hover() bool   { return b.hover }

func (b *UIButton) PointerEnter() { b.hover = true }
func (b *UIButton) PointerLeave() { b.hover = false }

func (b *UIButton) PointerDown(ev *PointerEvent) {
	switch ev.Button {
	case core.MouseLeft:
		b.pressed = true
		if w := WindowOf(b); w != nil {
			b.token, _ = w.Capture(b)
		}
		ev.Handled = true
	case core.MouseRight:
		if b.onContextMenu == nil {
			return
		}
		if !ev.Replayed {
			ev.Delay()
			return
		}
		b.onContextMenu(ev.WindowX, ev.WindowY)
		ev.Handled = true
	}
}

func (b *UIButton) PointerUp(ev *PointerEvent) {
	if ev.Button != core.MouseLeft || !b.pressed {
		return
	}
	b.pressed = false
	ev.Handled = true
	r := b.base.rect
	if !(Rect{0, 0, r.W, r.H}).Contains(ev.X, ev.Y) {
		return
	}
	if b.onClick != nil {
		b.onClick()
	}
}

// DoubleClick falls back to a plain press when no double-click handler is
// set, so rapid clicking still clicks.
func (b *UIButton) DoubleClick(ev *PointerEvent) {
	if b.onDoubleClick == nil || ev.Button != core.MouseLeft {
		b.PointerDown(ev)
		return
	}
	ev.Handled = true
	b.onDoubleClick()
}

// Tick drops the pressed state once capture was taken away.
func (b *UIButton) Tick(float64) {
	if !b.pressed {
		return
	}
	if w := WindowOf(b); w == nil || !w.CaptureValid(b.token) {
		b.pressed = false
	}
}

func (b *UIButton) Draw(p Painter, x, y float32) {
	c := b.base.color
	switch {
	case !b.base.Enabled():
		c = c.Lerp(colors.Gray, 0.6)
	case b.pressed:
		c = c.Scale(0.75)
	case b.hover:
		c = c.Scale(1.2)
	}
	p.FillRect(x, y, b.base.rect.W, b.base.rect.H, c)
}

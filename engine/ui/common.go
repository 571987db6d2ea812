package ui

import "github.com/hubastard/canopy/engine/colors"

// ------ Helper ------

// Common gives a widget its Base, no-op event handlers and chainable
// setters returning the widget itself. Widgets embed it and override only
// the handlers they care about.
type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	c := Common[T]{owner: owner}
	c.base.owner, _ = any(owner).(Control)
	return c
}

func (c *Common[T]) Node() *Base { return &c.base }

func (c *Common[T]) Position(x, y float32) T     { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Size(w, h float32) T         { c.base.SetSize(w, h); return c.owner }
func (c *Common[T]) Bounds(x, y, w, h float32) T { c.base.SetRect(Rect{x, y, w, h}); return c.owner }
func (c *Common[T]) Color(col colors.Color) T    { c.base.SetColor(col); return c.owner }
func (c *Common[T]) Hidden(hidden bool) T        { c.base.SetVisible(!hidden); return c.owner }
func (c *Common[T]) Disabled(disabled bool) T    { c.base.SetEnabled(!disabled); return c.owner }
func (c *Common[T]) WithCursor(cur Cursor) T     { c.base.SetCursor(cur); return c.owner }
func (c *Common[T]) Children(kids ...Control) T  { c.base.Add(kids...); return c.owner }

func (c *Common[T]) PointerDown(*PointerEvent)     {}
func (c *Common[T]) PointerUp(*PointerEvent)       {}
func (c *Common[T]) PointerMove(*PointerEvent)     {}
func (c *Common[T]) DoubleClick(*PointerEvent)     {}
func (c *Common[T]) Wheel(*PointerEvent)           {}
func (c *Common[T]) HorizontalWheel(*PointerEvent) {}
func (c *Common[T]) PointerEnter()                 {}
func (c *Common[T]) PointerLeave()                 {}
func (c *Common[T]) KeyDown(*KeyEvent)             {}
func (c *Common[T]) KeyUp(*KeyEvent)               {}
func (c *Common[T]) Char(*CharEvent)               {}
func (c *Common[T]) Tick(float64)                  {}
func (c *Common[T]) Cursor() Cursor                { return c.base.cursor }

// Draw fills the control's rectangle with its color when it is not transparent.
func (c *Common[T]) Draw(p Painter, x, y float32) {
	if c.base.color[3] > 0 {
		p.FillRect(x, y, c.base.rect.W, c.base.rect.H, c.base.color)
	}
}

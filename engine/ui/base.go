package ui

import (
	"fmt"
	"slices"

	"github.com/hubastard/canopy/engine/colors"
)

// Rect is an axis-aligned rectangle in parent-relative coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Cursor is the pointer shape a control asks for while hovered.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorCrosshair
	CursorHand
	CursorHResize
	CursorVResize
)

// Control is the capability set every node of the interaction tree offers.
// Handlers receive coordinates in the control's own local space.
type Control interface {
	Node() *Base

	PointerDown(ev *PointerEvent)
	PointerUp(ev *PointerEvent)
	PointerMove(ev *PointerEvent)
	DoubleClick(ev *PointerEvent)
	Wheel(ev *PointerEvent)
	HorizontalWheel(ev *PointerEvent)
	PointerEnter()
	PointerLeave()

	KeyDown(ev *KeyEvent)
	KeyUp(ev *KeyEvent)
	Char(ev *CharEvent)

	Tick(dt float64)
	Cursor() Cursor
	Draw(p Painter, x, y float32)
}

// Base is the tree bookkeeping shared by every control. The parent pointer
// is a lookup-only back-reference; the parent's child list owns the child.
type Base struct {
	owner    Control
	parent   *Base
	children []Control
	rect     Rect
	color    colors.Color
	cursor   Cursor
	hidden   bool
	disabled bool
}

func (b *Base) Owner() Control          { return b.owner }
func (b *Base) Rect() Rect              { return b.rect }
func (b *Base) SetRect(r Rect)          { b.rect = r }
func (b *Base) SetPos(x, y float32)     { b.rect.X, b.rect.Y = x, y }
func (b *Base) SetSize(w, h float32)    { b.rect.W, b.rect.H = w, h }
func (b *Base) Color() colors.Color     { return b.color }
func (b *Base) SetColor(c colors.Color) { b.color = c }
func (b *Base) Visible() bool           { return !b.hidden }
func (b *Base) SetVisible(v bool)       { b.hidden = !v }
func (b *Base) Enabled() bool           { return !b.disabled }
func (b *Base) SetEnabled(e bool)       { b.disabled = !e }
func (b *Base) SetCursor(c Cursor)      { b.cursor = c }

// Children returns the child list in z-order, bottommost first.
// The slice must not be modified.
func (b *Base) Children() []Control { return b.children }

// Parent returns the container this control is attached to, or nil.
func (b *Base) Parent() Control {
	if b.parent == nil {
		return nil
	}
	return b.parent.owner
}

// Add attaches children on top of the existing ones. A child that already
// has a parent is detached from it first.
func (b *Base) Add(children ...Control) {
	for _, c := range children {
		n := c.Node()
		if n == b || b.IsDescendantOf(c) {
			panic(fmt.Errorf("ui: adding %T would create a cycle", c))
		}
		if n.parent != nil {
			n.parent.Remove(c)
		}
		n.parent = b
		b.children = append(b.children, c)
	}
}

// Remove detaches c if it is a direct child of b.
func (b *Base) Remove(c Control) bool {
	i := slices.Index(b.children, c)
	if i < 0 {
		return false
	}
	b.children = slices.Delete(b.children, i, i+1)
	c.Node().parent = nil
	return true
}

// Detach removes b from its parent, if any.
func (b *Base) Detach() {
	if b.parent != nil {
		b.parent.Remove(b.owner)
	}
}

// IsDescendantOf reports whether ancestor appears on b's parent chain.
func (b *Base) IsDescendantOf(ancestor Control) bool {
	if ancestor == nil {
		return false
	}
	target := ancestor.Node()
	for p := b.parent; p != nil; p = p.parent {
		if p == target {
			return true
		}
	}
	return false
}

// Root returns the topmost ancestor, or b's own control when detached.
func (b *Base) Root() Control {
	n := b
	for n.parent != nil {
		n = n.parent
	}
	return n.owner
}

// ScreenOrigin returns the position of b's top-left corner in root space.
func (b *Base) ScreenOrigin() (x, y float32) {
	for n := b; n != nil; n = n.parent {
		x += n.rect.X
		y += n.rect.Y
	}
	return x, y
}

// ToLocal converts a root-space point into b's local space.
func (b *Base) ToLocal(x, y float32) (float32, float32) {
	ox, oy := b.ScreenOrigin()
	return x - ox, y - oy
}

// Usable reports whether b and all its ancestors are visible and enabled.
func (b *Base) Usable() bool {
	for n := b; n != nil; n = n.parent {
		if n.hidden || n.disabled {
			return false
		}
	}
	return true
}

// within reports whether c is surface or one of its descendants.
func within(c, surface Control) bool {
	if c == nil || surface == nil {
		return false
	}
	return c == surface || c.Node().IsDescendantOf(surface)
}

// Walk visits root and its descendants depth-first, bottommost child first.
func Walk(root Control, fn func(Control)) {
	fn(root)
	for _, c := range root.Node().children {
		Walk(c, fn)
	}
}

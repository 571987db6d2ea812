package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

const (
	menuWidth     = 180
	menuRowHeight = 24
)

type MenuItem struct {
	Label    string
	Action   func()
	Disabled bool
}

// UIMenu is a context menu: a column of rows, activated with the left
// button or the keyboard. Activating a row hides the menu before running
// its action.
type UIMenu struct {
	Common[*UIMenu]
	items []MenuItem
	hot   int
}

func Menu(items ...MenuItem) *UIMenu {
	m := &UIMenu{items: items, hot: -1}
	m.Common = NewCommon(m)
	m.base.color = colors.DarkGray
	m.base.SetSize(menuWidth, float32(len(items))*menuRowHeight)
	return m
}

func (m *UIMenu) Items() []MenuItem { return m.items }

// Hot returns the highlighted row, or -1.
func (m *UIMenu) Hot() int { return m.hot }

func (m *UIMenu) rowAt(y float32) int {
	i := int(y / menuRowHeight)
	if y < 0 || i >= len(m.items) {
		return -1
	}
	return i
}

func (m *UIMenu) PointerMove(ev *PointerEvent) { m.hot = m.rowAt(ev.Y) }
func (m *UIMenu) PointerLeave()                { m.hot = -1 }

func (m *UIMenu) PointerDown(ev *PointerEvent) { ev.Handled = true }

func (m *UIMenu) PointerUp(ev *PointerEvent) {
	if ev.Button != core.MouseLeft {
		return
	}
	ev.Handled = true
	m.Activate(m.rowAt(ev.Y))
}

func (m *UIMenu) KeyDown(ev *KeyEvent) {
	switch ev.Key {
	case core.KeyUp:
		m.step(-1)
	case core.KeyDown:
		m.step(1)
	case core.KeyEnter:
		m.Activate(m.hot)
	default:
		return
	}
	ev.Handled = true
}

// step moves the highlight by dir, skipping disabled rows and wrapping.
func (m *UIMenu) step(dir int) {
	n := len(m.items)
	i := m.hot
	if i < 0 && dir < 0 {
		i = n
	}
	for range n {
		i = (i + dir + n) % n
		if !m.items[i].Disabled {
			m.hot = i
			return
		}
	}
}

// Activate runs row i. Out of range or disabled rows are ignored.
func (m *UIMenu) Activate(i int) {
	if i < 0 || i >= len(m.items) || m.items[i].Disabled {
		return
	}
	if w := WindowOf(m); w != nil {
		w.HideContextMenu()
	}
	m.hot = -1
	if fn := m.items[i].Action; fn != nil {
		fn()
	}
}

func (m *UIMenu) Draw(p Painter, x, y float32) {
	p.FillRect(x, y, m.base.rect.W, m.base.rect.H, m.base.color)
	for i, it := range m.items {
		ry := y + float32(i)*menuRowHeight
		switch {
		case it.Disabled:
			p.FillRect(x+2, ry+2, m.base.rect.W-4, menuRowHeight-4, colors.Gray.WithAlpha(0.2))
		case i == m.hot:
			p.FillRect(x+2, ry+2, m.base.rect.W-4, menuRowHeight-4, colors.SteelBlue)
		}
	}
}

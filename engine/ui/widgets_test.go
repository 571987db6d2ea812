package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

func TestButtonClick(t *testing.T) {
	clicks := 0
	btn := Button().Bounds(10, 10, 100, 40).OnClick(func() { clicks++ })
	w := newTestWindow(Panel(btn), newClock())

	click(w, core.MouseLeft, 20, 20)
	assert.Equal(t, 1, clicks)
	assert.False(t, btn.Pressed())

	// release outside cancels
	w.Press(core.MouseLeft, 20, 20, 0)
	assert.True(t, btn.Pressed())
	assert.Same(t, btn, w.Captured())
	w.Release(core.MouseLeft, 300, 300, 0)
	assert.Equal(t, 1, clicks)
	assert.Nil(t, w.Captured())
}

func TestButtonDoubleClick(t *testing.T) {
	clk := newClock()
	clicks, doubles := 0, 0
	btn := Button().Bounds(0, 0, 100, 40).
		OnClick(func() { clicks++ }).
		OnDoubleClick(func() { doubles++ })
	w := newTestWindow(Panel(btn), clk)

	click(w, core.MouseLeft, 5, 5)
	clk.Advance(100 * time.Millisecond)
	click(w, core.MouseLeft, 5, 5)
	assert.Equal(t, 1, clicks)
	assert.Equal(t, 1, doubles)

	plain := 0
	other := Button().Bounds(200, 0, 100, 40).OnClick(func() { plain++ })
	w.Main().Node().Add(other)
	clk.Advance(time.Second)
	click(w, core.MouseLeft, 205, 5)
	clk.Advance(100 * time.Millisecond)
	click(w, core.MouseLeft, 205, 5)
	assert.Equal(t, 2, plain)
}

func TestButtonContextMenuAfterHold(t *testing.T) {
	clk := newClock()
	menu := Menu(MenuItem{Label: "Rename"})
	var w *Window
	btn := Button().Bounds(0, 0, 100, 40).OnContextMenu(func(x, y float32) {
		w.ShowContextMenu(menu, x, y)
	})
	w = newTestWindow(Panel(btn), clk)

	w.Press(core.MouseRight, 30, 25, 0)
	assert.Nil(t, w.Gate().ContextMenu())

	clk.Advance(300 * time.Millisecond)
	w.Tick(0.3)
	require.Same(t, menu, w.Gate().ContextMenu())
	assert.Equal(t, float32(30), menu.Node().Rect().X)
	assert.Equal(t, float32(25), menu.Node().Rect().Y)

	w.Release(core.MouseRight, 30, 25, 0)
	assert.Same(t, menu, w.Gate().ContextMenu())
}

func TestButtonQuickRightClicksEachOpenContextMenu(t *testing.T) {
	clk := newClock()
	calls := 0
	btn := Button().Bounds(0, 0, 100, 40).OnContextMenu(func(x, y float32) { calls++ })
	w := newTestWindow(Panel(btn), clk)

	click(w, core.MouseRight, 10, 10)
	clk.Advance(100 * time.Millisecond)
	click(w, core.MouseRight, 10, 10)
	assert.Equal(t, 2, calls)

	clk.Advance(time.Second)
	w.Tick(1)
	assert.Equal(t, 2, calls)
	assert.Nil(t, w.gestures.Pending())
}

func TestButtonDropsPressWhenCaptureLost(t *testing.T) {
	btn := Button().Bounds(0, 0, 100, 40)
	w := newTestWindow(Panel(btn), newClock())

	w.Press(core.MouseLeft, 5, 5, 0)
	require.True(t, btn.Pressed())
	w.PushDialog(Dialog().Bounds(300, 300, 50, 50))
	w.Tick(0.016)
	assert.False(t, btn.Pressed())
}

func TestButtonDraw(t *testing.T) {
	btn := Button().Bounds(0, 0, 10, 10).Color(colors.Gray)

	var p recordPainter
	btn.Draw(&p, 5, 6)
	btn.PointerEnter()
	btn.Draw(&p, 5, 6)
	btn.Disabled(true)
	btn.Draw(&p, 5, 6)

	require.Len(t, p.colors, 3)
	assert.Equal(t, Rect{5, 6, 10, 10}, p.rects[0])
	assert.Equal(t, colors.Gray, p.colors[0])
	assert.Greater(t, p.colors[1][0], p.colors[0][0])
	assert.Equal(t, colors.Gray, p.colors[2])
}

func TestDialogEscapeCloses(t *testing.T) {
	closed := 0
	w := newTestWindow(Panel(), newClock())
	d1 := Dialog().Size(200, 100)
	d2 := Dialog().Size(100, 50).OnClose(func() { closed++ })

	d1.Open(w)
	d2.Open(w)
	assert.Equal(t, Rect{300, 250, 200, 100}, d1.Node().Rect())
	assert.Equal(t, Rect{350, 275, 100, 50}, d2.Node().Rect())
	assert.False(t, d1.Close())

	w.Key(core.KeyEscape, 1, true, false, 0)
	assert.Equal(t, 1, closed)
	assert.Same(t, d1, w.Gate().TopDialog())

	w.Key(core.KeyEscape, 1, true, false, 0)
	assert.Nil(t, w.Gate().TopDialog())
	assert.Equal(t, 1, closed)
}

func TestMenuKeyboardNavigation(t *testing.T) {
	var ran []string
	w := newTestWindow(Panel(), newClock())
	menu := Menu(
		MenuItem{Label: "Cut", Action: func() { ran = append(ran, "cut") }},
		MenuItem{Label: "Copy", Disabled: true},
		MenuItem{Label: "Paste", Action: func() { ran = append(ran, "paste") }},
	)
	w.ShowContextMenu(menu, 0, 0)

	down := func(k core.Key) { w.Key(k, 0, true, false, 0) }
	down(core.KeyDown)
	assert.Equal(t, 0, menu.Hot())
	down(core.KeyDown)
	assert.Equal(t, 2, menu.Hot())
	down(core.KeyDown)
	assert.Equal(t, 0, menu.Hot())
	down(core.KeyUp)
	assert.Equal(t, 2, menu.Hot())

	down(core.KeyEnter)
	assert.Equal(t, []string{"paste"}, ran)
	assert.Nil(t, w.Gate().ContextMenu())
}

func TestMenuPointerHighlight(t *testing.T) {
	w := newTestWindow(Panel(), newClock())
	menu := Menu(MenuItem{Label: "A"}, MenuItem{Label: "B"}, MenuItem{Label: "C", Disabled: true})
	w.ShowContextMenu(menu, 100, 100)

	w.Move(110, 100+menuRowHeight+5)
	assert.Equal(t, 1, menu.Hot())

	// disabled rows swallow the click without closing the menu
	click(w, core.MouseLeft, 110, 100+2*menuRowHeight+5)
	assert.Same(t, menu, w.Gate().ContextMenu())

	w.Move(500, 500)
	assert.Equal(t, -1, menu.Hot())
}

func TestToastFades(t *testing.T) {
	toast := Toast(time.Second).Bounds(0, 0, 10, 10)
	var p recordPainter

	toast.Tick(0.75)
	toast.Draw(&p, 0, 0)
	require.Len(t, p.colors, 1)
	assert.InDelta(t, 0.5, p.colors[0][3], 1e-6)
}

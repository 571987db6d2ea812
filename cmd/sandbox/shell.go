package main

import (
	"log/slog"
	"time"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/ui"
)

// shell is the demo document surface: a toolbar of buttons, a canvas with
// draggable boxes and transient toasts. Positions are fixed.
type shell struct {
	main    *ui.UIPanel
	toolbar *ui.UIPanel
	canvas  *ui.UIPanel
	win     *ui.Window
}

func newShell() *shell {
	s := &shell{}
	s.toolbar = ui.Panel().Bounds(0, 0, 1280, 48).Color(colors.Slate)
	s.canvas = ui.Panel().Bounds(16, 64, 900, 560).Color(colors.Black.WithAlpha(0.35)).WithCursor(ui.CursorCrosshair)
	s.main = ui.Panel(s.toolbar, s.canvas)

	s.toolbar.Children(
		ui.Button().Bounds(12, 8, 120, 32).
			OnClick(func() { s.openDialog(s.win, 1) }),
		ui.Button().Bounds(144, 8, 120, 32).Color(colors.SteelBlue.Scale(0.8)).
			OnClick(func() { s.notify(colors.Cyan, "single click") }).
			OnDoubleClick(func() { s.notify(colors.Magenta, "double click") }),
		ui.Button().Bounds(276, 8, 120, 32).Color(colors.Green.Scale(0.5)).
			OnClick(func() { s.addBox(40, 40) }).
			OnContextMenu(func(x, y float32) { s.showMenu(x, y) }),
		ui.Button().Bounds(408, 8, 120, 32).Disabled(true),
	)
	for i := range 3 {
		s.addBox(float32(40+i*140), 80)
	}
	return s
}

func (s *shell) attach(w *ui.Window) { s.win = w }

func (s *shell) addBox(x, y float32) {
	palette := []colors.Color{colors.Red, colors.Green, colors.Blue, colors.Yellow, colors.Magenta}
	c := palette[len(s.canvas.Node().Children())%len(palette)].Scale(0.8)
	s.canvas.Node().Add(newDragBox(x, y, c, func(x, y float32) { s.showMenu(x, y) }))
}

func (s *shell) showMenu(x, y float32) {
	if s.win == nil {
		return
	}
	s.win.ShowContextMenu(ui.Menu(
		ui.MenuItem{Label: "Open dialog", Action: func() { s.openDialog(s.win, 1) }},
		ui.MenuItem{Label: "New box", Action: func() { s.addBox(x-s.canvas.Node().Rect().X, y-s.canvas.Node().Rect().Y) }},
		ui.MenuItem{Label: "Notify", Action: func() { s.notify(colors.White, "menu action") }},
		ui.MenuItem{Label: "Unavailable", Disabled: true},
	), x, y)
}

// openDialog opens a modal dialog; each one can open another on top.
func (s *shell) openDialog(w *ui.Window, depth int) {
	if w == nil {
		return
	}
	size := float32(420 - depth*40)
	d := ui.Dialog().Size(size, size*0.6)
	d.Children(
		ui.Button().Bounds(16, size*0.6-48, 96, 32).Color(colors.Red.Scale(0.7)).
			OnClick(func() { d.Close() }),
		ui.Button().Bounds(size-112, size*0.6-48, 96, 32).
			OnClick(func() { s.openDialog(w, depth+1) }).
			Disabled(depth >= 5),
	)
	d.OnClose(func() { slog.Debug("dialog closed", "depth", depth) })
	d.Open(w)
}

// notify shows a toast in the bottom-left corner and logs msg.
func (s *shell) notify(c colors.Color, msg string) {
	slog.Info(msg)
	if s.win == nil {
		return
	}
	_, h := s.win.Size()
	n := len(s.main.Node().Children()) - 2
	t := ui.Toast(2*time.Second).Bounds(16, h-40-float32(n)*28, 240, 20).Color(c.Scale(0.8)).Disabled(true)
	s.main.Node().Add(t)
}

// dragBox follows the pointer while the left button holds capture.
// Escape during a drag puts it back.
type dragBox struct {
	ui.Common[*dragBox]
	grabX, grabY   float32
	startX, startY float32
	token          ui.Token
	dragging       bool
	onMenu         func(x, y float32)
}

func newDragBox(x, y float32, c colors.Color, onMenu func(x, y float32)) *dragBox {
	b := &dragBox{onMenu: onMenu}
	b.Common = ui.NewCommon(b)
	b.Bounds(x, y, 96, 96).Color(c).WithCursor(ui.CursorHand)
	return b
}

func (b *dragBox) PointerDown(ev *ui.PointerEvent) {
	switch ev.Button {
	case core.MouseLeft:
		w := ui.WindowOf(b)
		if w == nil {
			return
		}
		tok, err := w.Capture(b)
		if err != nil {
			return
		}
		r := b.Node().Rect()
		b.token, b.dragging = tok, true
		b.grabX, b.grabY = ev.X, ev.Y
		b.startX, b.startY = r.X, r.Y
		// raise to the top of the canvas
		if p := b.Node().Parent(); p != nil {
			p.Node().Add(b)
		}
		ev.Handled = true
	case core.MouseRight:
		if !ev.Replayed {
			ev.Delay()
			return
		}
		b.onMenu(ev.WindowX, ev.WindowY)
		ev.Handled = true
	}
}

func (b *dragBox) PointerMove(ev *ui.PointerEvent) {
	if !b.dragging {
		return
	}
	n := b.Node()
	r := n.Rect()
	n.SetPos(r.X+ev.X-b.grabX, r.Y+ev.Y-b.grabY)
}

func (b *dragBox) PointerUp(ev *ui.PointerEvent) {
	if ev.Button == core.MouseLeft {
		b.dragging = false
	}
}

func (b *dragBox) KeyDown(ev *ui.KeyEvent) {
	if !b.dragging || ev.Key != core.KeyEscape {
		return
	}
	if w := ui.WindowOf(b); w != nil {
		w.ReleaseCaptureToken(b.token)
	}
	b.dragging = false
	b.Node().SetPos(b.startX, b.startY)
	ev.Handled = true
}

func (b *dragBox) Tick(float64) {
	if !b.dragging {
		return
	}
	if w := ui.WindowOf(b); w == nil || !w.CaptureValid(b.token) {
		b.dragging = false
	}
}

func (b *dragBox) Draw(p ui.Painter, x, y float32) {
	r := b.Node().Rect()
	c := b.Node().Color()
	if b.dragging {
		p.FillRect(x+4, y+4, r.W, r.H, colors.Black.WithAlpha(0.4))
		c = c.Scale(1.25)
	}
	p.FillRect(x, y, r.W, r.H, c)
}

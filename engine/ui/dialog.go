package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

// UIDialog is a modal surface. Escape closes it while it is on top.
type UIDialog struct {
	Common[*UIDialog]
	onClose func()
}

func Dialog(children ...Control) *UIDialog {
	d := &UIDialog{}
	d.Common = NewCommon(d)
	d.base.color = colors.Slate
	d.base.Add(children...)
	return d
}

func (d *UIDialog) OnClose(fn func()) *UIDialog { d.onClose = fn; return d }

// Open pushes d onto w's dialog stack, centered in the window.
func (d *UIDialog) Open(w *Window) {
	ww, wh := w.Size()
	d.base.SetPos((ww-d.base.rect.W)/2, (wh-d.base.rect.H)/2)
	w.PushDialog(d)
}

// Close pops d if it is the top dialog and reports whether it did.
func (d *UIDialog) Close() bool {
	w := WindowOf(d)
	if w == nil || w.Gate().TopDialog() != d {
		return false
	}
	w.PopDialog(d)
	if d.onClose != nil {
		d.onClose()
	}
	return true
}

func (d *UIDialog) KeyDown(ev *KeyEvent) {
	if ev.Key == core.KeyEscape && !ev.Handled && d.Close() {
		ev.Handled = true
	}
}

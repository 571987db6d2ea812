package ui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chewxy/math32"
)

// ErrStackDiscipline is the panic value for dialog push/pop bookkeeping bugs.
var ErrStackDiscipline = errors.New("ui: dialog stack discipline violated")

// dimEpsilon is where a fading overlay snaps to fully transparent.
const dimEpsilon = 1e-3

// Gate decides which part of the tree may receive input: the topmost modal
// dialog, the context menu overlay, or the main surface when neither is
// active. A readiness flag closes the gate for everything.
type Gate struct {
	main    Control
	dialogs []Control
	menu    Control
	ready   bool

	dim                float32
	riseRate, fallRate float32
}

func NewGate(main Control) *Gate {
	return &Gate{main: main, ready: true, riseRate: 6, fallRate: 12}
}

// SetRates sets the per-second dimming rates.
func (g *Gate) SetRates(rise, fall float32) { g.riseRate, g.fallRate = rise, fall }

func (g *Gate) Main() Control { return g.main }

// PushDialog makes d the modal surface.
func (g *Gate) PushDialog(d Control) {
	if d == nil || slices.Contains(g.dialogs, d) {
		panic(fmt.Errorf("%w: push of %T already on the stack", ErrStackDiscipline, d))
	}
	g.dialogs = append(g.dialogs, d)
}

// PopDialog removes d, which must be the topmost dialog.
func (g *Gate) PopDialog(d Control) {
	n := len(g.dialogs)
	if n == 0 {
		panic(fmt.Errorf("%w: pop of %T with an empty stack", ErrStackDiscipline, d))
	}
	if g.dialogs[n-1] != d {
		panic(fmt.Errorf("%w: pop of %T which is not the top dialog", ErrStackDiscipline, d))
	}
	g.dialogs[n-1] = nil
	g.dialogs = g.dialogs[:n-1]
}

// TopDialog returns the active modal dialog, or nil.
func (g *Gate) TopDialog() Control {
	if len(g.dialogs) == 0 {
		return nil
	}
	return g.dialogs[len(g.dialogs)-1]
}

// Dialogs returns the stack bottom first. The slice must not be modified.
func (g *Gate) Dialogs() []Control { return g.dialogs }

func (g *Gate) SetContextMenu(m Control) { g.menu = m }

// ContextMenu returns the context menu while it is shown and visible.
func (g *Gate) ContextMenu() Control {
	if g.menu == nil || !g.menu.Node().Visible() {
		return nil
	}
	return g.menu
}

func (g *Gate) SetReady(ready bool) { g.ready = ready }
func (g *Gate) Ready() bool         { return g.ready }

// Surface returns the control whose subtree currently owns keyboard input
// and reports whether it is the main surface.
func (g *Gate) Surface() (Control, bool) {
	if m := g.ContextMenu(); m != nil {
		return m, false
	}
	if d := g.TopDialog(); d != nil {
		return d, false
	}
	return g.main, true
}

// CanInteract reports whether c may receive pointer or keyboard input.
func (g *Gate) CanInteract(c Control) bool {
	if !g.ready || c == nil {
		return false
	}
	if m := g.ContextMenu(); m != nil && within(c, m) {
		return true
	}
	if d := g.TopDialog(); d != nil {
		return within(c, d)
	}
	if g.ContextMenu() != nil {
		return false
	}
	return within(c, g.main)
}

// ControlsForKeyboard returns the controls that receive keyboard broadcast,
// surface first, and whether application-global key handling should run.
func (g *Gate) ControlsForKeyboard() ([]Control, bool) {
	surface, isMain := g.Surface()
	if !g.ready || surface == nil {
		return nil, isMain
	}
	var out []Control
	var collect func(Control)
	collect = func(c Control) {
		n := c.Node()
		if n.hidden || n.disabled {
			return
		}
		out = append(out, c)
		for _, child := range n.children {
			collect(child)
		}
	}
	collect(surface)
	return out, isMain
}

// Animate advances the dim overlay by dt seconds. It approaches 1 while a
// dialog is open and decays towards 0 otherwise.
func (g *Gate) Animate(dt float32) {
	if len(g.dialogs) > 0 {
		g.dim = 1 - (1-g.dim)*math32.Exp(-g.riseRate*dt)
		return
	}
	g.dim *= math32.Exp(-g.fallRate * dt)
	if g.dim < dimEpsilon {
		g.dim = 0
	}
}

// Dim returns the overlay intensity in [0..1].
func (g *Gate) Dim() float32 { return g.dim }

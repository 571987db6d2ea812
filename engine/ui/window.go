package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/config"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/profiler"
)

// ErrReentrant is the panic value for an input entry point called from
// inside another dispatch.
var ErrReentrant = errors.New("ui: re-entrant dispatch")

// Window routes raw input from the platform window into the control tree.
//
// A press flows through gesture disambiguation, the interaction gate,
// pointer capture and hit-testing before reaching a control. The main
// surface, the dialog stack and the context menu all live under one root
// so a single hit-test respects their z-order.
//
// Window is not safe for concurrent use except for Post.
type Window struct {
	root     *rootSurface
	main     Control
	gate     *Gate
	capture  Capture
	gestures Gestures

	cfg        config.Input
	now        func() time.Time
	log        *slog.Logger
	globalKeys func(*KeyEvent)

	buttons core.ButtonMask
	mods    core.Mod
	px, py  float32

	hovered Control // receives enter/leave
	under   Control // under the pointer, tracked during capture too

	dispatching bool

	mu     sync.Mutex
	posted []func()
}

// rootSurface holds the main surface and the overlays stacked above it.
type rootSurface struct {
	Common[*rootSurface]
	win *Window
}

type Option func(*Window)

// WithConfig sets the gesture and dimming thresholds.
func WithConfig(cfg config.Input) Option { return func(w *Window) { w.cfg = cfg.Validate() } }

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option { return func(w *Window) { w.now = now } }

func WithLogger(l *slog.Logger) Option { return func(w *Window) { w.log = l } }

// WithGlobalKeys installs the handler for key presses that the main
// surface left unhandled.
func WithGlobalKeys(fn func(*KeyEvent)) Option { return func(w *Window) { w.globalKeys = fn } }

// NewWindow builds a window whose main surface is main.
func NewWindow(main Control, opts ...Option) *Window {
	w := &Window{
		main: main,
		gate: NewGate(main),
		cfg:  config.Default(),
		now:  time.Now,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	r := &rootSurface{win: w}
	r.Common = NewCommon(r)
	w.root = r
	r.base.Add(main)
	w.applyConfig(w.cfg)
	return w
}

// WindowOf returns the window c is attached to, or nil.
func WindowOf(c Control) *Window {
	if r, ok := c.Node().Root().(*rootSurface); ok {
		return r.win
	}
	return nil
}

func (w *Window) Gate() *Gate              { return w.gate }
func (w *Window) Main() Control            { return w.main }
func (w *Window) Config() config.Input     { return w.cfg }
func (w *Window) Hovered() Control         { return w.hovered }
func (w *Window) Size() (float32, float32) { return w.root.base.rect.W, w.root.base.rect.H }

// SetConfig applies new thresholds; it takes effect for the next event.
func (w *Window) SetConfig(cfg config.Input) { w.applyConfig(cfg.Validate()) }

func (w *Window) applyConfig(cfg config.Input) {
	w.cfg = cfg
	w.gestures.SetConfig(cfg)
	w.gate.SetRates(cfg.DimRiseRate, cfg.DimFallRate)
}

// ControlAt hit-tests in window coordinates.
func (w *Window) ControlAt(x, y float32) (Control, float32, float32) {
	return w.root.base.ControlAt(x, y)
}

// Post queues fn to run at the start of the next Tick. It is the only
// method safe to call from other goroutines, and the way background work
// hands results back to the tree.
func (w *Window) Post(fn func()) {
	w.mu.Lock()
	w.posted = append(w.posted, fn)
	w.mu.Unlock()
}

func (w *Window) enter(name string) func() {
	if w.dispatching {
		panic(fmt.Errorf("%w: %s", ErrReentrant, name))
	}
	w.dispatching = true
	end := profiler.Start("ui.Window." + name)
	return func() {
		w.dispatching = false
		end()
	}
}

// HandleEvent feeds one platform event into the pipeline.
func (w *Window) HandleEvent(ev core.Event) {
	switch e := ev.(type) {
	case core.EventMouseButton:
		if e.Down {
			w.Press(e.Button, float32(e.X), float32(e.Y), e.Mods)
		} else {
			w.Release(e.Button, float32(e.X), float32(e.Y), e.Mods)
		}
	case core.EventMouseMove:
		w.Move(float32(e.X), float32(e.Y))
	case core.EventScroll:
		w.Scroll(float32(e.Xoff), float32(e.Yoff), float32(e.X), float32(e.Y))
	case core.EventKey:
		w.Key(e.Key, e.Scancode, e.Down, e.Repeat, e.Mods)
	case core.EventChar:
		w.Char(e.Rune, e.Mods)
	case core.EventResize:
		w.Resize(float32(e.W), float32(e.H))
	}
}

// Resize sets the window size; the main surface fills the window.
func (w *Window) Resize(width, height float32) {
	w.root.base.SetSize(width, height)
	w.main.Node().SetRect(Rect{0, 0, width, height})
}

// ---------- pointer ----------

func (w *Window) Press(button core.MouseButton, x, y float32, mods core.Mod) {
	defer w.enter("Press")()
	now := w.now()
	w.buttons |= button.Mask()
	w.mods = mods
	w.px, w.py = x, y
	w.dropStale()

	if w.gestures.Cancel() {
		w.log.Debug("delayed click cancelled by press", "button", button)
	}
	w.capture.notePress(button)

	if c := w.capture.Captured(); c != nil {
		c.PointerDown(w.pointerEvent(c, button, x, y, now))
		return
	}

	target, lx, ly := w.ControlAt(x, y)
	if m := w.gate.ContextMenu(); m != nil && !within(target, m) {
		w.log.Debug("press outside context menu", "button", button)
		w.gestures.Reset()
		w.hideContextMenu()
		return
	}
	if target == nil || !w.usable(target) {
		w.gestures.Reset()
		if target != nil {
			w.log.Debug("press dropped by gate", "target", fmt.Sprintf("%T", target))
		}
		return
	}

	ev := w.newEvent(button, x, y, lx, ly, now)
	if w.gestures.Press(target, button, x, y, now) {
		target.DoubleClick(ev)
	} else {
		target.PointerDown(ev)
	}
	if ev.Delayed && button == core.MouseRight && WindowOf(target) == w {
		// a delayed press never arms a double-click
		w.gestures.Reset()
		w.gestures.Defer(target, *ev, now)
		w.log.Debug("right click delayed", "target", fmt.Sprintf("%T", target))
	}
}

func (w *Window) Release(button core.MouseButton, x, y float32, mods core.Mod) {
	defer w.enter("Release")()
	now := w.now()
	w.buttons &^= button.Mask()
	w.mods = mods
	w.px, w.py = x, y
	w.dropStale()

	var delayedTarget Control
	if p := w.gestures.Pending(); p != nil && button == core.MouseRight {
		over := w.capture.Captured()
		if over == nil {
			over, _, _ = w.ControlAt(x, y)
		}
		if over == p {
			delayedTarget = w.emitDelayed("release")
		} else {
			w.gestures.Cancel()
			w.log.Debug("delayed click cancelled by release elsewhere", "target", fmt.Sprintf("%T", p))
		}
	}

	if c := w.capture.Captured(); c != nil {
		ev := w.pointerEvent(c, button, x, y, now)
		c.PointerUp(ev)
		if w.capture.noteRelease(button) {
			w.log.Debug("capture ended", "button", button)
			w.refreshHover()
		}
		return
	}
	w.capture.noteRelease(button)

	if delayedTarget != nil {
		if w.attached(delayedTarget) {
			delayedTarget.PointerUp(w.pointerEvent(delayedTarget, button, x, y, now))
		}
		return
	}

	target, lx, ly := w.ControlAt(x, y)
	if target == nil || !w.usable(target) {
		return
	}
	target.PointerUp(w.newEvent(button, x, y, lx, ly, now))
}

func (w *Window) Move(x, y float32) {
	defer w.enter("Move")()
	now := w.now()
	w.px, w.py = x, y
	w.dropStale()

	suppress := w.gestures.Move(x, y)
	w.updateHover(x, y)

	if c := w.capture.Captured(); c != nil {
		if !suppress {
			c.PointerMove(w.pointerEvent(c, 0, x, y, now))
		}
		return
	}
	if suppress || w.hovered == nil {
		return
	}
	w.hovered.PointerMove(w.pointerEvent(w.hovered, 0, x, y, now))
}

func (w *Window) Scroll(dx, dy, x, y float32) {
	defer w.enter("Scroll")()
	now := w.now()
	w.dropStale()

	target := w.capture.Captured()
	if target == nil {
		hit, _, _ := w.ControlAt(x, y)
		if hit == nil || !w.usable(hit) {
			return
		}
		target = hit
	}
	if dy != 0 {
		ev := w.pointerEvent(target, 0, x, y, now)
		ev.WheelY = dy
		target.Wheel(ev)
	}
	if dx != 0 {
		ev := w.pointerEvent(target, 0, x, y, now)
		ev.WheelX = dx
		target.HorizontalWheel(ev)
	}
}

// ---------- keyboard ----------

// Key broadcasts a key event to every control of the active surface.
func (w *Window) Key(key core.Key, scancode int, down, repeat bool, mods core.Mod) {
	defer w.enter("Key")()
	w.mods = mods

	if down && key == core.KeyEscape && w.gate.ContextMenu() != nil {
		w.hideContextMenu()
		return
	}

	ev := &KeyEvent{Key: key, Scancode: scancode, Mods: mods, Repeat: repeat}
	controls, isMain := w.gate.ControlsForKeyboard()
	for _, c := range controls {
		// a handler may have closed the surface mid-broadcast
		if !w.gate.CanInteract(c) {
			continue
		}
		if down {
			c.KeyDown(ev)
		} else {
			c.KeyUp(ev)
		}
	}
	if down && isMain && !ev.Handled && w.globalKeys != nil {
		w.globalKeys(ev)
	}
}

func (w *Window) Char(r rune, mods core.Mod) {
	defer w.enter("Char")()
	ev := &CharEvent{Rune: r, Mods: mods}
	controls, _ := w.gate.ControlsForKeyboard()
	for _, c := range controls {
		if w.gate.CanInteract(c) {
			c.Char(ev)
		}
	}
}

// ---------- frame ----------

// Tick runs posted callbacks, resolves a due delayed click, advances the
// dim overlay and delivers dt to every control.
func (w *Window) Tick(dt float64) {
	w.runPosted()

	defer w.enter("Tick")()
	w.dropStale()
	if w.gestures.Due(w.now()) {
		w.emitDelayed("timeout")
	}
	w.gate.Animate(float32(dt))

	var all []Control
	Walk(w.root, func(c Control) { all = append(all, c) })
	for _, c := range all {
		c.Tick(dt)
	}
}

func (w *Window) runPosted() {
	w.mu.Lock()
	posted := w.posted
	w.posted = nil
	w.mu.Unlock()
	for _, fn := range posted {
		fn()
	}
}

// ---------- capture ----------

// Capture routes pointer events to c until the button held by the
// preceding press is released.
func (w *Window) Capture(c Control) (Token, error) {
	t, err := w.capture.Capture(c)
	if err != nil {
		return 0, err
	}
	w.log.Debug("capture", "control", fmt.Sprintf("%T", c), "button", w.capture.Button(), "token", t)
	return t, nil
}

func (w *Window) ReleaseCapture() {
	if w.capture.Captured() != nil {
		w.capture.Release()
		w.gestures.Cancel()
		w.refreshHover()
	}
}

// ReleaseCaptureToken releases capture only if t is still current.
func (w *Window) ReleaseCaptureToken(t Token) bool {
	if !w.capture.ReleaseToken(t) {
		return false
	}
	w.gestures.Cancel()
	w.refreshHover()
	return true
}

func (w *Window) CaptureValid(t Token) bool { return w.capture.Valid(t) }
func (w *Window) Captured() Control         { return w.capture.Captured() }

// ---------- modal surfaces ----------

// PushDialog attaches d above the current surfaces and makes it modal.
func (w *Window) PushDialog(d Control) {
	w.gate.PushDialog(d)
	w.root.base.Add(d)
	if m := w.gate.ContextMenu(); m != nil {
		w.root.base.Add(m)
	}
	w.cancelInteraction()
	w.clearHover()
	w.log.Debug("dialog pushed", "dialog", fmt.Sprintf("%T", d), "depth", len(w.gate.Dialogs()))
}

// PopDialog detaches d, which must be the topmost dialog.
func (w *Window) PopDialog(d Control) {
	w.gate.PopDialog(d)
	w.root.base.Remove(d)
	w.gestures.Forget(d)
	w.dropStale()
	w.refreshHover()
	w.log.Debug("dialog popped", "dialog", fmt.Sprintf("%T", d), "depth", len(w.gate.Dialogs()))
}

// ShowContextMenu shows m with its top-left corner at (x, y), kept inside the window.
func (w *Window) ShowContextMenu(m Control, x, y float32) {
	if old := w.gate.ContextMenu(); old != nil && old != m {
		w.hideContextMenu()
	}
	n := m.Node()
	ww, wh := w.Size()
	x = clampf(x, 0, ww-n.rect.W)
	y = clampf(y, 0, wh-n.rect.H)
	n.SetPos(x, y)
	n.SetVisible(true)
	w.root.base.Add(m)
	w.gate.SetContextMenu(m)
	w.refreshHover()
}

func (w *Window) HideContextMenu() { w.hideContextMenu() }

func (w *Window) hideContextMenu() {
	m := w.gate.menu
	if m == nil {
		return
	}
	w.gate.SetContextMenu(nil)
	w.root.base.Remove(m)
	w.gestures.Forget(m)
	w.dropStale()
	w.refreshHover()
}

// SetReady opens or closes the global readiness gate.
func (w *Window) SetReady(ready bool) {
	w.gate.SetReady(ready)
	if !ready {
		w.cancelInteraction()
		w.clearHover()
	}
}

// ---------- hover & cursor ----------

// Cursor returns the pointer shape for the control under the pointer.
func (w *Window) Cursor() Cursor {
	if w.under != nil {
		return w.under.Cursor()
	}
	if c := w.capture.Captured(); c != nil {
		return c.Cursor()
	}
	return CursorArrow
}

func (w *Window) updateHover(x, y float32) {
	hit, _, _ := w.ControlAt(x, y)
	if hit != nil && !w.usable(hit) {
		hit = nil
	}
	w.under = hit
	if w.capture.Captured() != nil || hit == w.hovered {
		return
	}
	if w.hovered != nil {
		w.hovered.PointerLeave()
	}
	w.hovered = hit
	if hit != nil {
		hit.PointerEnter()
	}
}

func (w *Window) refreshHover() { w.updateHover(w.px, w.py) }

func (w *Window) clearHover() {
	if w.hovered != nil {
		w.hovered.PointerLeave()
	}
	w.hovered = nil
	w.under = nil
}

// ---------- internals ----------

func (w *Window) usable(c Control) bool {
	return c.Node().Usable() && w.gate.CanInteract(c)
}

func (w *Window) attached(c Control) bool {
	return c != nil && c.Node().Root() == Control(w.root)
}

// cancelInteraction drops capture and any pending gesture.
func (w *Window) cancelInteraction() {
	w.capture.Release()
	w.gestures.Cancel()
	w.gestures.Reset()
}

// dropStale forgets controls that left the tree since the last event.
func (w *Window) dropStale() {
	if p := w.gestures.Pending(); p != nil && !w.attached(p) {
		w.gestures.Cancel()
		w.log.Debug("stale delayed click discarded")
	}
	if c := w.capture.Captured(); c != nil && !w.attached(c) {
		w.capture.Release()
		w.log.Debug("capture released, control detached")
	}
	if w.hovered != nil && !w.attached(w.hovered) {
		w.hovered = nil
	}
	if w.under != nil && !w.attached(w.under) {
		w.under = nil
	}
}

// emitDelayed replays the held right-button press as a real pointer-down
// and returns its target.
func (w *Window) emitDelayed(reason string) Control {
	target, ev, ok := w.gestures.Take()
	if !ok || !w.attached(target) {
		return nil
	}
	ev.Delayed, ev.Handled, ev.Replayed = false, false, true
	w.log.Debug("delayed click emitted", "reason", reason, "target", fmt.Sprintf("%T", target))
	target.PointerDown(&ev)
	return target
}

func (w *Window) newEvent(button core.MouseButton, x, y, lx, ly float32, now time.Time) *PointerEvent {
	return &PointerEvent{
		Button:  button,
		Buttons: w.buttons,
		Mods:    w.mods,
		X:       lx,
		Y:       ly,
		WindowX: x,
		WindowY: y,
		Time:    now,
	}
}

// pointerEvent builds an event in c's local space, bypassing hit-testing.
func (w *Window) pointerEvent(c Control, button core.MouseButton, x, y float32, now time.Time) *PointerEvent {
	lx, ly := c.Node().ToLocal(x, y)
	return w.newEvent(button, x, y, lx, ly, now)
}

// ---------- drawing ----------

// Draw paints the main surface, the dim overlay beneath the top dialog,
// the dialog stack and the context menu, in that order.
func (w *Window) Draw(p Painter) {
	ww, wh := w.Size()
	overlay := colors.Black.WithAlpha(w.gate.Dim() * w.cfg.DimMaxAlpha)

	DrawTree(p, w.main, 0, 0)
	dialogs := w.gate.Dialogs()
	if len(dialogs) == 0 && overlay[3] > 0 {
		p.FillRect(0, 0, ww, wh, overlay)
	}
	for i, d := range dialogs {
		if i == len(dialogs)-1 && overlay[3] > 0 {
			p.FillRect(0, 0, ww, wh, overlay)
		}
		DrawTree(p, d, 0, 0)
	}
	if m := w.gate.ContextMenu(); m != nil {
		DrawTree(p, m, 0, 0)
	}
}

func clampf(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

package ui

import (
	"time"

	"github.com/hubastard/canopy/engine/colors"
)

// UIToast is a transient notice that detaches itself once its time is up.
type UIToast struct {
	Common[*UIToast]
	remaining float64
}

func Toast(d time.Duration) *UIToast {
	t := &UIToast{remaining: d.Seconds()}
	t.Common = NewCommon(t)
	t.base.color = colors.Yellow.Scale(0.8)
	return t
}

func (t *UIToast) Tick(dt float64) {
	t.remaining -= dt
	if t.remaining <= 0 {
		t.base.Detach()
	}
}

// Draw fades the toast out over its last half second.
func (t *UIToast) Draw(p Painter, x, y float32) {
	c := t.base.color
	if t.remaining < 0.5 {
		c[3] *= float32(max(t.remaining, 0) / 0.5)
	}
	p.FillRect(x, y, t.base.rect.W, t.base.rect.H, c)
}

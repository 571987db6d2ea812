package main

import (
	"time"

	"github.com/hubastard/canopy/engine/colors"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/ui"
)

// debugOverlay draws frame statistics as bars along the right edge.
// Rows: frame time against a 33 ms scale, quads, draw calls, heap, goroutines.
type debugOverlay struct {
	frameMs float64
	heapMB  float64
	gorout  int
	frames  int
	last    time.Time
}

// frame samples the time since the previous frame.
func (d *debugOverlay) frame(now time.Time) {
	if !d.last.IsZero() {
		ms := float64(now.Sub(d.last).Microseconds()) / 1000
		d.frameMs = d.frameMs*0.9 + ms*0.1
	}
	d.last = now
	d.frames++
	if d.frames%60 == 1 {
		d.heapMB = float64(profiler.MemoryUsage()) / (1 << 20)
		d.gorout = profiler.NumGoroutine()
	}
}

func (d *debugOverlay) draw(p ui.Painter, st glbackend.Statistics) {
	const x, y, w, h = 940, 64, 300, 14
	bar := func(row int, frac float64, c colors.Color) {
		yy := float32(y + row*(h+6))
		p.FillRect(x, yy, w, h, colors.Black.WithAlpha(0.5))
		p.FillRect(x, yy, w*float32(min(frac, 1)), h, c)
	}
	frame := colors.Green
	if d.frameMs > 16.7 {
		frame = colors.Red
	}
	bar(0, d.frameMs/33.3, frame)
	bar(1, float64(st.QuadCount)/500, colors.Cyan)
	bar(2, float64(st.DrawCalls)/10, colors.Yellow)
	bar(3, d.heapMB/64, colors.Magenta)
	bar(4, float64(d.gorout)/32, colors.White)
}

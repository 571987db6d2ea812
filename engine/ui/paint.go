package ui

import "github.com/hubastard/canopy/engine/colors"

// Painter is the drawing surface controls render onto. Coordinates are in
// window space.
type Painter interface {
	FillRect(x, y, w, h float32, c colors.Color)
}

// DrawTree draws c and its visible descendants back to front. (ox, oy) is
// the window position of c's parent.
func DrawTree(p Painter, c Control, ox, oy float32) {
	n := c.Node()
	if n.hidden {
		return
	}
	x, y := ox+n.rect.X, oy+n.rect.Y
	c.Draw(p, x, y)
	for _, child := range n.children {
		DrawTree(p, child, x, y)
	}
}

package ui

// ControlAt returns the topmost visible descendant of b covering (x, y),
// given in b's local space, and the point translated into that control's
// local space. A child only receives points inside its own rectangle, so
// nothing a container holds can be hit outside the container's bounds.
// When the point is over a container's own background the container itself
// is returned. It returns nil over empty background.
func (b *Base) ControlAt(x, y float32) (Control, float32, float32) {
	for i := len(b.children) - 1; i >= 0; i-- {
		c := b.children[i]
		n := c.Node()
		if n.hidden || !n.rect.Contains(x, y) {
			continue
		}
		lx, ly := x-n.rect.X, y-n.rect.Y
		if hit, hx, hy := n.ControlAt(lx, ly); hit != nil {
			return hit, hx, hy
		}
		return c, lx, ly
	}
	return nil, 0, 0
}

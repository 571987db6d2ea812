package colors

type Color [4]float32

var (
	White     = Color{1, 1, 1, 1}
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Magenta   = Color{1, 0, 1, 1}
	Cyan      = Color{0, 1, 1, 1}
	Yellow    = Color{1, 1, 0, 1}
	Gray      = Color{0.5, 0.5, 0.5, 1}
	DarkGray  = Color{0.08, 0.10, 0.12, 1}
	Slate     = Color{0.18, 0.21, 0.25, 1}
	SteelBlue = Color{0.27, 0.51, 0.71, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scale multiplies the RGB channels by f, leaving alpha untouched.
func (c Color) Scale(f float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = clamp01(c[i] * f)
	}
	return c
}

// Lerp blends c towards o by t in [0..1].
func (c Color) Lerp(o Color, t float32) Color {
	t = clamp01(t)
	for i := range c {
		c[i] += (o[i] - c[i]) * t
	}
	return c
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

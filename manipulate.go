package tint

// Lighten returns a copy with HSL lightness increased by pct percentage
// points, clamped to [0, 100]. Alpha and the alpha-math flag carry over.
// The HSL round trip may shift a channel by at most 1 due to rounding.
func (c Color) Lighten(pct float64) Color { return c.adjustHSL(0, pct) }

// Darken returns a copy with HSL lightness decreased by pct percentage
// points, clamped at 0.
func (c Color) Darken(pct float64) Color { return c.adjustHSL(0, -pct) }

// Saturate returns a copy with HSL saturation increased by pct
// percentage points, clamped to [0, 100].
func (c Color) Saturate(pct float64) Color { return c.adjustHSL(pct, 0) }

// Desaturate returns a copy with HSL saturation decreased by pct
// percentage points, clamped at 0.
func (c Color) Desaturate(pct float64) Color { return c.adjustHSL(-pct, 0) }

// adjustHSL round-trips through HSL, shifting saturation and lightness
// by percentage-point deltas. The HSL constructor clamps both to
// [0, 100]; alpha and the alpha-math flag are restored afterwards.
func (c Color) adjustHSL(satDelta, lightDelta float64) Color {
	h, s, l := c.HSL()
	n := HSL(h, s+satDelta, l+lightDelta)
	n.a = c.a
	n.alphaMath = c.alphaMath
	return n
}

// Spin returns a copy with the HSL hue rotated by deg degrees, wrapping
// modulo 360 in either direction. Saturation and lightness are
// unchanged.
func (c Color) Spin(deg float64) Color {
	h, s, l := c.HSL()
	n := HSL(h+deg, s, l)
	n.a = c.a
	n.alphaMath = c.alphaMath
	return n
}

// Invert returns the color with each RGB channel replaced by 255−value.
// Alpha is inverted only when alpha math is enabled, otherwise it is
// preserved unchanged.
func (c Color) Invert() Color {
	n := Color{r: 255 - c.r, g: 255 - c.g, b: 255 - c.b, a: c.a, alphaMath: c.alphaMath}
	if c.alphaMath {
		n.a = 255 - c.a
	}
	return n
}

// Grayscale returns the ITU-R BT.601 weighted gray of the color:
// 0.299 R + 0.587 G + 0.114 B applied to all three channels.
func (c Color) Grayscale() Color {
	v := round255(0.299*float64(c.r) + 0.587*float64(c.g) + 0.114*float64(c.b))
	return Color{r: v, g: v, b: v, a: c.a, alphaMath: c.alphaMath}
}

// Lerp linearly interpolates toward other: t=0 returns the receiver, t=1
// returns other, intermediate values blend every channel including
// alpha. t is clamped to [0, 1]. The result keeps the receiver's
// alpha-math flag.
func (c Color) Lerp(other Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		r:         round255(float64(c.r) + (float64(other.r)-float64(c.r))*t),
		g:         round255(float64(c.g) + (float64(other.g)-float64(c.g))*t),
		b:         round255(float64(c.b) + (float64(other.b)-float64(c.b))*t),
		a:         round255(float64(c.a) + (float64(other.a)-float64(c.a))*t),
		alphaMath: c.alphaMath,
	}
}

// WithAlpha returns a copy with the alpha channel set (clamped to
// [0, 255]) and alpha math enabled.
func (c Color) WithAlpha(a int) Color {
	return Color{r: c.r, g: c.g, b: c.b, a: clamp255(a), alphaMath: true}
}

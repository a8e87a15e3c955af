package tint

import "image/color"

// Color is an immutable color value with 8-bit RGBA channels.
// Every construction form normalizes to this canonical representation;
// manipulations and arithmetic return new values and never mutate the
// receiver. The zero value is transparent black.
type Color struct {
	r, g, b, a uint8

	// alphaMath controls whether the alpha channel participates in
	// arithmetic and Invert. Explicit-alpha construction forms (RGBA,
	// RGBAF, 4- and 8-digit hex, WithAlpha, FromColor) enable it;
	// SetAlphaMath toggles it afterwards.
	alphaMath bool
}

// RGB creates an opaque color from integer channels.
// Out-of-range values are clamped to [0, 255].
func RGB(r, g, b int) Color {
	return Color{r: clamp255(r), g: clamp255(g), b: clamp255(b), a: 255}
}

// RGBA creates a color from integer channels with explicit alpha.
// Out-of-range values are clamped to [0, 255]. Alpha math is enabled.
func RGBA(r, g, b, a int) Color {
	return Color{r: clamp255(r), g: clamp255(g), b: clamp255(b), a: clamp255(a), alphaMath: true}
}

// RGBF creates an opaque color from decimal channels in [0, 1].
// Each channel is scaled by 255 and rounded to the nearest integer;
// out-of-range values are clamped.
func RGBF(r, g, b float64) Color {
	return Color{r: round255(r * 255), g: round255(g * 255), b: round255(b * 255), a: 255}
}

// RGBAF creates a color from decimal channels in [0, 1] with explicit
// alpha. Alpha math is enabled.
func RGBAF(r, g, b, a float64) Color {
	return Color{
		r: round255(r * 255), g: round255(g * 255), b: round255(b * 255),
		a: round255(a * 255), alphaMath: true,
	}
}

// FromColor converts a standard color.Color to a Color, undoing alpha
// premultiplication. The source carries explicit alpha, so alpha math is
// enabled on the result.
func FromColor(src color.Color) Color {
	n := color.NRGBAModel.Convert(src).(color.NRGBA)
	return Color{r: n.R, g: n.G, b: n.B, a: n.A, alphaMath: true}
}

// Model converts any color.Color to a Color.
var Model color.Model = color.ModelFunc(func(src color.Color) color.Color {
	if c, ok := src.(Color); ok {
		return c
	}
	return FromColor(src)
})

// Red returns the red channel in [0, 255].
func (c Color) Red() uint8 { return c.r }

// Green returns the green channel in [0, 255].
func (c Color) Green() uint8 { return c.g }

// Blue returns the blue channel in [0, 255].
func (c Color) Blue() uint8 { return c.b }

// Alpha returns the alpha channel in [0, 255]; 255 is fully opaque.
func (c Color) Alpha() uint8 { return c.a }

// AlphaMath reports whether the alpha channel participates in arithmetic
// and Invert.
func (c Color) AlphaMath() bool { return c.alphaMath }

// SetAlphaMath toggles alpha participation in arithmetic and Invert.
// This is the one mutating method on Color. The flag is a plain field:
// toggling it on a value shared between goroutines is the caller's
// responsibility to synchronize.
func (c *Color) SetAlphaMath(on bool) { c.alphaMath = on }

// RGBF returns the channels as decimals in [0, 1].
func (c Color) RGBF() (r, g, b float64) {
	return float64(c.r) / 255, float64(c.g) / 255, float64(c.b) / 255
}

// RGBAF returns the channels including alpha as decimals in [0, 1].
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.r) / 255, float64(c.g) / 255, float64(c.b) / 255, float64(c.a) / 255
}

// RGBA implements the color.Color interface, returning
// alpha-premultiplied 16-bit channels with the same semantics as
// color.NRGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r)
	r |= r << 8
	r *= uint32(c.a)
	r /= 0xff
	g = uint32(c.g)
	g |= g << 8
	g *= uint32(c.a)
	g /= 0xff
	b = uint32(c.b)
	b |= b << 8
	b *= uint32(c.a)
	b /= 0xff
	a = uint32(c.a)
	a |= a << 8
	return
}

// NRGBA returns the color as a non-premultiplied standard library value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: c.a}
}

// clamp255 restricts an integer channel value to [0, 255].
func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// round255 clamps a float channel value to [0, 255] and rounds to the
// nearest integer.
func round255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// clampPct restricts a percentage to [0, 100].
func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

package tint

import "github.com/gogpu/tint/internal/model"

// HSL creates an opaque color from hue, saturation, and lightness.
// Hue is in degrees and wraps modulo 360 (negative values wrap
// backwards); saturation and lightness are percentages clamped to
// [0, 100].
func HSL(h, s, l float64) Color {
	r, g, b := model.HSLToRGB(h, clampPct(s)/100, clampPct(l)/100)
	return RGBF(r, g, b)
}

// HSL returns hue in degrees [0,360) and saturation/lightness as
// percentages in [0, 100]. The percentage scale is deliberate: it
// matches the constructor and differs from the fractional [0,1] scale
// used by RGBF and CMYK.
func (c Color) HSL() (h, s, l float64) {
	h, s, l = model.RGBToHSL(c.RGBF())
	return h, s * 100, l * 100
}

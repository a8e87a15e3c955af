package tint

import "github.com/gogpu/tint/internal/model"

// HSV creates an opaque color from hue, saturation, and value. Hue is in
// degrees and wraps modulo 360; saturation and value are percentages
// clamped to [0, 100].
func HSV(h, s, v float64) Color {
	r, g, b := model.HSVToRGB(h, clampPct(s)/100, clampPct(v)/100)
	return RGBF(r, g, b)
}

// HSV returns hue in degrees [0,360) and saturation/value as percentages
// in [0, 100], on the same percentage scale as HSL.
func (c Color) HSV() (h, s, v float64) {
	h, s, v = model.RGBToHSV(c.RGBF())
	return h, s * 100, v * 100
}

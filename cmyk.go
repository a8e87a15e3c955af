package tint

import "github.com/gogpu/tint/internal/model"

// CMYK creates an opaque color from cyan, magenta, yellow, and key
// fractions in [0, 1]; out-of-range values are clamped. Each RGB channel
// is 255×(1−component)×(1−key), rounded to nearest.
func CMYK(c, m, y, k float64) Color {
	r, g, b := model.CMYKToRGB(model.Clamp01(c), model.Clamp01(m), model.Clamp01(y), model.Clamp01(k))
	return RGBF(r, g, b)
}

// CMYK returns the cyan, magenta, yellow, and key fractions in [0, 1].
// Pure black reports (0, 0, 0, 1) with no division-by-zero artifact.
func (c Color) CMYK() (cy, m, y, k float64) {
	r, g, b := c.RGBF()
	return model.RGBToCMYK(r, g, b)
}

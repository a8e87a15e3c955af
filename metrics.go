package tint

import "github.com/gogpu/tint/internal/model"

// Luminance returns the WCAG relative luminance in [0, 1]: the Rec. 709
// weighted sum of the linearized sRGB channels. Alpha is ignored.
func (c Color) Luminance() float64 {
	return model.Luminance(c.RGBF())
}

// IsLight reports whether the relative luminance is at least 0.5.
func (c Color) IsLight() bool { return c.Luminance() >= 0.5 }

// IsDark reports whether the relative luminance is below 0.5.
func (c Color) IsDark() bool { return !c.IsLight() }

// Contrast returns the WCAG contrast ratio between c and o, in [1, 21].
// The ratio is symmetric in its operands.
func (c Color) Contrast(o Color) float64 {
	l1, l2 := c.Luminance(), o.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

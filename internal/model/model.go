// Package model implements the color model conversion math for tint.
//
// All functions operate on fractional RGB channels in [0,1] and hue in
// degrees. Scaling to the 8-bit channel range and to the percentage API
// scale happens in the root package; keeping the math fractional avoids
// compounding rounding errors across round trips.
package model

import "math"

// Clamp01 restricts a value to the [0,1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeHue wraps a hue angle into [0,360). Negative angles wrap
// backwards, so NormalizeHue(-120) = 240.
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

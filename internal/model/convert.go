package model

import "math"

// HSLToRGB converts hue/saturation/lightness to RGB using the standard
// hue-sector algorithm. Hue is in degrees (any value, wrapped modulo 360),
// saturation and lightness are fractions in [0,1].
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	h = NormalizeHue(h) / 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}

// RGBToHSL converts RGB fractions to hue in degrees [0,360) and
// saturation/lightness fractions in [0,1]. Achromatic colors (all
// channels equal) report hue 0 and saturation 0.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return h, s, l
}

// HSVToRGB converts hue/saturation/value to RGB. Hue is in degrees (any
// value, wrapped modulo 360), saturation and value are fractions in [0,1].
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	hp := NormalizeHue(h) / 60

	c := v * s
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := v - c

	switch int(hp) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}

// RGBToHSV converts RGB fractions to hue in degrees [0,360) and
// saturation/value fractions in [0,1]. Black reports saturation 0;
// achromatic colors report hue 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	v = max
	if max == 0 {
		return 0, 0, 0
	}
	d := max - min
	s = d / max
	if d == 0 {
		return 0, 0, v
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return h, s, v
}

// CMYKToRGB converts cyan/magenta/yellow/key fractions in [0,1] to RGB
// fractions: each channel is (1-component)*(1-key).
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	return (1 - c) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
}

// RGBToCMYK converts RGB fractions to CMYK fractions. Pure black yields
// (0,0,0,1) directly so the key-division below never divides by zero.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	k = 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return 0, 0, 0, 1
	}
	c = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return c, m, y, k
}

// SRGBToLinear converts an sRGB component to linear light (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Luminance computes WCAG relative luminance from sRGB fractions:
// the Rec. 709 weighted sum of the linearized channels. Range [0,1].
func Luminance(r, g, b float64) float64 {
	return 0.2126*SRGBToLinear(r) + 0.7152*SRGBToLinear(g) + 0.0722*SRGBToLinear(b)
}

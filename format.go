package tint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String returns the default textual rendering: the 6-digit uppercase
// hex form. Use Format for any other rendering.
func (c Color) String() string { return c.Hex() }

// Format renders the color in the named format. Supported names:
//
//	hex, hex3, hex4, hex8, rgb, rgba, rgbd, rgbad, cmyk, hsl, hsv
//
// Names are case-insensitive. Any other name fails with
// ErrUnsupportedFormat. Every rendering parses back through Parse,
// though the hex3/hex4 forms are lossy approximations.
func (c Color) Format(format string) (string, error) {
	switch strings.ToLower(format) {
	case "hex":
		return c.Hex(), nil
	case "hex3":
		return c.Hex3(), nil
	case "hex4":
		return c.Hex4(), nil
	case "hex8":
		return c.Hex8(), nil
	case "rgb":
		return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b), nil
	case "rgba":
		return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.r, c.g, c.b, c.a), nil
	case "rgbd":
		r, g, b := c.RGBF()
		return fmt.Sprintf("rgbd(%s, %s, %s)", fmtNum(r, 6), fmtNum(g, 6), fmtNum(b, 6)), nil
	case "rgbad":
		r, g, b, a := c.RGBAF()
		return fmt.Sprintf("rgbad(%s, %s, %s, %s)", fmtNum(r, 6), fmtNum(g, 6), fmtNum(b, 6), fmtNum(a, 6)), nil
	case "cmyk":
		cy, m, y, k := c.CMYK()
		return fmt.Sprintf("cmyk(%s, %s, %s, %s)", fmtNum(cy, 6), fmtNum(m, 6), fmtNum(y, 6), fmtNum(k, 6)), nil
	case "hsl":
		h, s, l := c.HSL()
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", fmtNum(h, 2), fmtNum(s, 2), fmtNum(l, 2)), nil
	case "hsv":
		h, s, v := c.HSV()
		return fmt.Sprintf("hsv(%s, %s%%, %s%%)", fmtNum(h, 2), fmtNum(s, 2), fmtNum(v, 2)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// fmtNum renders a float rounded to the given number of decimal places,
// without trailing zeros.
func fmtNum(v float64, places int) string {
	pow := math.Pow(10, float64(places))
	return strconv.FormatFloat(math.Round(v*pow)/pow, 'f', -1, 64)
}

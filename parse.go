package tint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse creates a color from any supported textual form:
//
//	#1CE, 1CE, #11CCEE, 11CCEEFF    hex, leading '#' optional
//	rgb(255, 0, 0)                  integer channels
//	rgba(255, 0, 0, 128)            integer channels with alpha
//	rgbd(1, 0, 0)                   decimal channels in [0,1]
//	rgbad(1, 0, 0, 0.5)             decimal channels with alpha
//	cmyk(0, 1, 1, 0)                fractions in [0,1]
//	hsl(0, 100%, 50%)               degrees and percentages, '%' optional
//	hsv(0, 100%, 100%)
//	red, SlateGray                  SVG color names, case-insensitive
//
// Forms with explicit alpha (rgba, rgbad, 4- and 8-digit hex) enable
// alpha math on the result. Unrecognized input fails with
// ErrInvalidFormat.
func Parse(s string) (Color, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}

	if in[0] == '#' {
		return Hex(in)
	}

	if open := strings.IndexByte(in, '('); open > 0 && strings.HasSuffix(in, ")") {
		return parseFunc(strings.ToLower(strings.TrimSpace(in[:open])), in[open+1:len(in)-1])
	}

	if c, err := Hex(in); err == nil {
		return c, nil
	}
	if c, err := FromName(in); err == nil {
		return c, nil
	}

	Logger().Debug("tint: no color format matched input", "input", s)
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// MustParse is like Parse but panics on error. Use it for
// programmer-owned literals where a malformed string is a bug.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseFunc dispatches a functional-notation body like "255, 0, 0" on
// its lowercase tag.
func parseFunc(tag, body string) (Color, error) {
	args, err := parseArgs(body)
	if err != nil {
		return Color{}, err
	}

	var want int
	switch tag {
	case "rgb", "rgbd", "hsl", "hsv":
		want = 3
	case "rgba", "rgbad", "cmyk":
		want = 4
	default:
		return Color{}, fmt.Errorf("%w: unknown tag %q", ErrInvalidFormat, tag)
	}
	if len(args) != want {
		return Color{}, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidFormat, tag, want, len(args))
	}

	switch tag {
	case "rgb":
		return RGB(roundInt(args[0]), roundInt(args[1]), roundInt(args[2])), nil
	case "rgba":
		return RGBA(roundInt(args[0]), roundInt(args[1]), roundInt(args[2]), roundInt(args[3])), nil
	case "rgbd":
		return RGBF(args[0], args[1], args[2]), nil
	case "rgbad":
		return RGBAF(args[0], args[1], args[2], args[3]), nil
	case "cmyk":
		return CMYK(args[0], args[1], args[2], args[3]), nil
	case "hsl":
		return HSL(args[0], args[1], args[2]), nil
	default: // hsv
		return HSV(args[0], args[1], args[2]), nil
	}
}

// parseArgs splits a comma-separated argument list into numbers. A
// trailing '%' on an argument is stripped, so percentage renderings
// parse back unchanged.
func parseArgs(body string) ([]float64, error) {
	parts := strings.Split(body, ",")
	args := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.TrimSuffix(p, "%")
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrInvalidFormat, p)
		}
		args = append(args, v)
	}
	return args, nil
}

// roundInt rounds a parsed number to the nearest integer channel value.
func roundInt(v float64) int {
	return int(math.Round(v))
}

// MarshalText implements encoding.TextMarshaler. Colors with alpha math
// enabled render as 8-digit hex so the explicit alpha survives the round
// trip; all others render as the canonical 6-digit hex.
func (c Color) MarshalText() ([]byte, error) {
	if c.alphaMath {
		return []byte(c.Hex8()), nil
	}
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting anything
// Parse accepts.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

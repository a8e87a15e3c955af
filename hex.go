package tint

import "fmt"

// Hex creates a color from a hexadecimal string. The leading '#' is
// optional and digits are case-insensitive. Supported forms:
//
//	RGB       3 digits, each duplicated to a full byte (1 → 11)
//	RGBA      4 digits, as RGB plus an alpha digit
//	RRGGBB    6 digits
//	RRGGBBAA  8 digits
//
// The 4- and 8-digit forms carry explicit alpha and enable alpha math.
// Any other digit count or a non-hex character fails with
// ErrInvalidFormat.
func Hex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint8
	a := uint8(255)
	withAlpha := false
	ok := true

	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
		withAlpha = true
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
		withAlpha = true
	default:
		return Color{}, fmt.Errorf("%w: %q has %d hex digits, want 3, 4, 6, or 8", ErrInvalidFormat, hex, len(s))
	}

	if !ok {
		return Color{}, fmt.Errorf("%w: %q contains a non-hex character", ErrInvalidFormat, hex)
	}
	return Color{r: r, g: g, b: b, a: a, alphaMath: withAlpha}, nil
}

// parseHex parses a 1- or 2-digit hex group into val, reporting whether
// every character was a valid hex digit.
func parseHex(s string, val *uint8) bool {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	*val = uint8(v)
	return true
}

// Hex returns the 6-digit "#RRGGBB" uppercase rendering. This is the
// canonical textual form, also produced by String.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// Hex8 returns the 8-digit "#RRGGBBAA" uppercase rendering.
func (c Color) Hex8() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.r, c.g, c.b, c.a)
}

// Hex3 returns the 3-digit "#RGB" approximation. Each channel is reduced
// to round(value/17); the digit d stands for the duplicated byte dd, so
// the form is lossy unless every channel already holds duplicated digits.
func (c Color) Hex3() string {
	return fmt.Sprintf("#%X%X%X", hexDigit(c.r), hexDigit(c.g), hexDigit(c.b))
}

// Hex4 returns the 4-digit "#RGBA" approximation, as Hex3 plus an alpha
// digit.
func (c Color) Hex4() string {
	return fmt.Sprintf("#%X%X%X%X", hexDigit(c.r), hexDigit(c.g), hexDigit(c.b), hexDigit(c.a))
}

// hexDigit reduces a channel to the nearest single hex digit (value/17,
// rounded to nearest).
func hexDigit(v uint8) uint8 {
	return uint8((int(v) + 8) / 17)
}

// Package tint provides a color value type with parsing, conversion,
// manipulation, and arithmetic.
//
// # Overview
//
// tint represents a single color as canonical 8-bit RGBA and converts it
// to and from hexadecimal strings (3/4/6/8 digits), integer and decimal
// RGB(A) tuples, CMYK, HSL, HSV, and CSS/SVG color names. On top of the
// canonical value it offers percentage-based manipulation (lighten,
// darken, saturate, desaturate, invert, hue rotation, blending) and
// elementwise color arithmetic with clamping.
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	c := tint.MustParse("#1CE")
//	fmt.Println(c)             // #11CCEE
//	fmt.Println(c.Lighten(20)) // a lighter shade
//
//	h, s, l := c.HSL() // 189.2, 86.7, 50 (degrees, percent, percent)
//
//	sum := c.Add(tint.RGB(64, 0, 0))
//
// # Color Models
//
// All construction forms produce the same canonical RGBA value: integer
// channels in [0,255] with alpha defaulting to 255. Out-of-range inputs
// are clamped, never rejected. HSL and HSV use hue in degrees [0,360)
// and saturation/lightness/value as percentages 0-100; the decimal RGB
// and CMYK forms use fractions in [0,1].
//
// # Alpha Math
//
// Colors built from an explicit-alpha form (RGBA, RGBAF, 4- or 8-digit
// hex, WithAlpha, FromColor) carry an "alpha math" flag: arithmetic and
// Invert then include the alpha channel. Colors built from alpha-less
// forms leave alpha out of arithmetic and keep it fixed. The flag can be
// toggled after construction with SetAlphaMath.
//
// # Errors
//
// Parsing fails with [ErrInvalidFormat] and rendering with
// [ErrUnsupportedFormat]; both are matched with errors.Is. Out-of-range
// values and division by zero are not errors: values clamp and
// zero-divisor channels become 0.
package tint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)

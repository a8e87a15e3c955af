package tint

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
)

// FromName creates an opaque color from an SVG 1.1 color name such as
// "red" or "slategray". Lookup is case-insensitive. Unknown names fail
// with ErrInvalidFormat.
func FromName(name string) (Color, error) {
	v, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidFormat, name)
	}
	return Color{r: v.R, g: v.G, b: v.B, a: v.A}, nil
}

// Names returns the supported color names in alphabetical order.
func Names() []string {
	return slices.Clone(colornames.Names)
}

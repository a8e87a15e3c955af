package tint

import "errors"

// Package errors for tint.
var (
	// ErrInvalidFormat is returned when an input string or argument list
	// cannot be interpreted as any supported color encoding: wrong hex
	// digit count, non-hex characters, wrong argument arity, or an
	// unrecognized function tag or color name.
	ErrInvalidFormat = errors.New("tint: invalid color format")

	// ErrUnsupportedFormat is returned when a rendering request names a
	// format outside the supported set.
	ErrUnsupportedFormat = errors.New("tint: unsupported format")
)

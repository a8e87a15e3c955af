package tint

import (
	"errors"
	"testing"
)

// TestHexParse tests every supported digit count, with and without the
// leading '#'.
func TestHexParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"hex3", "1CE", Color{r: 0x11, g: 0xCC, b: 0xEE, a: 255}},
		{"hex3 marked", "#1CE", Color{r: 0x11, g: 0xCC, b: 0xEE, a: 255}},
		{"hex3 lowercase", "#1ce", Color{r: 0x11, g: 0xCC, b: 0xEE, a: 255}},
		{"hex4", "#1CE8", Color{r: 0x11, g: 0xCC, b: 0xEE, a: 0x88, alphaMath: true}},
		{"hex6", "11CCEE", Color{r: 0x11, g: 0xCC, b: 0xEE, a: 255}},
		{"hex6 marked", "#A0B1C2", Color{r: 0xA0, g: 0xB1, b: 0xC2, a: 255}},
		{"hex8", "#11CCEE80", Color{r: 0x11, g: 0xCC, b: 0xEE, a: 0x80, alphaMath: true}},
		{"white", "#FFF", Color{r: 255, g: 255, b: 255, a: 255}},
		{"black", "#000000", Color{a: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hex(tt.input)
			if err != nil {
				t.Fatalf("Hex(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestHexParseInvalid tests the ErrInvalidFormat failures: wrong digit
// count and non-hex characters.
func TestHexParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"#1",
		"#12",
		"#12345",
		"#1234567",
		"#123456789",
		"#GGG",
		"#12345G",
		"12345G78",
		"#1C E",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := Hex(in); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Hex(%q) error = %v, want ErrInvalidFormat", in, err)
			}
		})
	}
}

// TestHexAlphaMath tests that only the alpha-bearing 4- and 8-digit
// forms enable alpha math.
func TestHexAlphaMath(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"#1CE", false},
		{"#1CE8", true},
		{"#11CCEE", false},
		{"#11CCEE88", true},
	}

	for _, tt := range tests {
		c, err := Hex(tt.input)
		if err != nil {
			t.Fatalf("Hex(%q) error: %v", tt.input, err)
		}
		if c.AlphaMath() != tt.want {
			t.Errorf("Hex(%q).AlphaMath() = %v, want %v", tt.input, c.AlphaMath(), tt.want)
		}
	}
}

// TestHexExport tests the long-form exporters against the round-trip
// property: the 6-digit rendering reproduces the exact channel bytes.
func TestHexExport(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		hex  string
		hex8 string
	}{
		{"red", RGB(255, 0, 0), "#FF0000", "#FF0000FF"},
		{"mixed", RGB(0x12, 0xAB, 0x05), "#12AB05", "#12AB05FF"},
		{"translucent", RGBA(0x11, 0xCC, 0xEE, 0x80), "#11CCEE", "#11CCEE80"},
		{"black", Black, "#000000", "#000000FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.hex {
				t.Errorf("Hex() = %s, want %s", got, tt.hex)
			}
			if got := tt.c.Hex8(); got != tt.hex8 {
				t.Errorf("Hex8() = %s, want %s", got, tt.hex8)
			}
		})
	}
}

// TestHexRoundTrip tests Hex(c.Hex()) == c for opaque colors over a
// channel sample.
func TestHexRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 85 {
			for b := 0; b <= 255; b += 17 {
				c := RGB(r, g, b)
				back, err := Hex(c.Hex())
				if err != nil {
					t.Fatalf("Hex(%q) error: %v", c.Hex(), err)
				}
				if back != c {
					t.Fatalf("Hex(%q) = %+v, want %+v", c.Hex(), back, c)
				}
			}
		}
	}
}

// TestHexShortExport tests the lossy single-digit approximation: each
// channel reduces to round(value/17).
func TestHexShortExport(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		hex3 string
		hex4 string
	}{
		{"exact digits", MustParse("#1CE"), "#1CE", "#1CEF"},
		{"white", White, "#FFF", "#FFFF"},
		{"rounds down", RGB(0x18, 0x18, 0x18), "#111", "#111F"},
		{"rounds up", RGB(0x1A, 0x1A, 0x1A), "#222", "#222F"},
		{"translucent", RGBA(0x11, 0xCC, 0xEE, 0x88), "#1CE", "#1CE8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex3(); got != tt.hex3 {
				t.Errorf("Hex3() = %s, want %s", got, tt.hex3)
			}
			if got := tt.c.Hex4(); got != tt.hex4 {
				t.Errorf("Hex4() = %s, want %s", got, tt.hex4)
			}
		})
	}
}

// TestHexShortReconstruction tests that a color built from a 3-digit
// form reconstructs to the duplicated-digit 6-digit form.
func TestHexShortReconstruction(t *testing.T) {
	c, err := Hex("1CE")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Hex(); got != "#11CCEE" {
		t.Errorf(`Hex("1CE").Hex() = %s, want #11CCEE`, got)
	}
}

// Command tintdemo demonstrates the tint color library. It parses each
// argument as a color, prints every supported rendering, and shows
// lighten/darken/saturate ladders as terminal swatches.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/tint"
)

var formats = []string{"hex", "hex3", "hex8", "rgb", "rgba", "rgbd", "cmyk", "hsl", "hsv"}

func main() {
	var (
		steps = flag.Int("steps", 5, "ladder steps per manipulation")
		span  = flag.Float64("span", 40, "total percentage span of each ladder")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"#1CE", "slategray", "hsl(30, 80%, 50%)"}
	}

	for _, arg := range args {
		c, err := tint.Parse(arg)
		if err != nil {
			log.Fatalf("Cannot parse %q: %v", arg, err)
		}
		show(c, arg, *steps, *span)
	}
}

func show(c tint.Color, input string, steps int, span float64) {
	fmt.Printf("%s %s\n", swatch(c), input)

	for _, f := range formats {
		s, err := c.Format(f)
		if err != nil {
			log.Fatalf("Format %q: %v", f, err)
		}
		fmt.Printf("  %-6s %s\n", f, s)
	}

	fmt.Printf("  luminance %.4f, contrast on white %.2f\n", c.Luminance(), c.Contrast(tint.White))

	ladder("lighten", steps, span, c.Lighten)
	ladder("darken", steps, span, c.Darken)
	ladder("saturate", steps, span, c.Saturate)
	ladder("desat", steps, span, c.Desaturate)

	fmt.Printf("  %-8s %s %s\n", "invert", swatch(c.Invert()), c.Invert())
	fmt.Printf("  %-8s %s %s\n", "gray", swatch(c.Grayscale()), c.Grayscale())
	fmt.Println()
}

func ladder(name string, steps int, span float64, op func(pct float64) tint.Color) {
	fmt.Printf("  %-8s ", name)
	for i := 0; i <= steps; i++ {
		pct := span * float64(i) / float64(steps)
		fmt.Print(swatch(op(pct)))
	}
	fmt.Println()
}

// swatch renders a colored block with a contrast-picked label so the hex
// code stays readable on both light and dark colors.
func swatch(c tint.Color) string {
	fg := tint.Black
	if c.IsDark() {
		fg = tint.White
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg.Hex()))
	return style.Render(" " + c.Hex() + " ")
}

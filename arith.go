package tint

// Arithmetic operates elementwise on the RGB channels in float64, rounds
// to nearest, and clamps to [0, 255]. Alpha joins the computation only
// under the alpha-math rule: for color/color operations when either
// operand has the flag set, for scalar operations when the color operand
// does. Otherwise the result keeps the left operand's alpha unchanged.
// The result's alpha-math flag always comes from the left (or only)
// color operand.

// Add returns the channelwise sum of c and o.
func (c Color) Add(o Color) Color { return c.combine(o, add) }

// Sub returns the channelwise difference c − o.
func (c Color) Sub(o Color) Color { return c.combine(o, sub) }

// Mul returns the channelwise product of c and o.
func (c Color) Mul(o Color) Color { return c.combine(o, mul) }

// Div returns the channelwise quotient c / o. Channels of o that are 0
// yield 0 in the result; division by zero is never an error.
func (c Color) Div(o Color) Color { return c.combine(o, div) }

// AddScalar adds n to each channel.
func (c Color) AddScalar(n float64) Color { return c.combineScalar(n, add) }

// SubScalar subtracts n from each channel.
func (c Color) SubScalar(n float64) Color { return c.combineScalar(n, sub) }

// MulScalar multiplies each channel by n.
func (c Color) MulScalar(n float64) Color { return c.combineScalar(n, mul) }

// DivScalar divides each channel by n. A zero divisor yields 0 in every
// affected channel; division by zero is never an error.
func (c Color) DivScalar(n float64) Color { return c.combineScalar(n, div) }

// ScalarSub subtracts each channel from the scalar: n − channel. This is
// the scalar-left counterpart of SubScalar; addition and multiplication
// are commutative, so they need no scalar-left form.
func ScalarSub(n float64, c Color) Color { return c.combineScalar(n, rsub) }

// ScalarDiv divides the scalar by each channel: n / channel, with zero
// channels yielding 0.
func ScalarDiv(n float64, c Color) Color { return c.combineScalar(n, rdiv) }

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }

// div defines a zero divisor as yielding 0 rather than an error or
// infinity.
func div(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// rsub and rdiv flip the operand order for the scalar-left forms.
func rsub(a, b float64) float64 { return b - a }
func rdiv(a, b float64) float64 { return div(b, a) }

// combine applies f elementwise over the channels of c (left) and o
// (right), with alpha included when either operand has alpha math
// enabled.
func (c Color) combine(o Color, f func(a, b float64) float64) Color {
	n := Color{
		r:         round255(f(float64(c.r), float64(o.r))),
		g:         round255(f(float64(c.g), float64(o.g))),
		b:         round255(f(float64(c.b), float64(o.b))),
		a:         c.a,
		alphaMath: c.alphaMath,
	}
	if c.alphaMath || o.alphaMath {
		n.a = round255(f(float64(c.a), float64(o.a)))
	}
	return n
}

// combineScalar applies f over each channel of c (left operand) and the
// scalar s (right operand), with alpha included when c has alpha math
// enabled.
func (c Color) combineScalar(s float64, f func(a, b float64) float64) Color {
	n := Color{
		r:         round255(f(float64(c.r), s)),
		g:         round255(f(float64(c.g), s)),
		b:         round255(f(float64(c.b), s)),
		a:         c.a,
		alphaMath: c.alphaMath,
	}
	if c.alphaMath {
		n.a = round255(f(float64(c.a), s))
	}
	return n
}

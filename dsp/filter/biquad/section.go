package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
//
// A first-order section has B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// IsFirstOrder reports whether the section degenerates to first order.
func (c *Coefficients) IsFirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}

// stepDF1 runs one sample through a Direct Form I section.
// reg = [x1, x2, y1, y2].
func stepDF1(c *Coefficients, reg []float64, x float64) float64 {
	y := c.B0*x + c.B1*reg[0] + c.B2*reg[1] - c.A1*reg[2] - c.A2*reg[3]
	reg[1] = reg[0]
	reg[0] = x
	reg[3] = reg[2]
	reg[2] = y

	return y
}

// stepDF2 runs one sample through a Direct Form II section.
// reg = [w1, w2].
func stepDF2(c *Coefficients, reg []float64, x float64) float64 {
	w := x - c.A1*reg[0] - c.A2*reg[1]
	y := c.B0*w + c.B1*reg[0] + c.B2*reg[1]
	reg[1] = reg[0]
	reg[0] = w

	return y
}

// stepTDF2 runs one sample through a Transposed Direct Form II section.
// reg = [d0, d1].
func stepTDF2(c *Coefficients, reg []float64, x float64) float64 {
	y := c.B0*x + reg[0]
	reg[0] = c.B1*x - c.A1*y + reg[1]
	reg[1] = c.B2*x - c.A2*y

	return y
}

package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the z-plane roots of 1 + A1*z^-1 + A2*z^-2. A first-order
// section reports its single pole first and 0 second.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane roots of B0 + B1*z^-1 + B2*z^-2.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleRadius returns the largest pole magnitude. Complex pole pairs have
// |p|^2 = A2, which avoids solving for them.
func (c *Coefficients) PoleRadius() float64 {
	if c.A1*c.A1 < 4*c.A2 {
		return math.Sqrt(c.A2)
	}

	p := c.Poles()

	return math.Max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// Stable reports whether the coefficients are finite and every pole lies
// strictly inside the unit circle.
func (c *Coefficients) Stable() bool {
	for _, v := range [...]float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return c.PoleRadius() < 1
}

// PoleRadius returns the largest pole magnitude over the active sections,
// or 0 for an empty chain.
func (c *Chain) PoleRadius() float64 {
	r := 0.0
	for i := range c.sections {
		r = math.Max(r, c.sections[i].PoleRadius())
	}

	return r
}

// quadraticRoots solves a*z^2 + b*z + c = 0 for real coefficients. Real
// roots use q = -(b + sign(b)*sqrt(d))/2 so neither root loses precision to
// cancellation.
func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	d := b*b - 4*a*c
	if d < 0 {
		re := -b / (2 * a)
		im := math.Sqrt(-d) / (2 * a)

		return [2]complex128{complex(re, im), complex(re, -im)}
	}

	q := -0.5 * (b + math.Copysign(math.Sqrt(d), b))
	if q == 0 {
		return [2]complex128{}
	}

	return [2]complex128{complex(q/a, 0), complex(c/q, 0)}
}

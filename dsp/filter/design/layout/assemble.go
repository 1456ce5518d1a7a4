package layout

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// Assemble converts a digital layout into second-order sections, one per
// pair in layout order, appended to dst[:0]. Every section has a unit
// leading numerator coefficient except the first, which carries l.Gain.
// A single pair becomes a first-order section with B2 = A2 = 0.
//
// It fails with core.ErrInstability when a pole lies on or outside the unit
// circle or a coefficient is not finite.
func Assemble(dst []biquad.Coefficients, l *Layout) ([]biquad.Coefficients, error) {
	dst = dst[:0]

	for i, p := range l.pairs {
		var c biquad.Coefficients

		if p.Single {
			if cmplx.Abs(p.Poles.First) >= 1 {
				return dst, unstable(i, p.Poles.First)
			}

			c = biquad.Coefficients{
				B0: 1,
				B1: -real(p.Zeros.First),
				A1: -real(p.Poles.First),
			}
		} else {
			for _, pole := range []complex128{p.Poles.First, p.Poles.Second} {
				if cmplx.Abs(pole) >= 1 {
					return dst, unstable(i, pole)
				}
			}

			z1, z2 := p.Zeros.First, p.Zeros.Second
			p1, p2 := p.Poles.First, p.Poles.Second
			c = biquad.Coefficients{
				B0: 1,
				B1: -real(z1 + z2),
				B2: real(z1 * z2),
				A1: -real(p1 + p2),
				A2: real(p1 * p2),
			}
		}

		if i == 0 {
			c.B0 *= l.Gain
			c.B1 *= l.Gain
			c.B2 *= l.Gain
		}

		if !finite(c) {
			return dst, fmt.Errorf("%w: section %d has non-finite coefficients %+v", core.ErrInstability, i, c)
		}

		dst = append(dst, c)
	}

	return dst, nil
}

func unstable(section int, pole complex128) error {
	return fmt.Errorf("%w: section %d pole %v has |p| = %.6g >= 1",
		core.ErrInstability, section, pole, cmplx.Abs(pole))
}

func finite(c biquad.Coefficients) bool {
	return core.IsFinite(c.B0) && core.IsFinite(c.B1) && core.IsFinite(c.B2) &&
		core.IsFinite(c.A1) && core.IsFinite(c.A2)
}

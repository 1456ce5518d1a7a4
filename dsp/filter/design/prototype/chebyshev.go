package prototype

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
)

// ChebyshevI is the equiripple-passband all-pole low-pass. The gain at the
// cutoff is -RippleDB; the DC gain is 1 for odd orders and 10^(-RippleDB/20)
// for even orders.
type ChebyshevI struct {
	RippleDB float64
}

// Name implements Prototype.
func (ChebyshevI) Name() string { return "chebyshev1" }

// Shelf implements Prototype.
func (ChebyshevI) Shelf() bool { return false }

func (c ChebyshevI) design(l *layout.Layout, order int) error {
	if err := validatePositive(c.Name(), "ripple", c.RippleDB); err != nil {
		return err
	}

	eps := math.Sqrt(core.DBPowerMinusOne(c.RippleDB))
	if err := chebyshevPoles(order, eps).addAllPole(l); err != nil {
		return err
	}

	if order%2 == 0 {
		l.NormalGain = core.DBToLinear(-c.RippleDB)
	}

	return nil
}

// ChebyshevIShelf is a low shelf on Chebyshev I poles: GainDB at DC, unity
// above the transition, RippleDB of ripple in the transition region.
type ChebyshevIShelf struct {
	GainDB   float64
	RippleDB float64
}

// Name implements Prototype.
func (ChebyshevIShelf) Name() string { return "chebyshev1-shelf" }

// Shelf implements Prototype.
func (ChebyshevIShelf) Shelf() bool { return true }

func (c ChebyshevIShelf) design(l *layout.Layout, order int) error {
	g, err := validateGain(c.Name(), c.GainDB)
	if err != nil {
		return err
	}

	if err := validatePositive(c.Name(), "ripple", c.RippleDB); err != nil {
		return err
	}

	eps := math.Sqrt(core.DBPowerMinusOne(c.RippleDB))

	return chebyshevPoles(order, eps).addShelf(l, order, g)
}

// ChebyshevII is the inverse Chebyshev low-pass: flat passband, equiripple
// stopband at least StopbandDB down. The cutoff is the stopband edge, where
// the gain is exactly -StopbandDB; the DC gain is 1.
type ChebyshevII struct {
	StopbandDB float64
}

// Name implements Prototype.
func (ChebyshevII) Name() string { return "chebyshev2" }

// Shelf implements Prototype.
func (ChebyshevII) Shelf() bool { return false }

func (c ChebyshevII) design(l *layout.Layout, order int) error {
	if err := validatePositive(c.Name(), "stopband attenuation", c.StopbandDB); err != nil {
		return err
	}

	ps := inverseChebyshevPoles(order, c.StopbandDB)
	n := float64(order)

	for i, p := range ps.pairs {
		theta := float64(2*i+1) * math.Pi / (2 * n)
		zero := complex(0, 1/math.Cos(theta))

		if err := l.AddConjugatePairs(p, zero); err != nil {
			return err
		}
	}

	if ps.hasReal {
		return l.AddSingle(complex(ps.real, 0), layout.Infinity)
	}

	return nil
}

// ChebyshevIIShelf is a low shelf on inverse Chebyshev poles.
type ChebyshevIIShelf struct {
	GainDB     float64
	StopbandDB float64
}

// Name implements Prototype.
func (ChebyshevIIShelf) Name() string { return "chebyshev2-shelf" }

// Shelf implements Prototype.
func (ChebyshevIIShelf) Shelf() bool { return true }

func (c ChebyshevIIShelf) design(l *layout.Layout, order int) error {
	g, err := validateGain(c.Name(), c.GainDB)
	if err != nil {
		return err
	}

	if err := validatePositive(c.Name(), "stopband attenuation", c.StopbandDB); err != nil {
		return err
	}

	return inverseChebyshevPoles(order, c.StopbandDB).addShelf(l, order, g)
}

// chebyshevPoles places the poles on the ellipse
// -sinh(v0)*sin(theta) + j*cosh(v0)*cos(theta), v0 = asinh(1/eps)/n,
// theta = (2m-1)*pi/(2n).
func chebyshevPoles(n int, eps float64) poleSet {
	v0 := math.Asinh(1/eps) / float64(n)
	sinhV0 := math.Sinh(v0)
	coshV0 := math.Cosh(v0)

	ps := poleSet{pairs: make([]complex128, 0, n/2)}

	for i := range n / 2 {
		theta := float64(2*i+1) * math.Pi / float64(2*n)
		ps.pairs = append(ps.pairs, complex(-sinhV0*math.Sin(theta), coshV0*math.Cos(theta)))
	}

	if n%2 == 1 {
		ps.real = -sinhV0
		ps.hasReal = true
	}

	return ps
}

// inverseChebyshevPoles returns the reciprocals of the Chebyshev I poles
// designed with eps = 1/sqrt(10^(A/10) - 1).
func inverseChebyshevPoles(n int, stopbandDB float64) poleSet {
	eps := 1 / math.Sqrt(core.DBPowerMinusOne(stopbandDB))
	ps := chebyshevPoles(n, eps)

	for i, p := range ps.pairs {
		ps.pairs[i] = 1 / p
	}

	if ps.hasReal {
		ps.real = 1 / ps.real
	}

	return ps
}

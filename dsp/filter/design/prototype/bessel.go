package prototype

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
	"github.com/cwbudde/algo-iir/internal/polyroot"
)

// Bessel is the maximally flat group delay all-pole low-pass. Its poles are
// the roots of the reverse Bessel polynomial, rescaled so the -3 dB point is
// at the cutoff.
type Bessel struct{}

// Name implements Prototype.
func (Bessel) Name() string { return "bessel" }

// Shelf implements Prototype.
func (Bessel) Shelf() bool { return false }

func (b Bessel) design(l *layout.Layout, order int) error {
	ps, err := besselPoles(order)
	if err != nil {
		return nonConvergence(b.Name(), err)
	}

	return ps.addAllPole(l)
}

// BesselShelf is a low shelf on Bessel poles.
type BesselShelf struct {
	GainDB float64
}

// Name implements Prototype.
func (BesselShelf) Name() string { return "bessel-shelf" }

// Shelf implements Prototype.
func (BesselShelf) Shelf() bool { return true }

func (b BesselShelf) design(l *layout.Layout, order int) error {
	g, err := validateGain(b.Name(), b.GainDB)
	if err != nil {
		return err
	}

	ps, err := besselPoles(order)
	if err != nil {
		return nonConvergence(b.Name(), err)
	}

	return ps.addShelf(l, order, g)
}

const besselBisectionSteps = 200

// besselPoles returns the -3 dB normalized Bessel poles of order n.
func besselPoles(n int) (poleSet, error) {
	coeff := polyroot.BesselCoefficients(n)

	roots, err := polyroot.DurandKerner(coeff)
	if err != nil {
		return poleSet{}, err
	}

	reals, upper, err := polyroot.SplitConjugates(roots)
	if err != nil {
		return poleSet{}, err
	}

	if len(reals) != n%2 {
		return poleSet{}, fmt.Errorf("%d real roots for order %d", len(reals), n)
	}

	w3, err := besselCutoff(coeff)
	if err != nil {
		return poleSet{}, err
	}

	ps := poleSet{pairs: make([]complex128, len(upper))}
	for i, p := range upper {
		ps.pairs[i] = p / complex(w3, 0)
	}

	if n%2 == 1 {
		ps.real = reals[0] / w3
		ps.hasReal = true
	}

	return ps, nil
}

// besselCutoff finds the -3 dB frequency of the delay-normalized Bessel
// polynomial by bracketing and bisection.
func besselCutoff(coeff []complex128) (float64, error) {
	dc := cmplx.Abs(polyroot.PolyEval(coeff, 0))
	powerAt := func(w float64) float64 {
		r := dc / cmplx.Abs(polyroot.PolyEval(coeff, complex(0, w)))
		return r * r
	}

	lo, hi := 0.0, 1.0
	for range 64 {
		if powerAt(hi) < 0.5 {
			break
		}

		lo, hi = hi, 2*hi
	}

	if powerAt(hi) >= 0.5 {
		return 0, errors.New("-3 dB point not bracketed")
	}

	for range besselBisectionSteps {
		mid := 0.5 * (lo + hi)
		if mid == lo || mid == hi {
			break
		}

		if powerAt(mid) >= 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return math.Max(0.5*(lo+hi), math.SmallestNonzeroFloat64), nil
}

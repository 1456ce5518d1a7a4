// Package prototype synthesizes normalized analog low-pass and low-shelf
// prototypes for the classical IIR families.
//
// Every prototype fills a [layout.Layout] in the s-plane with the passband
// (or shelf transition) edge at 1 rad/s, the reference angle at DC and the
// target gain there. The set of strategies is closed: Butterworth,
// ChebyshevI, ChebyshevII, Elliptic and Bessel, plus a shelf variant for all
// of them except Elliptic.
package prototype

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
)

// Prototype is one analog prototype design strategy.
type Prototype interface {
	// Name returns a short family name, e.g. "chebyshev1".
	Name() string

	// Shelf reports whether the prototype is a low-shelf (non-zero gain on
	// both sides of the transition) rather than a low-pass.
	Shelf() bool

	design(l *layout.Layout, order int) error
}

// Design resets l and fills it with the prototype of the given order.
//
// It fails with core.ErrConfiguration when order is outside [1,
// l.MaxPoles()] or a family parameter is out of its domain, and with
// core.ErrNonConvergence when a bounded numeric solve runs out of
// iterations. On failure l is left reset.
func Design(p Prototype, l *layout.Layout, order int) error {
	if p == nil {
		return core.Configf("prototype: nil prototype")
	}

	if order < 1 || order > l.MaxPoles() {
		return core.Configf("%s: order %d out of range [1, %d]", p.Name(), order, l.MaxPoles())
	}

	l.Reset()

	if err := p.design(l, order); err != nil {
		l.Reset()
		return err
	}

	return nil
}

// poleSet is the left-half-plane pole set of an order-n prototype: one
// representative per conjugate pair plus the real pole of odd orders.
type poleSet struct {
	pairs   []complex128
	real    float64
	hasReal bool
}

// addAllPole appends the poles with every zero at infinity.
func (ps poleSet) addAllPole(l *layout.Layout) error {
	for _, p := range ps.pairs {
		if err := l.AddConjugatePairs(p, layout.Infinity); err != nil {
			return err
		}
	}

	if ps.hasReal {
		return l.AddSingle(complex(ps.real, 0), layout.Infinity)
	}

	return nil
}

// addShelf appends a low-shelf built on the pole set: with P = g^(1/n),
// poles are scaled by 1/sqrt(P) and zeros sit on the same rays scaled by
// sqrt(P). The DC gain is g and the gain at infinity is 1.
func (ps poleSet) addShelf(l *layout.Layout, order int, gain float64) error {
	sp := math.Sqrt(math.Pow(gain, 1/float64(order)))
	pole := complex(1/sp, 0)
	zero := complex(sp, 0)

	l.NormalGain = gain

	for _, p := range ps.pairs {
		if err := l.AddConjugatePairs(p*pole, p*zero); err != nil {
			return err
		}
	}

	if ps.hasReal {
		return l.AddSingle(complex(ps.real/sp, 0), complex(ps.real*sp, 0))
	}

	return nil
}

func validateGain(family string, gainDB float64) (float64, error) {
	if !core.IsFinite(gainDB) {
		return 0, core.Configf("%s: gain must be finite: %v", family, gainDB)
	}

	return core.DBToLinear(gainDB), nil
}

func validatePositive(family, what string, v float64) error {
	if !core.IsFinite(v) || v <= 0 {
		return core.Configf("%s: %s must be > 0: %v", family, what, v)
	}

	return nil
}

func nonConvergence(family string, err error) error {
	return fmt.Errorf("%w: %s: %w", core.ErrNonConvergence, family, err)
}

package prototype

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
	"github.com/cwbudde/algo-iir/internal/ellipticmath"
)

// Rolloff limits for Elliptic.
const (
	MinEllipticRolloff = -16.0
	MaxEllipticRolloff = 4.0
)

// Elliptic (Cauer) low-pass with equiripple passband and stopband.
//
// RippleDB is the passband ripple; the gain at the cutoff is -RippleDB.
// Rolloff in [MinEllipticRolloff, MaxEllipticRolloff] sets the transition
// steepness through the selectivity xi = 5*e^(Rolloff-1) + 1, the ratio of
// stopband edge to passband edge. The DC gain is 1 for odd orders and
// 10^(-RippleDB/20) for even orders.
type Elliptic struct {
	RippleDB float64
	Rolloff  float64
}

// Name implements Prototype.
func (Elliptic) Name() string { return "elliptic" }

// Shelf implements Prototype.
func (Elliptic) Shelf() bool { return false }

// Selectivity returns the stopband-to-passband edge ratio xi.
func (e Elliptic) Selectivity() float64 {
	return 5*math.Exp(e.Rolloff-1) + 1
}

func (e Elliptic) design(l *layout.Layout, order int) error {
	if err := validatePositive(e.Name(), "ripple", e.RippleDB); err != nil {
		return err
	}

	if !core.IsFinite(e.Rolloff) || e.Rolloff < MinEllipticRolloff || e.Rolloff > MaxEllipticRolloff {
		return core.Configf("%s: rolloff must be in [%v, %v]: %v",
			e.Name(), MinEllipticRolloff, MaxEllipticRolloff, e.Rolloff)
	}

	k := 1 / e.Selectivity()

	k1, err := ellipticmath.DegreeModulus(order, k)
	if err != nil {
		return nonConvergence(e.Name(), err)
	}

	ep := math.Sqrt(core.DBPowerMinusOne(e.RippleDB))

	// v0 = -j*asn(j/ep, k1)/N is real.
	a, err := ellipticmath.ASN(complex(0, 1/ep), k1)
	if err != nil {
		return nonConvergence(e.Name(), err)
	}

	v0 := imag(a) / float64(order)
	n := float64(order)

	for i := 1; i <= order/2; i++ {
		u := float64(2*i-1) / n

		zeta, err := ellipticmath.CD(complex(u, 0), k)
		if err != nil {
			return nonConvergence(e.Name(), err)
		}

		cd, err := ellipticmath.CD(complex(u, -v0), k)
		if err != nil {
			return nonConvergence(e.Name(), err)
		}

		pole := complex(0, 1) * cd
		zero := complex(0, 1/(k*real(zeta)))

		if !stableAnalog(pole) || !core.IsFiniteComplex(zero) {
			return fmt.Errorf("%w: %s: degenerate pole %v or zero %v", core.ErrNonConvergence, e.Name(), pole, zero)
		}

		if err := l.AddConjugatePairs(pole, zero); err != nil {
			return err
		}
	}

	if order%2 == 1 {
		sn, err := ellipticmath.SN(complex(0, v0), k)
		if err != nil {
			return nonConvergence(e.Name(), err)
		}

		pole := complex(-imag(sn), 0)
		if !stableAnalog(pole) {
			return fmt.Errorf("%w: %s: degenerate real pole %v", core.ErrNonConvergence, e.Name(), pole)
		}

		if err := l.AddSingle(pole, layout.Infinity); err != nil {
			return err
		}
	} else {
		l.NormalGain = core.DBToLinear(-e.RippleDB)
	}

	return nil
}

func stableAnalog(p complex128) bool {
	return core.IsFiniteComplex(p) && real(p) < 0
}

// Package layout holds the pole/zero description of a filter in the s-plane
// or z-plane, and turns a digital layout into a cascade of biquad sections.
package layout

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Infinity marks a pole or zero at infinity (all-pole prototypes).
var Infinity = cmplx.Inf()

// IsInfinite reports whether c is the Infinity sentinel (or any infinite
// value).
func IsInfinite(c complex128) bool {
	return cmplx.IsInf(c)
}

// ComplexPair is a conjugate pair or two real values. For a single real
// pole or zero only First is meaningful.
type ComplexPair struct {
	First, Second complex128
}

// Conjugate returns the pair {c, conj(c)}.
func Conjugate(c complex128) ComplexPair {
	return ComplexPair{First: c, Second: cmplx.Conj(c)}
}

// IsConjugate reports whether Second is the conjugate of First.
func (p ComplexPair) IsConjugate() bool {
	return p.Second == cmplx.Conj(p.First)
}

// IsReal reports whether both members are real.
func (p ComplexPair) IsReal() bool {
	return imag(p.First) == 0 && imag(p.Second) == 0
}

// PoleZeroPair couples a pole pair with its zero pair. Single marks the
// unpaired real pole and zero of an odd-order layout; only First of Poles
// and Zeros is used then.
type PoleZeroPair struct {
	Poles  ComplexPair
	Zeros  ComplexPair
	Single bool
}

// Layout is an ordered set of pole/zero pairs plus the normalization data
// used to scale the final cascade.
//
// NormalW is the reference angle in radians per sample (0..pi) and NormalGain
// the linear gain the digital filter must have there. Gain is the scalar
// computed by the bilinear transform that achieves it.
//
// Storage is sized once by New; Reset and the Add methods never allocate.
type Layout struct {
	pairs    []PoleZeroPair
	maxPoles int
	numPoles int

	NormalW    float64
	NormalGain float64
	Gain       float64
}

// New returns an empty layout that can hold up to maxPoles poles.
func New(maxPoles int) *Layout {
	maxPoles = max(maxPoles, 1)

	return &Layout{
		pairs:      make([]PoleZeroPair, 0, (maxPoles+1)/2),
		maxPoles:   maxPoles,
		NormalGain: 1,
		Gain:       1,
	}
}

// Reset clears all pairs and restores unity normalization.
func (l *Layout) Reset() {
	l.pairs = l.pairs[:0]
	l.numPoles = 0
	l.NormalW = 0
	l.NormalGain = 1
	l.Gain = 1
}

// MaxPoles returns the pole capacity.
func (l *Layout) MaxPoles() int { return l.maxPoles }

// NumPoles returns the filter order described by the layout.
func (l *Layout) NumPoles() int { return l.numPoles }

// NumPairs returns the number of pole/zero pairs, ceil(NumPoles/2).
func (l *Layout) NumPairs() int { return len(l.pairs) }

// Pair returns the i-th pole/zero pair.
func (l *Layout) Pair(i int) PoleZeroPair { return l.pairs[i] }

// Pairs returns a copy of all pairs.
func (l *Layout) Pairs() []PoleZeroPair {
	out := make([]PoleZeroPair, len(l.pairs))
	copy(out, l.pairs)

	return out
}

// HasSingle reports whether the last pair is an unpaired real pole/zero.
func (l *Layout) HasSingle() bool {
	return len(l.pairs) > 0 && l.pairs[len(l.pairs)-1].Single
}

// AddSingle appends the unpaired real pole and zero of an odd order.
func (l *Layout) AddSingle(pole, zero complex128) error {
	if err := l.reserve(1); err != nil {
		return err
	}

	l.pairs = append(l.pairs, PoleZeroPair{
		Poles:  ComplexPair{First: pole},
		Zeros:  ComplexPair{First: zero},
		Single: true,
	})
	l.numPoles++

	return nil
}

// AddConjugatePairs appends pole and zero together with their conjugates.
func (l *Layout) AddConjugatePairs(pole, zero complex128) error {
	return l.AddPair(Conjugate(pole), Conjugate(zero))
}

// AddPair appends an arbitrary second-order pole/zero pair (a conjugate
// pair or two reals).
func (l *Layout) AddPair(poles, zeros ComplexPair) error {
	if err := l.reserve(2); err != nil {
		return err
	}

	l.pairs = append(l.pairs, PoleZeroPair{Poles: poles, Zeros: zeros})
	l.numPoles += 2

	return nil
}

func (l *Layout) reserve(poles int) error {
	if l.HasSingle() {
		return core.Configf("layout: pair added after the single real pole")
	}

	if l.numPoles+poles > l.maxPoles {
		return core.Configf("layout: %d poles exceed capacity %d", l.numPoles+poles, l.maxPoles)
	}

	return nil
}

// CopyFrom replaces l's contents with src's. It fails if src does not fit.
func (l *Layout) CopyFrom(src *Layout) error {
	if src.numPoles > l.maxPoles {
		return core.Configf("layout: %d poles exceed capacity %d", src.numPoles, l.maxPoles)
	}

	l.pairs = append(l.pairs[:0], src.pairs...)
	l.numPoles = src.numPoles
	l.NormalW = src.NormalW
	l.NormalGain = src.NormalGain
	l.Gain = src.Gain

	return nil
}

// DigitalResponse evaluates the monic z-plane transfer function
// prod (z - zero)/(z - pole) at z = e^{jw}. The scalar Gain is not applied.
func (l *Layout) DigitalResponse(w float64) complex128 {
	z := cmplx.Rect(1, w)
	h := complex(1, 0)

	for _, p := range l.pairs {
		h *= (z - p.Zeros.First) / (z - p.Poles.First)
		if !p.Single {
			h *= (z - p.Zeros.Second) / (z - p.Poles.Second)
		}
	}

	return h
}

// AnalogResponse evaluates the s-plane transfer function
// prod (s - zero)/(s - pole) at s = jw. Zeros at infinity contribute a
// factor of 1/(s - pole) only; the result is not normalized.
func (l *Layout) AnalogResponse(w float64) complex128 {
	s := complex(0, w)
	h := complex(1, 0)

	factor := func(pole, zero complex128) complex128 {
		if IsInfinite(zero) {
			return 1 / (s - pole)
		}

		return (s - zero) / (s - pole)
	}

	for _, p := range l.pairs {
		h *= factor(p.Poles.First, p.Zeros.First)
		if !p.Single {
			h *= factor(p.Poles.Second, p.Zeros.Second)
		}
	}

	return h
}

// MaxPoleRadius returns the largest pole magnitude. For a digital layout the
// filter is stable when it is below 1.
func (l *Layout) MaxPoleRadius() float64 {
	r := 0.0
	for _, p := range l.pairs {
		r = math.Max(r, cmplx.Abs(p.Poles.First))
		if !p.Single {
			r = math.Max(r, cmplx.Abs(p.Poles.Second))
		}
	}

	return r
}

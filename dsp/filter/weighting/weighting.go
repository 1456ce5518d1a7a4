package weighting

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
	"github.com/cwbudde/algo-iir/dsp/filter/design/transform"
)

// IEC 61672 analog prototype pole frequencies (Hz).
const (
	f1 = 20.598997 // double pole for A, B, C
	f2 = 107.65265 // single pole for A, B
	f3 = 158.48932 // single pole for B only
	f4 = 737.86223 // single pole for A only
	f5 = 12194.217 // double pole for A, B, C
)

// ReferenceFrequency is the frequency in Hz at which every curve has 0 dB.
const ReferenceFrequency = 1000.0

// maxPoles is the order of the A curve, the highest of the four.
const maxPoles = 6

// Type identifies a frequency weighting curve.
type Type int

const (
	// TypeA is the A-weighting curve per IEC 61672.
	// It approximates the 40-phon equal-loudness contour and is the most
	// widely used weighting for noise measurements.
	TypeA Type = iota

	// TypeB is the B-weighting curve per IEC 61672.
	// It approximates the 70-phon equal-loudness contour.
	TypeB

	// TypeC is the C-weighting curve per IEC 61672.
	// It approximates the 100-phon equal-loudness contour and is used
	// for peak measurements and C-A difference calculations.
	TypeC

	// TypeZ is the Z-weighting (zero-weighting) per IEC 61672.
	// It applies no frequency weighting.
	TypeZ
)

// String returns a human-readable name for the weighting type.
func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeC:
		return "C"
	case TypeZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// New returns a [biquad.Chain] in the given structure configured for the
// weighting curve at sampleRate, normalized to 0 dB at ReferenceFrequency.
// TypeZ yields a chain without sections, which passes its input through.
//
// It fails with core.ErrConfiguration for an unknown type or a sample rate
// that does not exceed twice the highest pole frequency (12194 Hz).
func New(t Type, sampleRate float64, structure biquad.Structure) (*biquad.Chain, error) {
	sections, err := Sections(t, sampleRate)
	if err != nil {
		return nil, err
	}

	chain := biquad.NewChain(maxPoles/2, structure)
	if err := chain.SetCoefficients(sections); err != nil {
		return nil, err
	}

	return chain, nil
}

// Sections returns the second-order sections of the weighting curve.
func Sections(t Type, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	switch t {
	case TypeA, TypeB, TypeC:
	case TypeZ:
		return nil, nil
	default:
		return nil, core.Configf("weighting: unknown type %d", int(t))
	}

	if sampleRate <= 2*f5 {
		return nil, core.Configf("weighting: sample rate %v Hz must exceed %v Hz", sampleRate, 2*f5)
	}

	analog := layout.New(maxPoles)
	if err := addPoles(analog, t, sampleRate); err != nil {
		return nil, err
	}

	analog.NormalW = 2 * math.Pi * ReferenceFrequency / sampleRate
	analog.NormalGain = 1

	digital := layout.New(maxPoles)
	if err := transform.Bilinear(digital, analog); err != nil {
		return nil, err
	}

	return layout.Assemble(make([]biquad.Coefficients, 0, digital.NumPairs()), digital)
}

// addPoles writes the IEC 61672 poles into l. Every pole is pre-warped on
// its own so the digital corner sits exactly at the analog corner; zeros at
// DC stay at s = 0 and the zeros of the f5 pair lie at infinity.
//
//	H_A(s) = K_A * s^4 / ((s+w1)^2 * (s+w2) * (s+w4) * (s+w5)^2)
//	H_B(s) = K_B * s^3 / ((s+w1)^2 * (s+w3) * (s+w5)^2)
//	H_C(s) = K_C * s^2 / ((s+w1)^2 * (s+w5)^2)
func addPoles(l *layout.Layout, t Type, sampleRate float64) error {
	warp := func(f float64) complex128 {
		return complex(-math.Tan(math.Pi*f/sampleRate), 0)
	}

	double := func(f float64) layout.ComplexPair {
		return layout.ComplexPair{First: warp(f), Second: warp(f)}
	}

	atDC := layout.ComplexPair{}
	atInf := layout.ComplexPair{First: layout.Infinity, Second: layout.Infinity}

	if err := l.AddPair(double(f1), atDC); err != nil {
		return err
	}

	if err := l.AddPair(double(f5), atInf); err != nil {
		return err
	}

	switch t {
	case TypeA:
		return l.AddPair(layout.ComplexPair{First: warp(f2), Second: warp(f4)}, atDC)
	case TypeB:
		return l.AddSingle(warp(f3), 0)
	default:
		return nil
	}
}

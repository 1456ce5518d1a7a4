package design

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// DefaultQ is the Butterworth quality factor 1/sqrt(2).
const DefaultQ = 1 / math.Sqrt2

// Lowpass designs a second-order low-pass at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	p, err := newParams(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b1 := 1 - p.cw

	return normalize(b1/2, b1, b1/2, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// Highpass designs a second-order high-pass at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	p, err := newParams(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b1 := 1 + p.cw

	return normalize(b1/2, -b1, b1/2, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// BandpassCSG designs a constant-skirt-gain band-pass: the peak gain is q.
func BandpassCSG(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	p, err := newParams(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return normalize(p.sw/2, 0, -p.sw/2, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// BandpassPeak designs a band-pass with 0 dB peak gain at freq.
func BandpassPeak(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	p, err := newParams(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return normalize(p.alpha, 0, -p.alpha, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// Notch designs a band-reject biquad with its null at freq.
func Notch(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	p, err := newParams(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return normalize(1, -2*p.cw, 1, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// Allpass designs an all-pass biquad whose phase passes -pi at freq.
func Allpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	p, err := newParams(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return normalize(1-p.alpha, -2*p.cw, 1+p.alpha, 1+p.alpha, -2*p.cw, 1-p.alpha)
}

// Peak designs a peaking EQ with gainDB at freq and unity gain far from it.
func Peak(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, error) {
	p, err := newParams(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	a, err := shelfAmplitude(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	return peaking(p.cw, p.alpha, a)
}

// BandShelf designs a peaking EQ parameterized by its bandwidth in octaves
// between the half-gain (in dB) points instead of by Q.
func BandShelf(freq, gainDB, bandwidthOct, sampleRate float64) (biquad.Coefficients, error) {
	if err := core.ValidateFrequency(freq, sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}

	if !core.IsFinite(bandwidthOct) || bandwidthOct <= 0 {
		return biquad.Coefficients{}, core.Configf("design: bandwidth must be > 0 octaves: %v", bandwidthOct)
	}

	a, err := shelfAmplitude(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	w0 := 2 * math.Pi * freq / sampleRate
	sw := math.Sin(w0)
	alpha := sw * math.Sinh(math.Ln2/2*bandwidthOct*w0/sw)

	return peaking(math.Cos(w0), alpha, a)
}

// LowShelf designs a low shelf with gainDB below freq.
func LowShelf(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, error) {
	p, err := newParams(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	a, err := shelfAmplitude(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	beta := 2 * math.Sqrt(a) * p.alpha
	cw := p.cw

	return normalize(
		a*((a+1)-(a-1)*cw+beta),
		2*a*((a-1)-(a+1)*cw),
		a*((a+1)-(a-1)*cw-beta),
		(a+1)+(a-1)*cw+beta,
		-2*((a-1)+(a+1)*cw),
		(a+1)+(a-1)*cw-beta,
	)
}

// HighShelf designs a high shelf with gainDB above freq.
func HighShelf(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, error) {
	p, err := newParams(freq, q, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	a, err := shelfAmplitude(gainDB)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	beta := 2 * math.Sqrt(a) * p.alpha
	cw := p.cw

	return normalize(
		a*((a+1)+(a-1)*cw+beta),
		-2*a*((a-1)+(a+1)*cw),
		a*((a+1)+(a-1)*cw-beta),
		(a+1)-(a-1)*cw+beta,
		2*((a-1)-(a+1)*cw),
		(a+1)-(a-1)*cw-beta,
	)
}

// QFromBandwidth converts a bandwidth in octaves at the digital angular
// frequency w0 (radians per sample) into the equivalent Q.
func QFromBandwidth(octaves, w0 float64) (float64, error) {
	if !core.IsFinite(octaves) || octaves <= 0 {
		return 0, core.Configf("design: bandwidth must be > 0 octaves: %v", octaves)
	}

	if !core.IsFinite(w0) || w0 <= 0 || w0 >= math.Pi {
		return 0, core.Configf("design: angular frequency must be in (0, pi): %v", w0)
	}

	return 1 / (2 * math.Sinh(math.Ln2/2*octaves*w0/math.Sin(w0))), nil
}

// QFromShelfSlope converts a shelf slope S into Q. S = 1 is the steepest
// slope without overshoot for the given gain.
func QFromShelfSlope(gainDB, slope float64) (float64, error) {
	a, err := shelfAmplitude(gainDB)
	if err != nil {
		return 0, err
	}

	if !core.IsFinite(slope) || slope <= 0 {
		return 0, core.Configf("design: shelf slope must be > 0: %v", slope)
	}

	r := (a+1/a)*(1/slope-1) + 2
	if r <= 0 {
		return 0, core.Configf("design: shelf slope %v too steep for %v dB", slope, gainDB)
	}

	return 1 / math.Sqrt(r), nil
}

// params holds the trigonometric terms shared by the Q-based designers.
type params struct {
	cw, sw, alpha float64
}

func newParams(freq, q, sampleRate float64) (params, error) {
	if err := core.ValidateFrequency(freq, sampleRate); err != nil {
		return params{}, err
	}

	if !core.IsFinite(q) || q <= 0 {
		return params{}, core.Configf("design: q must be > 0: %v", q)
	}

	w0 := 2 * math.Pi * freq / sampleRate
	sw := math.Sin(w0)

	return params{cw: math.Cos(w0), sw: sw, alpha: sw / (2 * q)}, nil
}

// shelfAmplitude returns A = 10^(gainDB/40).
func shelfAmplitude(gainDB float64) (float64, error) {
	if !core.IsFinite(gainDB) {
		return 0, core.Configf("design: gain must be finite: %v", gainDB)
	}

	return math.Pow(10, gainDB/40), nil
}

func peaking(cw, alpha, a float64) (biquad.Coefficients, error) {
	return normalize(1+alpha*a, -2*cw, 1-alpha*a, 1+alpha/a, -2*cw, 1-alpha/a)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) (biquad.Coefficients, error) {
	c := biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}

	if !core.IsFinite(c.B0) || !core.IsFinite(c.B1) || !core.IsFinite(c.B2) ||
		!core.IsFinite(c.A1) || !core.IsFinite(c.A2) {
		return biquad.Coefficients{}, core.Configf("design: degenerate coefficients %+v", c)
	}

	return c, nil
}

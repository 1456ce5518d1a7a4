package transform

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
)

// BandPass applies s -> (s^2 + w0^2)/(B*s) with the pre-warped band edges
// wl = tan(pi*(fc-width/2)), wh = tan(pi*(fc+width/2)), w0^2 = wl*wh and
// B = wh - wl. Each conjugate pair of src becomes two pairs; the single real
// pole of an odd order becomes one pair. The reference point is the digital
// band center 2*atan(w0).
func BandPass(dst, src *layout.Layout, fc, width float64) error {
	w0, bw, err := bandEdges(fc, width)
	if err != nil {
		return err
	}

	if err := prepare(dst, src, 2*src.NumPoles()); err != nil {
		return err
	}

	roots := func(c complex128) (complex128, complex128) {
		return bandPassRoots(c, w0, bw)
	}

	for _, p := range src.Pairs() {
		if err := addBand(dst, p, roots); err != nil {
			return err
		}
	}

	dst.NormalW = 2 * math.Atan(w0)
	dst.NormalGain = src.NormalGain

	return nil
}

// BandStop applies the reciprocal map s -> B*s/(s^2 + w0^2). Zeros at
// infinity move to +-j*w0, the band center. The reference point is whichever
// of DC and Nyquist lies farther from the center.
func BandStop(dst, src *layout.Layout, fc, width float64) error {
	w0, bw, err := bandEdges(fc, width)
	if err != nil {
		return err
	}

	if err := prepare(dst, src, 2*src.NumPoles()); err != nil {
		return err
	}

	roots := func(c complex128) (complex128, complex128) {
		return bandStopRoots(c, w0, bw)
	}

	for _, p := range src.Pairs() {
		if err := addBand(dst, p, roots); err != nil {
			return err
		}
	}

	dst.NormalW = 0
	if 2*math.Atan(w0) < math.Pi/2 {
		dst.NormalW = math.Pi
	}

	dst.NormalGain = src.NormalGain

	return nil
}

// bandEdges validates fc and width and returns the pre-warped geometric
// center and bandwidth.
func bandEdges(fc, width float64) (w0, bw float64, err error) {
	if err := validateFrequency(fc); err != nil {
		return 0, 0, err
	}

	if !core.IsFinite(width) || width <= 0 || width >= 2*math.Min(fc, 0.5-fc) {
		return 0, 0, core.Configf("transform: width %v does not fit around %v in (0, 0.5)", width, fc)
	}

	wl := Prewarp(fc - width/2)
	wh := Prewarp(fc + width/2)

	return math.Sqrt(wl * wh), wh - wl, nil
}

// addBand expands one prototype pair into its band-transformed pairs.
func addBand(dst *layout.Layout, p layout.PoleZeroPair, roots func(complex128) (complex128, complex128)) error {
	if p.Single {
		p1, p2 := roots(p.Poles.First)
		z1, z2 := roots(p.Zeros.First)

		return dst.AddPair(layout.ComplexPair{First: p1, Second: p2}, layout.ComplexPair{First: z1, Second: z2})
	}

	p1, p2 := roots(p.Poles.First)
	z1, z2 := roots(p.Zeros.First)

	if err := dst.AddPair(layout.Conjugate(p1), conjugateZeros(z1)); err != nil {
		return err
	}

	return dst.AddPair(layout.Conjugate(p2), conjugateZeros(z2))
}

// conjugateZeros pairs a zero with its conjugate. The origin and infinity
// come out of the band-pass map together, so they stay paired.
func conjugateZeros(z complex128) layout.ComplexPair {
	switch {
	case z == 0:
		return layout.ComplexPair{First: 0, Second: layout.Infinity}
	case layout.IsInfinite(z):
		return layout.ComplexPair{First: layout.Infinity, Second: 0}
	default:
		return layout.Conjugate(z)
	}
}

// bandPassRoots solves s^2 - c*B*s + w0^2 = 0. Infinity maps to {0, inf}.
func bandPassRoots(c complex128, w0, bw float64) (complex128, complex128) {
	if layout.IsInfinite(c) {
		return 0, layout.Infinity
	}

	return quadraticRoots(c*complex(bw, 0), w0)
}

// bandStopRoots solves c*s^2 - B*s + c*w0^2 = 0. Infinity maps to +-j*w0
// and the origin to {0, inf}.
func bandStopRoots(c complex128, w0, bw float64) (complex128, complex128) {
	switch {
	case layout.IsInfinite(c):
		return complex(0, w0), complex(0, -w0)
	case c == 0:
		return 0, layout.Infinity
	default:
		return quadraticRoots(complex(bw, 0)/c, w0)
	}
}

// quadraticRoots returns the roots of s^2 - b*s + w0^2 = 0, the one with
// non-negative imaginary part first.
func quadraticRoots(b complex128, w0 float64) (complex128, complex128) {
	d := cmplx.Sqrt(b*b - complex(4*w0*w0, 0))
	r1 := 0.5 * (b + d)
	r2 := 0.5 * (b - d)

	if imag(r1) < imag(r2) {
		r1, r2 = r2, r1
	}

	return r1, r2
}

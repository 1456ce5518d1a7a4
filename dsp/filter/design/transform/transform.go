// Package transform maps a normalized analog prototype onto the requested
// response shape and discretizes it.
//
// Frequencies are normalized to the sample rate (0 < fc < 0.5). The analog
// maps pre-warp every edge with tan(pi*fc) so that, after [Bilinear], the
// digital response hits the requested frequencies exactly.
//
// A typical design runs
//
//	prototype.Design(p, analog, order)
//	transform.LowPass(warped, analog, fc)
//	transform.Bilinear(digital, warped)
//	layout.Assemble(sections, digital)
//
// Destination and source layouts must be distinct.
package transform

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
)

// Prewarp returns the analog frequency tan(pi*fc) that the bilinear
// transform maps onto the normalized digital frequency fc.
func Prewarp(fc float64) float64 {
	return math.Tan(math.Pi * fc)
}

// LowPass scales the prototype in src so its cutoff lands on fc and writes
// the result to dst. Zeros at infinity stay there. The reference point is DC.
func LowPass(dst, src *layout.Layout, fc float64) error {
	if err := validateFrequency(fc); err != nil {
		return err
	}

	if err := prepare(dst, src, src.NumPoles()); err != nil {
		return err
	}

	wc := complex(Prewarp(fc), 0)
	scale := func(c complex128) complex128 {
		if layout.IsInfinite(c) {
			return layout.Infinity
		}

		return c * wc
	}

	for _, p := range src.Pairs() {
		if err := addMapped(dst, p, scale); err != nil {
			return err
		}
	}

	dst.NormalW = 0
	dst.NormalGain = src.NormalGain

	return nil
}

// HighPass applies s -> wc/s with wc the pre-warped fc. Zeros at infinity
// move to the origin. The reference point is Nyquist.
func HighPass(dst, src *layout.Layout, fc float64) error {
	if err := validateFrequency(fc); err != nil {
		return err
	}

	if err := prepare(dst, src, src.NumPoles()); err != nil {
		return err
	}

	wc := complex(Prewarp(fc), 0)
	invert := func(c complex128) complex128 {
		switch {
		case layout.IsInfinite(c):
			return 0
		case c == 0:
			return layout.Infinity
		default:
			return wc / c
		}
	}

	for _, p := range src.Pairs() {
		if err := addMapped(dst, p, invert); err != nil {
			return err
		}
	}

	dst.NormalW = math.Pi
	dst.NormalGain = src.NormalGain

	return nil
}

func addMapped(dst *layout.Layout, p layout.PoleZeroPair, f func(complex128) complex128) error {
	if p.Single {
		return dst.AddSingle(f(p.Poles.First), f(p.Zeros.First))
	}

	return dst.AddPair(
		layout.ComplexPair{First: f(p.Poles.First), Second: f(p.Poles.Second)},
		layout.ComplexPair{First: f(p.Zeros.First), Second: f(p.Zeros.Second)},
	)
}

// prepare checks aliasing and capacity and resets dst.
func prepare(dst, src *layout.Layout, poles int) error {
	if dst == src {
		return core.Configf("transform: destination and source layouts must differ")
	}

	if poles > dst.MaxPoles() {
		return core.Configf("transform: %d poles exceed destination capacity %d", poles, dst.MaxPoles())
	}

	dst.Reset()

	return nil
}

func validateFrequency(fc float64) error {
	if !core.IsFinite(fc) || fc <= 0 || fc >= 0.5 {
		return core.Configf("transform: normalized frequency must be in (0, 0.5): %v", fc)
	}

	return nil
}

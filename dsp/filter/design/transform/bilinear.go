package transform

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
)

// Bilinear maps the analog layout src to the z-plane with z = (1+s)/(1-s)
// and writes it to dst, keeping pair order and the single flag. Infinity
// maps to z = -1.
//
// dst.Gain is set so that Gain*|H(e^{jw})| equals NormalGain at the
// reference angle NormalW, with H the monic product of the digital pairs.
// A zero or non-finite gain fails with core.ErrInstability.
func Bilinear(dst, src *layout.Layout) error {
	if err := prepare(dst, src, src.NumPoles()); err != nil {
		return err
	}

	for _, p := range src.Pairs() {
		if err := addMapped(dst, p, bilinear); err != nil {
			return err
		}
	}

	dst.NormalW = src.NormalW
	dst.NormalGain = src.NormalGain

	gain := src.NormalGain / cmplx.Abs(dst.DigitalResponse(dst.NormalW))
	if !core.IsFinite(gain) || gain == 0 {
		return fmt.Errorf("%w: gain %v at reference angle %v", core.ErrInstability, gain, dst.NormalW)
	}

	dst.Gain = gain

	return nil
}

func bilinear(s complex128) complex128 {
	if layout.IsInfinite(s) {
		return -1
	}

	return (1 + s) / (1 - s)
}

package testutil

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Spectrum returns the fftSize-point DFT of h, zero-padded or truncated to
// fftSize. fftSize must be a power of two.
func Spectrum(h []float64, fftSize int) ([]complex128, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("testutil: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i := 0; i < len(h) && i < fftSize; i++ {
		in[i] = complex(h[i], 0)
	}

	out := make([]complex128, fftSize)

	err = plan.Forward(out, in)
	if err != nil {
		return nil, fmt.Errorf("testutil: forward FFT failed: %w", err)
	}

	return out, nil
}

// BinFrequency returns the normalized frequency (cycles per sample) of bin k
// of an fftSize-point transform.
func BinFrequency(k, fftSize int) float64 {
	return float64(k) / float64(fftSize)
}

// MaxComplexDiff returns the largest |a[i]-b[i]|.
func MaxComplexDiff(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}

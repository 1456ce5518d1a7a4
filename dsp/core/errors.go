// Package core holds the error taxonomy and numeric helpers shared by the
// filter design and runtime packages.
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports an invalid order, an out-of-range frequency,
	// Q, ripple or gain, or degenerate band edges.
	ErrConfiguration = errors.New("iir: invalid configuration")

	// ErrNonConvergence reports that a bounded iterative solve (Landen
	// descent, polynomial root refinement) ran out of iterations.
	ErrNonConvergence = errors.New("iir: numeric solve did not converge")

	// ErrInstability reports digital poles on or outside the unit circle, or
	// non-finite coefficients, for an otherwise in-range configuration.
	ErrInstability = errors.New("iir: unstable design")
)

// Configf wraps ErrConfiguration with a formatted detail message.
func Configf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// ValidateSampleRate checks that sampleRate is finite and positive.
func ValidateSampleRate(sampleRate float64) error {
	if !IsFinite(sampleRate) || sampleRate <= 0 {
		return Configf("sample rate must be > 0: %v", sampleRate)
	}

	return nil
}

// ValidateFrequency checks 0 < freq < sampleRate/2.
func ValidateFrequency(freq, sampleRate float64) error {
	if err := ValidateSampleRate(sampleRate); err != nil {
		return err
	}

	if !IsFinite(freq) || freq <= 0 || freq >= sampleRate/2 {
		return Configf("frequency must be in (0, %v): %v", sampleRate/2, freq)
	}

	return nil
}

// Package design provides single-biquad designers after Robert
// Bristow-Johnson's "Audio EQ Cookbook".
//
// Every designer validates its inputs and returns a normalized
// [biquad.Coefficients] (a0 = 1) or an error wrapping core.ErrConfiguration.
// The result can be loaded into an IIR filter as a one-section cascade.
//
// Higher-order classical designs (Butterworth, Chebyshev, Elliptic, Bessel)
// are built from analog prototypes in the sub-packages prototype, transform
// and layout.
package design

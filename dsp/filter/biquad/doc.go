// Package biquad provides the runtime for cascades of second-order IIR
// sections (biquads).
//
// A [Chain] holds up to a fixed number of sections defined by [Coefficients]
// together with their delay registers. The recursion [Structure] is chosen at
// construction: Direct Form I, Direct Form II or Transposed Direct Form II.
// Storage is sized once, so per-sample and block processing never allocate.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth, Chebyshev, cookbook biquads, etc.) lives in dsp/filter/design.
package biquad

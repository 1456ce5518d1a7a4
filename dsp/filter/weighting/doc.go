// Package weighting provides A, B, C, and Z frequency weighting filters
// per IEC 61672.
//
// Frequency weighting curves shape the magnitude response of a signal to
// approximate the frequency-dependent sensitivity of human hearing:
//
//   - A-weighting (6th order): the 40-phon equal-loudness contour, used for
//     most noise measurements (LAeq, LAmax).
//   - B-weighting (5th order): the 70-phon contour. Rarely used today.
//   - C-weighting (4th order): the 100-phon contour, used for peak
//     measurements and C-A differences.
//   - Z-weighting: unity gain at all frequencies.
//
// All curves are normalized to 0 dB at 1 kHz. The analog prototype poles
// are placed in an s-plane layout, mapped with the bilinear transform and
// assembled into a biquad cascade, the same path the IIR designers use.
package weighting

// Package bank provides octave and fractional-octave filter bank builders.
//
// A filter bank is a collection of bandpass filters that partition the
// audio spectrum into frequency bands. Each band is a Butterworth band-pass
// designed through the IIR pipeline, with its -3 dB points on the band
// edges.
//
// The package supports three construction modes:
//
//   - [Octave] builds standard octave or fractional-octave (1/3, 1/6, etc.)
//     filter banks with center frequencies per IEC 61260 (base-10 system).
//   - [Custom] builds a bank from arbitrary center frequencies and a
//     specified bandwidth in octaves.
//   - [NewOctaveAnalyzer] builds a streaming analyzer that applies the
//     same band definitions with envelope smoothing.
//
// Band edge frequencies follow the IEC 61260 standard:
//
//	G = 10^(3/10)              (octave ratio)
//	f_center = 1000 * G^(k/N)  (for 1/N-octave, integer k)
//	f_upper  = f_center * G^(1/(2*N))
//	f_lower  = f_center * G^(-1/(2*N))
//
// Each band's Butterworth band-pass is centered at (f_lower+f_upper)/2 with
// width f_upper-f_lower, which puts the -3 dB points at f_lower and f_upper.
//
// Basic usage:
//
//	b, err := bank.Octave(1, 48000) // full-octave bank, 48 kHz sample rate
//	if err != nil {
//	    return err
//	}
//	outputs := b.ProcessSample(sample)
//	for i, band := range b.Bands() {
//	    fmt.Printf("%.0f Hz: %f\n", band.CenterFreq, outputs[i])
//	}
package bank
